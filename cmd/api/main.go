package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skillbridge/job-portal/internal/config"
	"skillbridge/job-portal/internal/handlers"
	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/repositories"
	"skillbridge/job-portal/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	vocabularyInput := cfg.Skills.Vocabulary
	if len(vocabularyInput) == 0 {
		vocabularyInput = services.DefaultSkillVocabulary
	}
	vocabulary, err := services.NewSkillVocabulary(vocabularyInput)
	if err != nil {
		log.Fatalf("❌ Invalid skill vocabulary: %v", err)
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	cvRepo := repositories.NewCVRepository(db)
	companyRepo := repositories.NewFallbackCompanyRepository(repositories.NewCompanyRepository(db))
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize blob storage
	blobStorage, err := services.NewS3BlobStorage(context.Background(), services.S3Config{
		Endpoint:      cfg.Blob.Endpoint,
		Region:        cfg.Blob.Region,
		Bucket:        cfg.Blob.Bucket,
		AccessKey:     cfg.Blob.AccessKey,
		SecretKey:     cfg.Blob.SecretKey,
		PublicBaseURL: cfg.Blob.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize blob storage: %v", err)
	}
	log.Println("✅ Blob storage initialized successfully")

	// Initialize services
	parser := services.NewDocumentParser()
	skillExtractor := services.NewSkillExtractor(vocabulary)

	profileExtractor := services.NewPlaceholderProfileExtractor()
	if cfg.Gemini.APIKey != "" {
		geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		profileExtractor = services.NewGeminiProfileExtractor(geminiService, cfg.Gemini.RetryMaxAttempts)
		log.Println("✅ Gemini profile extraction enabled")
	}

	cvBuilder := services.NewCVBuilderService(cvRepo, blobStorage, parser, skillExtractor, profileExtractor)
	applicationService := services.NewApplicationService(cvRepo, companyRepo, appRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize validator
	validate := validator.New()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, validate, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	uploadHandler := handlers.NewUploadHandler(cvBuilder, cfg.Storage.MaxFileSize)
	cvHandler := handlers.NewCVHandler(cvRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	applyHandler := handlers.NewApplyHandler(applicationService, validate)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Portal API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Get("/companies", companyHandler.HandleListCompanies)
	api.Get("/companies/:id", companyHandler.HandleGetCompany)

	// Authenticated endpoints
	protected := api.Group("", middleware.Protected(cfg.Auth.JWTSecret))
	protected.Post("/cvs", uploadHandler.HandleUpload)
	protected.Get("/cvs", cvHandler.HandleListCVs)
	protected.Post("/applications", applyHandler.HandleApply)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Portal API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"GET /api/v1/companies",
				"GET /api/v1/companies/:id",
				"POST /api/v1/cvs",
				"GET /api/v1/cvs",
				"POST /api/v1/applications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skillbridge/job-portal/internal/models"
)

// UserIDKey is the Locals key under which Protected stores the caller's id.
const UserIDKey = "userID"

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed bearer token for the user.
func GenerateToken(secret string, user *models.User, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Protected resolves the caller's identity from the Authorization header and
// stores the user id in Locals. Requests without a resolvable identity are
// rejected with 401 before reaching the handler.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CallerID returns the authenticated user's id stored by Protected.
func CallerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(UserIDKey).(uuid.UUID)
	return id, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
		Error: "Unauthorized",
		Kind:  "unauthorized",
	})
}

package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/repositories"
)

// CVUploadInput carries one uploaded document through the build pipeline.
type CVUploadInput struct {
	UserID         uuid.UUID
	FileName       string
	Specialization string
	Data           []byte
}

// CVBuilderService turns an uploaded document into a persisted CV record:
// text extraction, durable blob storage, skill extraction, profile fields,
// metadata insert. The blob write must succeed before the metadata write is
// attempted; if the metadata write then fails the blob is deleted again so no
// record ever references an object that was not stored and no orphan survives.
type CVBuilderService interface {
	BuildCV(ctx context.Context, input CVUploadInput) (*models.CV, error)
}

type cvBuilderService struct {
	cvRepo           repositories.CVRepository
	blobStorage      BlobStorage
	parser           DocumentParser
	skillExtractor   SkillExtractor
	profileExtractor ProfileExtractor
}

func NewCVBuilderService(
	cvRepo repositories.CVRepository,
	blobStorage BlobStorage,
	parser DocumentParser,
	skillExtractor SkillExtractor,
	profileExtractor ProfileExtractor,
) CVBuilderService {
	return &cvBuilderService{
		cvRepo:           cvRepo,
		blobStorage:      blobStorage,
		parser:           parser,
		skillExtractor:   skillExtractor,
		profileExtractor: profileExtractor,
	}
}

// BuildCV implements CVBuilderService.
func (s *cvBuilderService) BuildCV(ctx context.Context, input CVUploadInput) (*models.CV, error) {
	if len(input.Data) == 0 {
		return nil, ErrNoFile
	}

	text, err := s.parser.ExtractText(input.FileName, input.Data)
	if err != nil {
		return nil, err
	}

	key := blobKey(input.FileName)
	fileURL, err := s.blobStorage.Store(ctx, key, input.Data, contentTypeFor(input.FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to store cv document: %w", err)
	}

	skills := s.skillExtractor.ExtractSkills(text)
	profile := s.profileExtractor.Extract(ctx, text, skills)

	cv := &models.CV{
		ID:             uuid.New(),
		UserID:         input.UserID,
		FileName:       input.FileName,
		FileURL:        fileURL,
		Specialization: input.Specialization,
		Content:        text,
		Skills:         skills,
		Experience:     profile.Experience,
		Projects:       profile.Projects,
		Education:      profile.Education,
		CreatedAt:      time.Now(),
	}

	if err := s.cvRepo.Create(cv); err != nil {
		// Compensating delete so the blob does not outlive the failed record.
		if delErr := s.blobStorage.Delete(ctx, key); delErr != nil {
			log.Printf("failed to clean up blob %s after metadata failure: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to save cv record: %w", err)
	}

	return cv, nil
}

func blobKey(fileName string) string {
	return fmt.Sprintf("cv/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(fileName)))
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

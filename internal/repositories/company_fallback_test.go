package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
)

type stubCompanyRepo struct {
	companies []models.Company
	company   *models.Company
	err       error
}

func (s *stubCompanyRepo) FindAll() ([]models.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.companies, nil
}

func (s *stubCompanyRepo) FindByID(id int64) (*models.Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.company, nil
}

func undefinedTableErr() error {
	return fmt.Errorf("failed to list companies: %w", &pgconn.PgError{Code: "42P01"})
}

func TestFallbackCompanyRepository_ServesFallbackWhenTableMissing(t *testing.T) {
	repo := NewFallbackCompanyRepository(&stubCompanyRepo{err: undefinedTableErr()})

	companies, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, companies, 3)
	assert.Equal(t, "Infosys", companies[0].Name)
}

func TestFallbackCompanyRepository_ServesFallbackWhenEmpty(t *testing.T) {
	repo := NewFallbackCompanyRepository(&stubCompanyRepo{})

	companies, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, companies, 3)
}

func TestFallbackCompanyRepository_PassesThroughStoreData(t *testing.T) {
	stored := []models.Company{{ID: 42, Name: "Acme"}}
	repo := NewFallbackCompanyRepository(&stubCompanyRepo{companies: stored})

	companies, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, stored, companies)
}

func TestFallbackCompanyRepository_PassesThroughOtherErrors(t *testing.T) {
	inner := &stubCompanyRepo{err: errors.New("connection refused")}
	repo := NewFallbackCompanyRepository(inner)

	_, err := repo.FindAll()
	assert.Error(t, err)
}

func TestFallbackCompanyRepository_FindByIDFallback(t *testing.T) {
	repo := NewFallbackCompanyRepository(&stubCompanyRepo{err: undefinedTableErr()})

	company, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Tata Consultancy Services (TCS)", company.Name)

	_, err = repo.FindByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFallbackCompanyRepository_FindByIDNotFoundInStore(t *testing.T) {
	// A genuine miss against a provisioned store is not masked by fallback data.
	inner := &stubCompanyRepo{err: fmt.Errorf("failed to find company: %w", gorm.ErrRecordNotFound)}
	repo := NewFallbackCompanyRepository(inner)

	_, err := repo.FindByID(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

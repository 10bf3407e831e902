package repositories

import (
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"skillbridge/job-portal/internal/models"
)

// fallbackCompanies is served when the companies table has not been
// provisioned yet, so browsing keeps working against a fresh database.
var fallbackCompanies = []models.Company{
	{
		ID:              1,
		Name:            "Infosys",
		Description:     "Global leader in next-generation digital services and consulting, helping clients navigate digital transformation.",
		LogoURL:         "/infosys-logo.png",
		Locations:       pq.StringArray{"Bangalore", "Hyderabad", "Chennai", "Pune", "Mumbai"},
		RecruitingAreas: pq.StringArray{"Software Development", "Data Analytics", "Cloud Engineering", "AI/ML", "Cybersecurity"},
		MinPackage:      350000,
		MaxPackage:      1200000,
		Openings:        45,
		RequiredSkills:  pq.StringArray{"Java", "Python", "JavaScript", "React", "Spring Boot", "AWS", "Azure", "SQL"},
		Benefits:        pq.StringArray{"Health Insurance", "Life Insurance", "Provident Fund", "Flexible Work", "Learning Budget"},
		WorkType:        "Hybrid",
		CompanySize:     "10000+",
		FoundedYear:     1981,
		Website:         "https://infosys.com",
	},
	{
		ID:              2,
		Name:            "Tata Consultancy Services (TCS)",
		Description:     "Leading global IT services, consulting and business solutions organization helping clients transform.",
		LogoURL:         "/generic-tech-logo.png",
		Locations:       pq.StringArray{"Mumbai", "Bangalore", "Chennai", "Hyderabad", "Kolkata", "Delhi"},
		RecruitingAreas: pq.StringArray{"Software Engineering", "Digital Solutions", "Cloud Services", "Data Science", "Consulting"},
		MinPackage:      380000,
		MaxPackage:      1500000,
		Openings:        60,
		RequiredSkills:  pq.StringArray{"Java", "C++", "Python", "Angular", "Node.js", "AWS", "Docker", "Microservices"},
		Benefits:        pq.StringArray{"Medical Insurance", "Group Life Insurance", "Retirement Benefits", "Work from Home", "Skill Development"},
		WorkType:        "Hybrid",
		CompanySize:     "10000+",
		FoundedYear:     1968,
		Website:         "https://tcs.com",
	},
	{
		ID:              3,
		Name:            "Wipro",
		Description:     "Leading technology services and consulting company helping clients adapt and thrive in the changing world.",
		LogoURL:         "/wipro-logo.png",
		Locations:       pq.StringArray{"Bangalore", "Hyderabad", "Chennai", "Pune", "Noida", "Kochi"},
		RecruitingAreas: pq.StringArray{"Application Development", "Infrastructure Services", "Digital Transformation", "Analytics", "Automation"},
		MinPackage:      320000,
		MaxPackage:      1100000,
		Openings:        35,
		RequiredSkills:  pq.StringArray{"Java", "Python", ".NET", "React", "Angular", "AWS", "Azure", "DevOps", "Agile"},
		Benefits:        pq.StringArray{"Health Insurance", "Accident Insurance", "Provident Fund", "Flexible Hours", "Career Development"},
		WorkType:        "Hybrid",
		CompanySize:     "10000+",
		FoundedYear:     1945,
		Website:         "https://wipro.com",
	},
}

type fallbackCompanyRepository struct {
	inner CompanyRepository
}

// NewFallbackCompanyRepository decorates a CompanyRepository so that a store
// that is reachable but not provisioned (missing table) or still empty serves
// the static dataset instead of failing. Genuine lookup misses and other
// database errors pass through untouched.
func NewFallbackCompanyRepository(inner CompanyRepository) CompanyRepository {
	return &fallbackCompanyRepository{inner: inner}
}

// FindAll implements CompanyRepository.
func (r *fallbackCompanyRepository) FindAll() ([]models.Company, error) {
	companies, err := r.inner.FindAll()
	if err != nil {
		if storeNotConfigured(err) {
			log.Println("companies table not provisioned, serving fallback dataset")
			return fallbackCompanies, nil
		}
		return nil, err
	}

	if len(companies) == 0 {
		return fallbackCompanies, nil
	}

	return companies, nil
}

// FindByID implements CompanyRepository.
func (r *fallbackCompanyRepository) FindByID(id int64) (*models.Company, error) {
	company, err := r.inner.FindByID(id)
	if err != nil {
		if storeNotConfigured(err) {
			for i := range fallbackCompanies {
				if fallbackCompanies[i].ID == id {
					return &fallbackCompanies[i], nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	return company, nil
}

// storeNotConfigured reports whether the error means the companies table does
// not exist (SQLSTATE 42P01, undefined_table).
func storeNotConfigured(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

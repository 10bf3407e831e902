package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UploadCVResponse struct {
	CVID     string   `json:"cv_id"`
	FileURL  string   `json:"file_url"`
	FileName string   `json:"file_name"`
	Skills   []string `json:"skills"`
}

type ApplyRequest struct {
	CVID      string `json:"cv_id" validate:"required,uuid"`
	CompanyID int64  `json:"company_id" validate:"required"`
}

type ApplyResponse struct {
	Application          *Application `json:"application"`
	SkillMatchPercentage int          `json:"skillMatchPercentage"`
	MatchedSkills        []string     `json:"matchedSkills"`
	MissingSkills        []string     `json:"missingSkills"`
	CompanyName          string       `json:"companyName"`
}

type CompanyListResponse struct {
	Companies []Company `json:"companies"`
}

type CompanyResponse struct {
	Company *Company `json:"company"`
}

type CVListResponse struct {
	CVs []CV `json:"cvs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

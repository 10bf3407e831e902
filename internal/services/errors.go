package services

import "errors"

// Error kinds surfaced to callers. Handlers translate these to HTTP status
// codes; everything else is treated as an internal failure.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrCVNotFound           = errors.New("cv not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrDuplicateApplication = errors.New("an application for this cv and company already exists")
	ErrDocumentUnreadable   = errors.New("document could not be converted to text")
	ErrNoFile               = errors.New("no file provided")
)

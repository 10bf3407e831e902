package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/services"
)

type fakeApplicationService struct {
	resp *models.ApplyResponse
	err  error

	userID    uuid.UUID
	cvID      uuid.UUID
	companyID int64
}

func (f *fakeApplicationService) SubmitApplication(_ context.Context, userID, cvID uuid.UUID, companyID int64) (*models.ApplyResponse, error) {
	f.userID = userID
	f.cvID = cvID
	f.companyID = companyID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newApplyApp(svc services.ApplicationService, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/applications",
		func(c *fiber.Ctx) error {
			c.Locals(middleware.UserIDKey, userID)
			return c.Next()
		},
		NewApplyHandler(svc, validator.New()).HandleApply,
	)
	return app
}

func applyRequest(t *testing.T, payload any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleApply_Success(t *testing.T) {
	userID := uuid.New()
	cvID := uuid.New()
	svc := &fakeApplicationService{resp: &models.ApplyResponse{
		Application:          &models.Application{ID: uuid.New(), UserID: userID, CVID: cvID, CompanyID: 7},
		SkillMatchPercentage: 50,
		MatchedSkills:        []string{"Python"},
		MissingSkills:        []string{"Go"},
		CompanyName:          "Infosys",
	}}
	app := newApplyApp(svc, userID)

	resp, err := app.Test(applyRequest(t, models.ApplyRequest{CVID: cvID.String(), CompanyID: 7}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var applyResp models.ApplyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&applyResp))
	assert.Equal(t, "Infosys", applyResp.CompanyName)
	assert.Equal(t, 50, applyResp.SkillMatchPercentage)
	assert.Equal(t, []string{"Python"}, applyResp.MatchedSkills)
	assert.Equal(t, []string{"Go"}, applyResp.MissingSkills)

	assert.Equal(t, userID, svc.userID)
	assert.Equal(t, cvID, svc.cvID)
	assert.Equal(t, int64(7), svc.companyID)
}

func TestHandleApply_DuplicateMapsToConflict(t *testing.T) {
	svc := &fakeApplicationService{err: services.ErrDuplicateApplication}
	app := newApplyApp(svc, uuid.New())

	resp, err := app.Test(applyRequest(t, models.ApplyRequest{CVID: uuid.New().String(), CompanyID: 3}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "duplicate_application", errResp.Kind)
}

func TestHandleApply_NotFoundMapping(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		kind string
	}{
		{"cv", services.ErrCVNotFound, "cv_not_found"},
		{"company", services.ErrCompanyNotFound, "company_not_found"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeApplicationService{err: tc.err}
			app := newApplyApp(svc, uuid.New())

			resp, err := app.Test(applyRequest(t, models.ApplyRequest{CVID: uuid.New().String(), CompanyID: 1}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)

			var errResp models.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tc.kind, errResp.Kind)
		})
	}
}

func TestHandleApply_InvalidBody(t *testing.T) {
	svc := &fakeApplicationService{}
	app := newApplyApp(svc, uuid.New())

	resp, err := app.Test(applyRequest(t, map[string]any{"cv_id": "not-a-uuid", "company_id": 1}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleApply_MissingCompanyID(t *testing.T) {
	svc := &fakeApplicationService{}
	app := newApplyApp(svc, uuid.New())

	resp, err := app.Test(applyRequest(t, map[string]any{"cv_id": uuid.New().String()}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

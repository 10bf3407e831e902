package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/services"
)

type fakeCVBuilder struct {
	called bool
	input  services.CVUploadInput
	cv     *models.CV
	err    error
}

func (f *fakeCVBuilder) BuildCV(_ context.Context, input services.CVUploadInput) (*models.CV, error) {
	f.called = true
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return f.cv, nil
}

func newUploadApp(builder services.CVBuilderService, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/cvs",
		func(c *fiber.Ctx) error {
			c.Locals(middleware.UserIDKey, userID)
			return c.Next()
		},
		NewUploadHandler(builder, 1<<20).HandleUpload,
	)
	return app
}

func multipartBody(t *testing.T, fileName string, fileContent []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		fw, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleUpload_NoFileHasNoSideEffects(t *testing.T) {
	builder := &fakeCVBuilder{}
	app := newUploadApp(builder, uuid.New())

	body, contentType := multipartBody(t, "", nil, map[string]string{"specialization": "Web Developer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cvs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "no_file", errResp.Kind)

	assert.False(t, builder.called)
}

func TestHandleUpload_Success(t *testing.T) {
	userID := uuid.New()
	cvID := uuid.New()
	builder := &fakeCVBuilder{cv: &models.CV{
		ID:       cvID,
		UserID:   userID,
		FileName: "resume.txt",
		FileURL:  "https://blobs.test/cv/abc.txt",
		Skills:   pq.StringArray{"Python"},
	}}
	app := newUploadApp(builder, userID)

	body, contentType := multipartBody(t, "resume.txt", []byte("I know Python"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cvs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploadResp models.UploadCVResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploadResp))
	assert.Equal(t, cvID.String(), uploadResp.CVID)
	assert.Equal(t, "https://blobs.test/cv/abc.txt", uploadResp.FileURL)
	assert.Equal(t, []string{"Python"}, uploadResp.Skills)

	require.True(t, builder.called)
	assert.Equal(t, userID, builder.input.UserID)
	assert.Equal(t, "resume.txt", builder.input.FileName)
	// Missing specialization defaults to General.
	assert.Equal(t, "General", builder.input.Specialization)
	assert.Equal(t, []byte("I know Python"), builder.input.Data)
}

func TestHandleUpload_UnreadableDocument(t *testing.T) {
	builder := &fakeCVBuilder{err: services.ErrDocumentUnreadable}
	app := newUploadApp(builder, uuid.New())

	body, contentType := multipartBody(t, "resume.pdf", []byte("garbage"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cvs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "document_unreadable", errResp.Kind)
}

func TestHandleUpload_InternalErrorIsGeneric(t *testing.T) {
	builder := &fakeCVBuilder{err: assert.AnError}
	app := newUploadApp(builder, uuid.New())

	body, contentType := multipartBody(t, "resume.txt", []byte("text"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cvs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), assert.AnError.Error())
}

package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"doc-qa-be/internal/config"
	"doc-qa-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentService struct {
	uploadRes *dto.UploadDocumentResponse
	statusRes *dto.DocumentStatusResponse
}

func (s *fakeDocumentService) StartIngestion(ctx context.Context, filename, tempPath string, existingId *uuid.UUID) (*dto.UploadDocumentResponse, error) {
	return s.uploadRes, nil
}

func (s *fakeDocumentService) Status(ctx context.Context, id uuid.UUID) (*dto.DocumentStatusResponse, error) {
	return s.statusRes, nil
}

func (s *fakeDocumentService) IsSupportedFilename(filename string) bool {
	return filename != "bad.csv"
}

func newUploadApp(t *testing.T, svc *fakeDocumentService) *fiber.App {
	t.Helper()

	app := fiber.New()
	cfg := config.IngestionConfig{TempDir: t.TempDir()}
	NewDocumentController(svc, cfg).RegisterRoutes(app.Group("/api"))
	return app
}

func multipartBody(t *testing.T, fieldFilename string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if fieldFilename != "" {
		part, err := writer.CreateFormFile("document", fieldFilename)
		require.NoError(t, err)
		_, err = part.Write([]byte("content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadWithoutDocumentField(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentService{})

	body, contentType := multipartBody(t, "")
	req := httptest.NewRequest("POST", "/api/embedding", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "error", res["status"])
	assert.Equal(t, "No document provided", res["message"])
}

func TestUploadUnsupportedFileType(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentService{})

	body, contentType := multipartBody(t, "bad.csv")
	req := httptest.NewRequest("POST", "/api/embedding", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "Unsupported file type", res["message"])
}

func TestUploadAccepted(t *testing.T) {
	documentId := uuid.New()
	svc := &fakeDocumentService{
		uploadRes: &dto.UploadDocumentResponse{
			Status:     "success",
			Message:    "Document embedding started successfully",
			DocumentId: documentId,
		},
	}
	app := newUploadApp(t, svc)

	body, contentType := multipartBody(t, "report.pdf")
	req := httptest.NewRequest("POST", "/api/embedding", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var res dto.UploadDocumentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, documentId, res.DocumentId)
}

func TestStatusUnknownDocument(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentService{})

	req := httptest.NewRequest("GET", "/api/embedding/"+uuid.New().String()+"/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatusMalformedId(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentService{})

	req := httptest.NewRequest("GET", "/api/embedding/not-a-uuid/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

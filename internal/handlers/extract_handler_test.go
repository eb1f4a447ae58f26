package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/models"
	"resumelens/internal/services"
)

func newExtractTestApp(maxFileSize int64) *fiber.App {
	app := fiber.New()
	// Archiving disabled in tests, the extraction contract is what matters
	handler := NewExtractHandler(services.NewExtractorService(), nil, nil, maxFileSize)
	app.Post("/api/extract", handler.HandleExtract)
	return app
}

func postFile(t *testing.T, app *fiber.App, fieldName, filename string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

func TestHandleExtract_MissingFile(t *testing.T) {
	app := newExtractTestApp(1 << 20)

	req := httptest.NewRequest("POST", "/api/extract", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtract_LegacyDocRejected(t *testing.T) {
	app := newExtractTestApp(1 << 20)

	status, body := postFile(t, app, "file", "resume.doc", []byte("whatever bytes"))

	assert.Equal(t, fiber.StatusBadRequest, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Error, "legacy .doc")
}

func TestHandleExtract_UnsupportedExtension(t *testing.T) {
	app := newExtractTestApp(1 << 20)

	status, body := postFile(t, app, "file", "resume.txt", []byte("plain text resume"))

	assert.Equal(t, fiber.StatusBadRequest, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Error, "unsupported file format")
}

func TestHandleExtract_CorruptPDFIs500(t *testing.T) {
	app := newExtractTestApp(1 << 20)

	status, body := postFile(t, app, "file", "resume.pdf", []byte("not really a pdf"))

	assert.Equal(t, fiber.StatusInternalServerError, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.NotEmpty(t, apiErr.Details)
}

func TestHandleExtract_FileTooLarge(t *testing.T) {
	app := newExtractTestApp(10)

	status, body := postFile(t, app, "file", "resume.pdf", bytes.Repeat([]byte("x"), 100))

	assert.Equal(t, fiber.StatusBadRequest, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Error, "too large")
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/models"
	"resumelens/internal/services"
)

type fakeGemini struct {
	reply string
	err   error
	calls int
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

const stubReply = `{
	"resumeScore": 82,
	"matchPercentage": null,
	"strengths": ["s1", "s2", "s3", "s4", "s5"],
	"weaknesses": ["w1", "w2", "w3", "w4", "w5"]
}`

func newAnalyzeTestApp(gen services.GeminiService) *fiber.App {
	app := fiber.New()
	handler := NewAnalyzeHandler(services.NewAnalyzerService(gen), nil)
	app.Post("/api/analyze", handler.HandleAnalyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

func TestHandleAnalyze_Success(t *testing.T) {
	app := newAnalyzeTestApp(&fakeGemini{reply: stubReply})

	status, body := postJSON(t, app, "/api/analyze",
		`{"resumeText": "Senior engineer, 5 years React, AWS."}`)

	require.Equal(t, fiber.StatusOK, status)

	var result models.AnalysisResponse
	require.NoError(t, json.Unmarshal(body, &result))

	assert.GreaterOrEqual(t, result.ResumeScore, 0.0)
	assert.LessOrEqual(t, result.ResumeScore, 100.0)
	assert.Nil(t, result.MatchPercentage)
	assert.Len(t, result.Strengths, 5)
	assert.Len(t, result.Weaknesses, 5)

	// The null must survive serialization, not be dropped
	assert.Contains(t, string(body), `"matchPercentage":null`)
}

func TestHandleAnalyze_EmptyResumeTextRejected(t *testing.T) {
	fake := &fakeGemini{reply: stubReply}
	app := newAnalyzeTestApp(fake)

	status, body := postJSON(t, app, "/api/analyze", `{"resumeText": "   "}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, fake.calls)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Error, "resumeText")
}

func TestHandleAnalyze_InvalidPayload(t *testing.T) {
	app := newAnalyzeTestApp(&fakeGemini{reply: stubReply})

	status, _ := postJSON(t, app, "/api/analyze", `{not json`)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleAnalyze_MalformedUpstreamIs500WithDetails(t *testing.T) {
	app := newAnalyzeTestApp(&fakeGemini{reply: "no json here, sorry"})

	status, body := postJSON(t, app, "/api/analyze", `{"resumeText": "resume"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Error, "not valid JSON")
	assert.Equal(t, "no json here, sorry", apiErr.Details)
}

func TestHandleAnalyze_InvalidSchemaIs500WithDetails(t *testing.T) {
	raw := `{"matchPercentage": null, "strengths": [], "weaknesses": []}`
	app := newAnalyzeTestApp(&fakeGemini{reply: raw})

	status, body := postJSON(t, app, "/api/analyze", `{"resumeText": "resume"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Equal(t, raw, apiErr.Details)
}

func TestHandleAnalyze_UpstreamCallFailureIs500(t *testing.T) {
	app := newAnalyzeTestApp(&fakeGemini{err: errors.New("connection refused")})

	status, body := postJSON(t, app, "/api/analyze", `{"resumeText": "resume"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	assert.Contains(t, apiErr.Details, "connection refused")
}

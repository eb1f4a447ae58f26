package services

import (
	"context"
	"encoding/json"
	"strings"

	"resumelens/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error)
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(geminiService GeminiService) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze runs the single prompt round-trip: validate input, call the model
// once (no retry), parse and structurally validate the reply. The validated
// payload is forwarded as parsed; score ranges and bullet counts are not
// clamped or re-checked.
func (a *analyzerService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, newError(KindValidation, "resumeText must not be empty", "")
	}

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(req.ResumeText, req.JobDescription)

	raw, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, newError(KindUpstreamCallFailure, "language model call failed", err.Error())
	}

	if strings.TrimSpace(raw) == "" {
		return nil, newError(KindUpstreamEmptyResponse, "language model returned no content", "")
	}

	jsonStr := extractJSON(raw)

	var probe map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &probe); err != nil {
		return nil, newError(KindUpstreamMalformedResponse, "language model response is not valid JSON", raw)
	}

	if problem := validateResponseShape(probe); problem != "" {
		return nil, newError(KindUpstreamInvalidSchema,
			"language model response does not match the expected schema: "+problem, raw)
	}

	var result models.AnalysisResponse
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, newError(KindUpstreamInvalidSchema, "language model response does not match the expected schema", raw)
	}

	return &result, nil
}

// validateResponseShape checks the structural contract only: a numeric score
// and two sequences. Ranges and lengths are not re-checked.
func validateResponseShape(probe map[string]any) string {
	if _, ok := probe["resumeScore"].(float64); !ok {
		return "resumeScore must be a number"
	}
	if _, ok := probe["strengths"].([]any); !ok {
		return "strengths must be an array"
	}
	if _, ok := probe["weaknesses"].([]any); !ok {
		return "weaknesses must be an array"
	}
	return ""
}

// extractJSON strips markdown fences and surrounding prose the model may
// wrap around the JSON object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

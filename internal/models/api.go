package models

// AnalysisRequest is the payload for POST /api/analyze and POST /api/analyses.
type AnalysisRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// AnalysisResponse mirrors the JSON object the model is instructed to return.
// It is forwarded to the client exactly as parsed; score ranges and bullet
// counts are trusted from the model.
type AnalysisResponse struct {
	ResumeScore     float64  `json:"resumeScore"`
	MatchPercentage *float64 `json:"matchPercentage"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type EnqueueResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnalysisStatusResponse struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Result       *AnalysisResponse `json:"result,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
}

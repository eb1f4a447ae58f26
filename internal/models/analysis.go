package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

type Analysis struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeText      string         `gorm:"type:text;not null" json:"resume_text"`
	JobDescription  string         `gorm:"type:text" json:"job_description"`
	Status          AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	ResumeScore     *float64       `gorm:"type:decimal(5,2)" json:"resume_score,omitempty"`
	MatchPercentage *float64       `gorm:"type:decimal(5,2)" json:"match_percentage,omitempty"`
	Strengths       *string        `gorm:"type:text" json:"strengths,omitempty"`
	Weaknesses      *string        `gorm:"type:text" json:"weaknesses,omitempty"`
	ErrorMessage    *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// Result reassembles the wire-format response from the stored columns.
// Returns nil when the analysis has no completed result yet.
func (a *Analysis) Result() (*AnalysisResponse, error) {
	if a.ResumeScore == nil {
		return nil, nil
	}

	result := &AnalysisResponse{
		ResumeScore:     *a.ResumeScore,
		MatchPercentage: a.MatchPercentage,
	}

	if a.Strengths != nil {
		if err := json.Unmarshal([]byte(*a.Strengths), &result.Strengths); err != nil {
			return nil, fmt.Errorf("failed to decode strengths: %w", err)
		}
	}
	if a.Weaknesses != nil {
		if err := json.Unmarshal([]byte(*a.Weaknesses), &result.Weaknesses); err != nil {
			return nil, fmt.Errorf("failed to decode weaknesses: %w", err)
		}
	}

	return result, nil
}

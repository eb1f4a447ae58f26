package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeAnalysisPrompt_WithoutJobDescription(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("Senior engineer, 5 years React, AWS.", "")

	assert.Contains(t, prompt, "Senior engineer, 5 years React, AWS.")
	assert.Contains(t, prompt, "No job description was provided.")
	assert.Contains(t, prompt, "Set matchPercentage to null")
	assert.Contains(t, prompt, `"resumeScore"`)
	assert.Contains(t, prompt, `"strengths"`)
	assert.Contains(t, prompt, `"weaknesses"`)
	assert.Contains(t, prompt, "exactly 5 specific strengths")
	assert.Contains(t, prompt, "ONLY a JSON object")
}

func TestBuildResumeAnalysisPrompt_WithJobDescription(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("resume text", "Looking for a Go backend engineer.")

	assert.Contains(t, prompt, "JOB DESCRIPTION:\nLooking for a Go backend engineer.")
	assert.Contains(t, prompt, "Compute matchPercentage")
	assert.NotContains(t, prompt, "Set matchPercentage to null")
}

func TestBuildResumeAnalysisPrompt_BlankJobDescriptionTreatedAsAbsent(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("resume text", "   \n\t ")

	assert.Contains(t, prompt, "No job description was provided.")
}

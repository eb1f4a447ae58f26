package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the resume analysis prompt. The only
// branching is the job description substitution; everything else is a fixed
// template ending with the literal JSON skeleton the model must return.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	jdSection := "No job description was provided."
	matchInstruction := "Set matchPercentage to null because no job description was provided."

	if strings.TrimSpace(jobDescription) != "" {
		jdSection = fmt.Sprintf("JOB DESCRIPTION:\n%s", jobDescription)
		matchInstruction = "Compute matchPercentage (0-100) measuring how well the resume matches the job description."
	}

	return fmt.Sprintf(`You are an expert HR recruiter and career coach reviewing a candidate's resume.

CANDIDATE RESUME:
%s

%s

Your task:
1. Score the overall quality of the resume from 0 to 100 as resumeScore.
2. %s
3. List exactly 5 specific strengths of the resume.
4. List exactly 5 specific weaknesses or areas for improvement.

Respond with ONLY a JSON object in exactly this format, no markdown, no explanations:
{
  "resumeScore": <number 0-100>,
  "matchPercentage": <number 0-100 or null>,
  "strengths": ["...", "...", "...", "...", "..."],
  "weaknesses": ["...", "...", "...", "...", "..."]
}

Be objective and specific. Reference actual content from the resume to justify your feedback.`,
		resumeText, jdSection, matchInstruction)
}

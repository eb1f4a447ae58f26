package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/models"
)

func TestBuildAnalysisUpdate(t *testing.T) {
	match := 70.0
	result := &models.AnalysisResponse{
		ResumeScore:     85,
		MatchPercentage: &match,
		Strengths:       []string{"s1", "s2", "s3", "s4", "s5"},
		Weaknesses:      []string{"w1", "w2", "w3", "w4", "w5"},
	}

	update, err := BuildAnalysisUpdate(result)
	require.NoError(t, err)

	require.NotNil(t, update.ResumeScore)
	assert.Equal(t, 85.0, *update.ResumeScore)
	require.NotNil(t, update.MatchPercentage)
	assert.Equal(t, 70.0, *update.MatchPercentage)
	require.NotNil(t, update.Strengths)
	assert.JSONEq(t, `["s1","s2","s3","s4","s5"]`, *update.Strengths)
	require.NotNil(t, update.Weaknesses)
	assert.JSONEq(t, `["w1","w2","w3","w4","w5"]`, *update.Weaknesses)
}

func TestBuildAnalysisUpdate_NilMatchPercentage(t *testing.T) {
	result := &models.AnalysisResponse{
		ResumeScore: 60,
		Strengths:   []string{"s1"},
		Weaknesses:  []string{"w1"},
	}

	update, err := BuildAnalysisUpdate(result)
	require.NoError(t, err)
	assert.Nil(t, update.MatchPercentage)
}

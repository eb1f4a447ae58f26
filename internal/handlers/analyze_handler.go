package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumelens/internal/models"
	"resumelens/internal/repositories"
	"resumelens/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	analysisRepo repositories.AnalysisRepository
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	analysisRepo repositories.AnalysisRepository,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		analysisRepo: analysisRepo,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalysisRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "Invalid request payload",
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	// Record a history row, best effort
	h.recordHistory(&req, result)

	return c.JSON(result)
}

func (h *AnalyzeHandler) recordHistory(req *models.AnalysisRequest, result *models.AnalysisResponse) {
	if h.analysisRepo == nil {
		return
	}

	update, err := services.BuildAnalysisUpdate(result)
	if err != nil {
		log.Printf("⚠️  Failed to encode analysis history: %v\n", err)
		return
	}

	analysis := &models.Analysis{
		ID:              uuid.New(),
		ResumeText:      req.ResumeText,
		JobDescription:  req.JobDescription,
		Status:          models.StatusCompleted,
		ResumeScore:     update.ResumeScore,
		MatchPercentage: update.MatchPercentage,
		Strengths:       update.Strengths,
		Weaknesses:      update.Weaknesses,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to record analysis history: %v\n", err)
	}
}

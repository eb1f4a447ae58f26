package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumelens/internal/models"
	"resumelens/internal/repositories"
	"resumelens/internal/services"
)

// AnalysesHandler serves the queued analysis flow: enqueue a job, poll its
// status, read the stored result once completed.
type AnalysesHandler struct {
	analysisRepo repositories.AnalysisRepository
	worker       services.Worker
}

func NewAnalysesHandler(
	analysisRepo repositories.AnalysisRepository,
	worker services.Worker,
) *AnalysesHandler {
	return &AnalysesHandler{
		analysisRepo: analysisRepo,
		worker:       worker,
	}
}

// HandleEnqueue handles POST /api/analyses
func (h *AnalysesHandler) HandleEnqueue(c *fiber.Ctx) error {
	var req models.AnalysisRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "resumeText must not be empty",
		})
	}

	analysis := &models.Analysis{
		ID:             uuid.New(),
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIError{
			Error: "Failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(analysis.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.EnqueueResponse{
		ID:     analysis.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGetAnalysis handles GET /api/analyses/:id
func (h *AnalysesHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIError{
			Error: "Analysis not found",
		})
	}

	response := models.AnalysisStatusResponse{
		ID:     analysis.ID.String(),
		Status: string(analysis.Status),
	}

	if analysis.Status == models.StatusCompleted {
		result, err := analysis.Result()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.APIError{
				Error: "Failed to decode stored result",
			})
		}
		response.Result = result
	}

	if analysis.Status == models.StatusFailed && analysis.ErrorMessage != nil {
		response.ErrorMessage = analysis.ErrorMessage
	}

	return c.JSON(response)
}

package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumelens/internal/models"
	"resumelens/internal/repositories"
	"resumelens/internal/services"
)

type ExtractHandler struct {
	extractor      services.ExtractorService
	storageService services.StorageService
	docRepo        repositories.DocumentRepository
	maxFileSize    int64
}

func NewExtractHandler(
	extractor services.ExtractorService,
	storageService services.StorageService,
	docRepo repositories.DocumentRepository,
	maxFileSize int64,
) *ExtractHandler {
	return &ExtractHandler{
		extractor:      extractor,
		storageService: storageService,
		docRepo:        docRepo,
		maxFileSize:    maxFileSize,
	}
}

// HandleExtract handles POST /api/extract
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "No file uploaded. Please upload a PDF or DOCX file in the 'file' field.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "Failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIError{
			Error: "Failed to read uploaded file",
		})
	}

	text, err := h.extractor.Extract(data, file.Filename)
	if err != nil {
		return respondError(c, err)
	}

	// Archive the upload for history, best effort
	h.archiveUpload(file)

	return c.JSON(models.ExtractResponse{Text: text})
}

func (h *ExtractHandler) archiveUpload(file *multipart.FileHeader) {
	if h.storageService == nil {
		return
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		log.Printf("⚠️  Failed to archive upload %s: %v\n", file.Filename, err)
		return
	}

	if h.docRepo == nil {
		return
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		log.Printf("⚠️  Failed to record archived upload %s: %v\n", file.Filename, err)
		h.storageService.DeleteFile(filename)
	}
}

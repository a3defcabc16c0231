package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"doc-qa-be/internal/config"
	"doc-qa-be/internal/pkg/serverutils"
	"doc-qa-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	ingestionCfg    config.IngestionConfig
}

func NewDocumentController(documentService service.IDocumentService, ingestionCfg config.IngestionConfig) IDocumentController {
	return &documentController{
		documentService: documentService,
		ingestionCfg:    ingestionCfg,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/embedding", c.Upload)
	r.Get("/embedding/:document_id/status", c.Status)
}

// Upload accepts a multipart document, saves it to the temp dir and enqueues
// ingestion. The 202 response means accepted, not stored: embedding runs in
// the background.
func (c *documentController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No document provided"))
	}
	if fileHeader.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Empty filename"))
	}
	if !c.documentService.IsSupportedFilename(fileHeader.Filename) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Unsupported file type"))
	}

	// Optional: extend an existing document's index instead of creating one
	var existingId *uuid.UUID
	if raw := ctx.FormValue("document_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid document_id"))
		}
		existingId = &parsed
	}

	if err := os.MkdirAll(c.ingestionCfg.TempDir, 0o755); err != nil {
		return err
	}

	// Prefix with a fresh id so concurrent uploads of the same filename
	// never collide in the temp dir
	tempPath := filepath.Join(
		c.ingestionCfg.TempDir,
		fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileHeader.Filename)),
	)
	if err := ctx.SaveFile(fileHeader, tempPath); err != nil {
		return err
	}

	res, err := c.documentService.StartIngestion(ctx.Context(), fileHeader.Filename, tempPath, existingId)
	if err != nil {
		os.Remove(tempPath)
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(res)
}

func (c *documentController) Status(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("document_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid document_id"))
	}

	res, err := c.documentService.Status(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Document not found"))
	}

	return ctx.JSON(res)
}

package controller

import (
	"errors"

	"doc-qa-be/internal/constant"
	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/pkg/serverutils"
	"doc-qa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
}

type queryController struct {
	queryService service.IQueryService
}

func NewQueryController(queryService service.IQueryService) IQueryController {
	return &queryController{
		queryService: queryService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	r.Post("/query", c.Query)
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Missing required fields (query or document_id)"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Missing required fields (query or document_id)"))
	}

	res, err := c.queryService.Answer(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(constant.AnswerDocumentNotFound))
		}
		if errors.Is(err, service.ErrInvalidConversation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid conversation id"))
		}
		return err
	}

	return ctx.JSON(res)
}

package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/pkg/serverutils"
	"doc-qa-be/internal/service"
	"doc-qa-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueryService struct {
	res *dto.QueryResponse
	err error
}

func (s *fakeQueryService) Answer(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	return s.res, s.err
}

func newQueryApp(svc *fakeQueryService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewQueryController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestQueryMissingFields(t *testing.T) {
	app := newQueryApp(&fakeQueryService{})

	raw, _ := json.Marshal(map[string]string{"query": "only a query"})
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "Missing required fields (query or document_id)", res["message"])
}

func TestQueryDocumentNotFound(t *testing.T) {
	app := newQueryApp(&fakeQueryService{err: service.ErrDocumentNotFound})

	raw, _ := json.Marshal(map[string]string{"query": "q", "document_id": "11111111-1111-1111-1111-111111111111"})
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestQueryInvalidConversation(t *testing.T) {
	app := newQueryApp(&fakeQueryService{err: service.ErrInvalidConversation})

	raw, _ := json.Marshal(map[string]string{"query": "q", "document_id": "11111111-1111-1111-1111-111111111111"})
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestQueryInternalErrorReturns500(t *testing.T) {
	app := newQueryApp(&fakeQueryService{err: errors.New("generate answer: model offline")})

	raw, _ := json.Marshal(map[string]string{"query": "q", "document_id": "11111111-1111-1111-1111-111111111111"})
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "error", res["status"])
	assert.Equal(t, "generate answer: model offline", res["message"])
}

func TestQuerySuccessShape(t *testing.T) {
	svcRes := &dto.QueryResponse{
		Status: "success",
		Response: dto.QueryResponseBody{
			Answer:    "The answer.",
			Citations: []store.Citation{},
		},
		ConversationId: "conv-1",
	}
	app := newQueryApp(&fakeQueryService{res: svcRes})

	raw, _ := json.Marshal(map[string]string{"query": "q", "document_id": "11111111-1111-1111-1111-111111111111"})
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "success", res["status"])
	assert.Equal(t, "conv-1", res["conversation_id"])

	response := res["response"].(map[string]interface{})
	assert.Equal(t, "The answer.", response["answer"])
	assert.NotNil(t, response["citations"])
}

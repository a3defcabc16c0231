package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doc-qa-be/internal/constant"
	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/repository/memory"
	"doc-qa-be/internal/repository/specification"
	"doc-qa-be/internal/repository/unitofwork"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/llm"
	"doc-qa-be/pkg/rag/prompt"
	"doc-qa-be/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidConversation = errors.New("invalid conversation id")
)

// topKChunks is how many chunks are retrieved per query.
const topKChunks = 3

type IQueryService interface {
	Answer(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error)
}

type queryService struct {
	uowFactory        unitofwork.RepositoryFactory
	conversationRepo  *memory.ConversationRepository
	embeddingProvider embedding.Provider
	llmProvider       llm.LLMProvider
}

func NewQueryService(
	uowFactory unitofwork.RepositoryFactory,
	conversationRepo *memory.ConversationRepository,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
) IQueryService {
	return &queryService{
		uowFactory:        uowFactory,
		conversationRepo:  conversationRepo,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
	}
}

func (s *queryService) Answer(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	documentId, err := uuid.Parse(req.DocumentId)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The document check comes before conversation validation so a missing
	// document always reports as not found, whatever else is wrong.
	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	chunkCount := int64(0)
	if document != nil {
		chunkCount, err = uow.DocumentChunkRepository().CountByDocumentId(ctx, documentId)
		if err != nil {
			return nil, err
		}
	}
	if document == nil || chunkCount == 0 {
		return nil, ErrDocumentNotFound
	}

	// Resolve or create the conversation
	var conversation *store.Conversation
	newConversation := false
	if req.ConversationId != "" {
		found, ok := s.conversationRepo.Get(req.ConversationId)
		if !ok {
			return nil, ErrInvalidConversation
		}
		conversation = found
	} else {
		conversation = &store.Conversation{ID: uuid.New().String()}
		newConversation = true
	}

	requireCitations := true
	if req.RequireCitations != nil {
		requireCitations = *req.RequireCitations
	}

	answer, citations, err := s.generate(ctx, req.Query, documentId, conversation, requireCitations)
	if err != nil {
		// Internal failures surface to the caller, the exchange is not
		// recorded on the conversation.
		return nil, err
	}

	conversation.Turns = append(conversation.Turns, store.Turn{
		Query:     req.Query,
		Answer:    answer,
		Citations: citations,
	})
	s.conversationRepo.Save(conversation)

	res := &dto.QueryResponse{
		Status: "success",
		Response: dto.QueryResponseBody{
			Answer:    answer,
			Citations: citations,
		},
	}
	if newConversation {
		res.ConversationId = conversation.ID
	}
	return res, nil
}

// generate runs the retrieval and generation pipeline. Embedding, search and
// model errors propagate; the fixed answers cover only the normal negatives
// (nothing retrieved, empty completion).
func (s *queryService) generate(
	ctx context.Context,
	query string,
	documentId uuid.UUID,
	conversation *store.Conversation,
	requireCitations bool,
) (string, []store.Citation, error) {
	citations := make([]store.Citation, 0)

	queryVector, err := s.embeddingProvider.Generate(ctx, query)
	if err != nil {
		return "", nil, fmt.Errorf("embed query: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.DocumentChunkRepository().SearchSimilar(ctx, queryVector, topKChunks, documentId)
	if err != nil {
		return "", nil, fmt.Errorf("similarity search: %w", err)
	}
	if len(chunks) == 0 {
		return constant.AnswerNoRelevantInfo, citations, nil
	}

	// Citations mirror the retrieved chunks in retrieval order. Each one
	// carries its own chunk's source filename, which may differ per chunk
	// when an index was extended with a second upload.
	if requireCitations {
		for _, chunk := range chunks {
			citations = append(citations, store.Citation{
				Page:         chunk.Page,
				DocumentName: chunk.Source,
			})
		}
	}

	chunkTexts := make([]string, len(chunks))
	for i, chunk := range chunks {
		chunkTexts[i] = chunk.Text
	}

	contextText := prompt.BuildContext(chunkTexts, conversation.Turns)
	finalPrompt := prompt.ForCitations(requireCitations).Render(contextText, query)

	answer, err := s.llmProvider.Generate(ctx, finalPrompt)
	if err != nil {
		return "", nil, fmt.Errorf("generate answer: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = constant.AnswerGenerationFailed
	}

	return answer, citations, nil
}

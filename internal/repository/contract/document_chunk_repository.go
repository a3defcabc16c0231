package contract

import (
	"context"

	"doc-qa-be/internal/entity"
	"doc-qa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	CountByDocumentId(ctx context.Context, documentId uuid.UUID) (int64, error)
	MaxChunkIndex(ctx context.Context, documentId uuid.UUID) (int, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	// SearchSimilar returns the chunks of one document closest to the query
	// embedding, ordered by cosine distance.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, documentId uuid.UUID) ([]*entity.DocumentChunk, error)
}

package contract

import (
	"context"

	"doc-qa-be/internal/entity"
	"doc-qa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DocumentStatus, failReason string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

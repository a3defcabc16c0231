package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/entity"
	"doc-qa-be/internal/repository/specification"
	"doc-qa-be/internal/repository/unitofwork"
	"doc-qa-be/pkg/extractor"

	"github.com/google/uuid"
)

type IDocumentService interface {
	StartIngestion(ctx context.Context, filename, tempPath string, existingId *uuid.UUID) (*dto.UploadDocumentResponse, error)
	Status(ctx context.Context, id uuid.UUID) (*dto.DocumentStatusResponse, error)
	IsSupportedFilename(filename string) bool
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *documentService) IsSupportedFilename(filename string) bool {
	return extractor.SupportedExtension(filepath.Ext(filename))
}

// StartIngestion records the document row and enqueues the ingest job. When
// existingId refers to an already stored document, new chunks are appended to
// its index instead of starting a fresh one.
func (s *documentService) StartIngestion(ctx context.Context, filename, tempPath string, existingId *uuid.UUID) (*dto.UploadDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var document *entity.Document
	if existingId != nil {
		found, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: *existingId})
		if err != nil {
			return nil, err
		}
		document = found
	}

	if document == nil {
		document = &entity.Document{
			Id:        uuid.New(),
			Filename:  filename,
			Status:    entity.DocumentStatusQueued,
			CreatedAt: time.Now(),
		}
		if err := uow.DocumentRepository().Create(ctx, document); err != nil {
			return nil, err
		}
	} else {
		if err := uow.DocumentRepository().UpdateStatus(ctx, document.Id, entity.DocumentStatusQueued, ""); err != nil {
			return nil, err
		}
	}

	msgPayload := dto.PublishIngestDocumentMessage{
		DocumentId: document.Id,
		TempPath:   tempPath,
		Filename:   filename,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.UploadDocumentResponse{
		Status:     "success",
		Message:    "Document embedding started successfully",
		DocumentId: document.Id,
	}, nil
}

func (s *documentService) Status(ctx context.Context, id uuid.UUID) (*dto.DocumentStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, nil
	}

	return &dto.DocumentStatusResponse{
		Status:     "success",
		DocumentId: document.Id,
		Filename:   document.Filename,
		State:      string(document.Status),
		FailReason: document.FailReason,
	}, nil
}

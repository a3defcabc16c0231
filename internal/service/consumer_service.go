package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"doc-qa-be/internal/config"
	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/entity"
	"doc-qa-be/internal/repository/unitofwork"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/events"
	"doc-qa-be/pkg/extractor"
	pktNats "doc-qa-be/pkg/nats"
	"doc-qa-be/pkg/textsplit"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	cfg               config.IngestionConfig
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	eventPublisher    *pktNats.Publisher
	splitter          *textsplit.Splitter
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	cfg config.IngestionConfig,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		cfg:               cfg,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		splitter:          textsplit.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
	}
}

// Consume starts the ingest worker pool. Workers share one subscription
// channel, so at most cfg.Workers documents are processed at a time.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.cfg.TopicName)
	if err != nil {
		return err
	}

	for i := 0; i < cs.cfg.Workers; i++ {
		go func(worker int) {
			for msg := range messages {
				cs.processMessage(ctx, msg)
			}
		}(i)
	}

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// The temp file is removed on every outcome, success or failure
	defer os.Remove(payload.TempPath)

	log.Printf("[INFO] Processing document ingestion for DocumentId: %s", payload.DocumentId)

	if err := cs.ingest(ctx, &payload); err != nil {
		log.Printf("[ERROR] Ingestion failed for document %s: %v", payload.DocumentId, err)
		cs.markFailed(ctx, &payload, err)
	}

	// Jobs are not retried: the upload is gone once the temp file is
	// removed, so a failed document stays failed until re-uploaded.
	msg.Ack()
}

func (cs *consumerService) ingest(ctx context.Context, payload *dto.PublishIngestDocumentMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.DocumentRepository().UpdateStatus(ctx, payload.DocumentId, entity.DocumentStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to mark document processing: %w", err)
	}

	// 1. Extract text blocks with per-block metadata
	blocks, err := extractor.Extract(payload.TempPath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	// 2. Split each block, carrying its metadata onto every chunk
	type pendingChunk struct {
		text string
		meta extractor.Metadata
	}
	var pending []pendingChunk
	for _, block := range blocks {
		for _, text := range cs.splitter.Split(block.Text) {
			pending = append(pending, pendingChunk{text: text, meta: block.Meta})
		}
	}

	log.Printf("[INFO] Document %s split into %d chunks", payload.DocumentId, len(pending))

	if len(pending) == 0 {
		// Nothing to index: the document must not report as stored, since
		// queries against it would 404 forever.
		return fmt.Errorf("no valid content found in document")
	}

	// Re-ingestion appends after the existing chunks
	offset, err := uow.DocumentChunkRepository().MaxChunkIndex(ctx, payload.DocumentId)
	if err != nil {
		return fmt.Errorf("failed to read chunk index offset: %w", err)
	}

	// 3. Embed each chunk
	var newChunks []*entity.DocumentChunk
	for i, pc := range pending {
		vector, err := cs.embeddingProvider.Generate(ctx, pc.text)
		if err != nil {
			return fmt.Errorf("embedding failed for chunk %d: %w", i, err)
		}

		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:             uuid.New(),
			DocumentId:     payload.DocumentId,
			Text:           pc.text,
			Source:         payload.Filename,
			Page:           pc.meta.Page,
			FilePath:       pc.meta.FilePath,
			Method:         pc.meta.Method,
			ChunkIndex:     offset + 1 + i,
			EmbeddingValue: vector,
			CreatedAt:      time.Now(),
		})
	}

	// 4. Store everything in one transaction
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}

	if err := uow.DocumentRepository().UpdateStatus(ctx, payload.DocumentId, entity.DocumentStatusStored, ""); err != nil {
		return fmt.Errorf("failed to mark document stored: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("[SUCCESS] Document processed: %d chunks for DocumentId: %s", len(newChunks), payload.DocumentId)

	if cs.eventPublisher != nil {
		evt := events.DocumentStored(payload.DocumentId, payload.Filename, len(newChunks))
		// Log error but don't fail the job, the event bus is auxiliary
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish DOCUMENT_STORED event: %v", err)
		}
	}

	return nil
}

func (cs *consumerService) markFailed(ctx context.Context, payload *dto.PublishIngestDocumentMessage, cause error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().UpdateStatus(ctx, payload.DocumentId, entity.DocumentStatusFailed, cause.Error()); err != nil {
		log.Printf("[ERROR] Failed to mark document %s failed: %v", payload.DocumentId, err)
	}

	if cs.eventPublisher != nil {
		evt := events.DocumentFailed(payload.DocumentId, payload.Filename, cause.Error())
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish DOCUMENT_FAILED event: %v", err)
		}
	}
}

package service

import (
	"context"
	"encoding/json"
	"testing"

	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestIsSupportedFilename(t *testing.T) {
	svc := NewDocumentService(nil, nil)

	assert.True(t, svc.IsSupportedFilename("report.pdf"))
	assert.True(t, svc.IsSupportedFilename("notes.TXT"))
	assert.True(t, svc.IsSupportedFilename("paper.docx"))
	assert.False(t, svc.IsSupportedFilename("table.csv"))
	assert.False(t, svc.IsSupportedFilename("archive.zip"))
}

func TestStartIngestionCreatesDocumentAndPublishes(t *testing.T) {
	uow := &fakeUnitOfWork{
		documentRepo: &fakeDocumentRepo{},
		chunkRepo:    &fakeChunkRepo{},
	}
	publisher := &fakePublisher{}
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, publisher)

	res, err := svc.StartIngestion(context.Background(), "report.pdf", "temp_uploads/x_report.pdf", nil)
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Document embedding started successfully", res.Message)
	assert.NotEqual(t, uuid.Nil, res.DocumentId)

	require.Len(t, publisher.payloads, 1)
	var msg dto.PublishIngestDocumentMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, res.DocumentId, msg.DocumentId)
	assert.Equal(t, "temp_uploads/x_report.pdf", msg.TempPath)
	assert.Equal(t, "report.pdf", msg.Filename)
}

func TestStartIngestionReusesExistingDocument(t *testing.T) {
	existing := newTestDocument()
	uow := &fakeUnitOfWork{
		documentRepo: &fakeDocumentRepo{document: existing},
		chunkRepo:    &fakeChunkRepo{},
	}
	publisher := &fakePublisher{}
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, publisher)

	res, err := svc.StartIngestion(context.Background(), "report.pdf", "temp_uploads/y_report.pdf", &existing.Id)
	require.NoError(t, err)

	assert.Equal(t, existing.Id, res.DocumentId)
	require.Len(t, publisher.payloads, 1)
}

func TestStatusForKnownDocument(t *testing.T) {
	existing := newTestDocument()
	existing.Status = entity.DocumentStatusFailed
	existing.FailReason = "extraction failed"

	uow := &fakeUnitOfWork{
		documentRepo: &fakeDocumentRepo{document: existing},
		chunkRepo:    &fakeChunkRepo{},
	}
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, &fakePublisher{})

	res, err := svc.Status(context.Background(), existing.Id)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, existing.Id, res.DocumentId)
	assert.Equal(t, "report.pdf", res.Filename)
	assert.Equal(t, "failed", res.State)
	assert.Equal(t, "extraction failed", res.FailReason)
}

func TestStatusForUnknownDocument(t *testing.T) {
	uow := &fakeUnitOfWork{
		documentRepo: &fakeDocumentRepo{},
		chunkRepo:    &fakeChunkRepo{},
	}
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, &fakePublisher{})

	res, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

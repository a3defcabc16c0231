package dto

import "github.com/google/uuid"

type UploadDocumentResponse struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	DocumentId uuid.UUID `json:"document_id"`
}

type DocumentStatusResponse struct {
	Status     string    `json:"status"`
	DocumentId uuid.UUID `json:"document_id"`
	Filename   string    `json:"filename"`
	State      string    `json:"state"`
	FailReason string    `json:"fail_reason,omitempty"`
}

// PublishIngestDocumentMessage is the payload carried on the ingest topic.
type PublishIngestDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	TempPath   string    `json:"temp_path"`
	Filename   string    `json:"filename"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentStatusQueued     DocumentStatus = "queued"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusStored     DocumentStatus = "stored"
	DocumentStatusFailed     DocumentStatus = "failed"
)

type Document struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Filename   string
	Status     DocumentStatus
	FailReason string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentChunk struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentId     uuid.UUID `gorm:"type:uuid;index"`
	Text           string
	Source         string
	Page           int
	FilePath       string
	Method         string
	ChunkIndex     int
	EmbeddingValue []float32
	CreatedAt      time.Time
}

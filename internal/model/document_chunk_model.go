package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DocumentChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Text           string          `gorm:"type:text"`
	Source         string          `gorm:"type:text"`
	Page           int             `gorm:"default:1"`
	FilePath       string          `gorm:"type:text"`
	Method         string          `gorm:"type:varchar(20)"`
	ChunkIndex     int             `gorm:"default:0"`        // 0-based index for ordering
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename   string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'queued'"`
	FailReason string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}

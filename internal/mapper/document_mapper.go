package mapper

import (
	"time"

	"doc-qa-be/internal/entity"
	"doc-qa-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(e *model.Document) *entity.Document {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:         e.Id,
		Filename:   e.Filename,
		Status:     entity.DocumentStatus(e.Status),
		FailReason: e.FailReason,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *DocumentMapper) ToModel(e *entity.Document) *model.Document {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Document{
		Id:         e.Id,
		Filename:   e.Filename,
		Status:     string(e.Status),
		FailReason: e.FailReason,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

package dto

import "doc-qa-be/pkg/store"

type QueryRequest struct {
	Query            string `json:"query" validate:"required"`
	DocumentId       string `json:"document_id" validate:"required"`
	RequireCitations *bool  `json:"require_citations"`
	ConversationId   string `json:"conversation_id"`
}

type QueryResponseBody struct {
	Answer    string           `json:"answer"`
	Citations []store.Citation `json:"citations"`
}

type QueryResponse struct {
	Status         string            `json:"status"`
	Response       QueryResponseBody `json:"response"`
	ConversationId string            `json:"conversation_id,omitempty"`
}

package store

// Citation points at the place in the source document that backed an answer.
type Citation struct {
	Page         int    `json:"page"`
	DocumentName string `json:"document_name"`
}

// Turn is one answered query in a conversation.
type Turn struct {
	Query     string     `json:"query"`
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}

// Conversation is the in-memory history of a question/answer exchange with
// one document. Turns are append-only and ordered by query time. The whole
// structure is volatile: it lives in the process cache and is lost on
// restart.
type Conversation struct {
	ID    string `json:"id"`
	Turns []Turn `json:"turns"`
}

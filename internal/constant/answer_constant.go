package constant

// Fixed answers returned by the query pipeline when generation cannot proceed.
const (
	AnswerDocumentNotFound = "I couldn't find the requested document."
	AnswerNoRelevantInfo   = "I couldn't find relevant information in the document."
	AnswerGenerationFailed = "I couldn't generate a response."
)

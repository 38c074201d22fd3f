package message

const (
	InvalidInput  = "Invalid input."
	InvalidClient = "Invalid client credentials."
	AgentFailed   = "The agent could not answer the question."
	NotFound      = "Resource not found."
	TooManyAsks   = "Too many requests. Please try again later."
	EnvErrFmt     = "environment variable is not set: %s"
)

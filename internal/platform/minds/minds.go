package minds

import (
	"context"
	"errors"
)

// ErrNoCompletion is returned when the agent responds without content.
var ErrNoCompletion = errors.New("no completion received from agent")

// QA is one turn of the conversation history sent to the agent. Answer is nil
// for the question currently being asked.
type QA struct {
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
}

// Completion is the agent's reply.
type Completion struct {
	Content string
}

// Agent answers questions through a MindsDB agent.
type Agent interface {
	Completion(ctx context.Context, agentName string, messages []QA) (*Completion, error)
}

package conversation

import (
	"github.com/adisatrio/mindskit/internal/model"
)

// Conversation is one question/answer exchange with an agent.
type Conversation struct {
	model.Model

	Agent    string
	Question string
	Answer   string
	Cached   bool
}

package conversation

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/adisatrio/mindskit/internal/pkg/message"
	"github.com/adisatrio/mindskit/internal/pkg/web"
	"github.com/google/uuid"
)

type Service interface {
	Ask(ctx context.Context, question string) (Conversation, error)
	List(ctx context.Context) ([]Conversation, error)
	Find(ctx context.Context, id string) (*Conversation, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type AskRequest struct {
	Question string `json:"question" validate:"required,max=4000"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ConversationData struct {
	ID        string    `json:"id,omitempty"`
	Agent     string    `json:"agent,omitempty"`
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Cached    bool      `json:"cached,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type ListResponse struct {
	Conversations []ConversationData `json:"conversations"`
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[AskRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	convo, err := h.svc.Ask(r.Context(), params.Question)
	if err != nil {
		if errors.Is(err, ErrAgentUnavailable) {
			web.RespondBadGateway(w, err, message.AgentFailed)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	payload := &AskResponse{
		Question: convo.Question,
		Answer:   convo.Answer,
	}
	web.OK(w, http.StatusOK, nil, payload)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	convos, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	payload := newListResponse(convos)
	web.OK(w, http.StatusOK, nil, payload)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"id": "id must be a valid UUID"})
		return
	}

	convo, err := h.svc.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.NotFound)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	payload := transformConversation(*convo)
	web.OK(w, http.StatusOK, nil, payload)
}

func transformConversation(c Conversation) *ConversationData {
	return &ConversationData{
		ID:        c.ID,
		Agent:     c.Agent,
		Question:  c.Question,
		Answer:    c.Answer,
		Cached:    c.Cached,
		CreatedAt: c.CreatedAt,
	}
}

func newListResponse(convos []Conversation) *ListResponse {
	data := make([]ConversationData, 0, len(convos))
	for _, convo := range convos {
		data = append(data, *transformConversation(convo))
	}

	return &ListResponse{
		Conversations: data,
	}
}

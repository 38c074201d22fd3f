package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/adisatrio/mindskit/internal/pkg/message"
	"github.com/adisatrio/mindskit/internal/pkg/web"
)

type Service interface {
	IssueToken(ctx context.Context, params IssueTokenParams) (Token, error)
}

// Token is an issued bearer token and its lifetime in seconds.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type TokenRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	APIKey   string `json:"api_key" validate:"required"`
}

func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[TokenRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.IssueToken(r.Context(), IssueTokenParams{
		ClientID: params.ClientID,
		APIKey:   params.APIKey,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidClient) {
			web.RespondUnauthorized(w, err, message.InvalidClient, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &token)
}

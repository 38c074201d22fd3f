package app

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/adisatrio/mindskit/internal/pkg/web"
	"github.com/adisatrio/mindskit/internal/platform/cache"
)

type healthHandler struct {
	db    *sql.DB
	store cache.Cache
}

func newHealthHandler(db *sql.DB, store cache.Cache) *healthHandler {
	return &healthHandler{db: db, store: store}
}

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Live reports process liveness only.
func (h *healthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	web.OK(w, http.StatusOK, nil, &healthStatus{Status: "ok"})
}

// Ready reports whether the service can reach its dependencies.
func (h *healthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checks := make(map[string]string, 2)
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.store.Ping(ctx); err != nil {
		checks["cache"] = err.Error()
		healthy = false
	} else {
		checks["cache"] = "ok"
	}

	if !healthy {
		web.Fail(w, http.StatusServiceUnavailable, fmt.Errorf("dependencies unavailable: %v", checks), "Service is not ready.", checks)
		return
	}

	web.OK(w, http.StatusOK, nil, &healthStatus{Status: "ok", Checks: checks})
}

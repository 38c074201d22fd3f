package app

import (
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// handleRoot keeps the historical greeting payload intact for existing
// clients that probe it.
func handleRoot(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

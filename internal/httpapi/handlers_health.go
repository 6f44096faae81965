package httpapi

import (
	"net/http"

	"playtrack/internal/ports"
	"playtrack/version"
)

// HealthHandler reports daemon liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}

// PlayersHandler lists the tracked roster.
type PlayersHandler struct {
	directory ports.PlayerDirectory
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(directory ports.PlayerDirectory) *PlayersHandler {
	return &PlayersHandler{directory: directory}
}

type playerResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// List handles GET /api/players
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.directory.Players(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list players: "+err.Error())
		return
	}

	resp := make([]playerResponse, 0, len(players))
	for _, player := range players {
		resp = append(resp, playerResponse{
			ID:          player.ID,
			DisplayName: player.DisplayName,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

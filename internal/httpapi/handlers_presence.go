package httpapi

import (
	"errors"
	"net/http"

	"playtrack/internal/adapters/presence"
	"playtrack/internal/domain"
	"playtrack/internal/ports"
)

// EventStarted and EventEnded are the accepted presence event kinds.
const (
	EventStarted = "started"
	EventEnded   = "ended"
)

// PresenceHandler accepts pushed presence events and feeds the board.
type PresenceHandler struct {
	board     *presence.Board
	directory ports.PlayerDirectory
}

// NewPresenceHandler creates a new presence handler.
func NewPresenceHandler(board *presence.Board, directory ports.PlayerDirectory) *PresenceHandler {
	return &PresenceHandler{board: board, directory: directory}
}

type presenceEventRequest struct {
	Player   string `json:"player"`
	Activity string `json:"activity"`
	Event    string `json:"event"`
}

type presenceEventResponse struct {
	Status string `json:"status"`
}

// Events handles POST /api/presence/events. Accepted events update the
// observation board; the next reconcile turns them into sessions.
func (h *PresenceHandler) Events(w http.ResponseWriter, r *http.Request) {
	var req presenceEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	activity := domain.NormalizeActivity(req.Activity)
	if activity == "" {
		writeError(w, http.StatusBadRequest, "activity is required")
		return
	}

	if _, err := h.directory.DisplayName(req.Player); err != nil {
		if errors.Is(err, domain.ErrPlayerUnknown) {
			writeError(w, http.StatusNotFound, "unknown player: "+req.Player)
			return
		}
		writeError(w, http.StatusInternalServerError, "resolve player: "+err.Error())
		return
	}

	switch req.Event {
	case EventStarted:
		h.board.SetPlaying(req.Player, activity)
	case EventEnded:
		h.board.ClearPlaying(req.Player, activity)
	default:
		writeError(w, http.StatusBadRequest, "event must be \"started\" or \"ended\"")
		return
	}

	writeJSON(w, http.StatusAccepted, presenceEventResponse{Status: "accepted"})
}

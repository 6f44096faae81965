package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"playtrack/internal/services"
)

// StatsHandler serves the aggregated session statistics.
type StatsHandler struct {
	stats *services.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type activeSessionResponse struct {
	PlayerID       string `json:"player_id"`
	DisplayName    string `json:"display_name"`
	Activity       string `json:"activity"`
	StartedAt      string `json:"started_at"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	Elapsed        string `json:"elapsed"`
}

// Active handles GET /api/sessions/active
func (h *StatsHandler) Active(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stats.ActiveSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list active sessions: "+err.Error())
		return
	}

	resp := make([]activeSessionResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, activeSessionResponse{
			PlayerID:       row.PlayerID,
			DisplayName:    row.DisplayName,
			Activity:       row.Activity,
			StartedAt:      row.StartedAt.UTC().Format(time.RFC3339),
			ElapsedSeconds: int64(row.Elapsed / time.Second),
			Elapsed:        formatDuration(row.Elapsed),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type leaderboardEntryResponse struct {
	Key          string `json:"key"`
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total"`
}

func leaderboardResponse(entries []services.LeaderboardEntry) []leaderboardEntryResponse {
	resp := make([]leaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, leaderboardEntryResponse{
			Key:          entry.Key,
			TotalSeconds: int64(entry.Total / time.Second),
			Total:        formatDuration(entry.Total),
		})
	}
	return resp
}

// ActivityLeaderboard handles GET /api/stats/leaderboard
func (h *StatsHandler) ActivityLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stats.ActivityLeaderboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "activity leaderboard: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, leaderboardResponse(entries))
}

// PlayerLeaderboard handles GET /api/stats/players
func (h *StatsHandler) PlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stats.PlayerLeaderboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "player leaderboard: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, leaderboardResponse(entries))
}

// Distribution handles GET /api/stats/distribution
func (h *StatsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	minutes, err := h.stats.Distribution(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "distribution: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, minutes)
}

type concurrencyPointResponse struct {
	Timestamp string `json:"timestamp"`
	Count     int    `json:"count"`
}

type concurrencyResponse struct {
	BucketSeconds int                        `json:"bucket_seconds"`
	Points        []concurrencyPointResponse `json:"points"`
}

// Concurrency handles GET /api/stats/concurrency?bucket=<seconds>
func (h *StatsHandler) Concurrency(w http.ResponseWriter, r *http.Request) {
	bucket := 0
	if raw := r.URL.Query().Get("bucket"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid bucket parameter: "+raw)
			return
		}
		bucket = parsed
	}

	points, err := h.stats.Concurrency(r.Context(), bucket)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "concurrency: "+err.Error())
		return
	}

	resp := concurrencyResponse{
		BucketSeconds: int(services.ClampBucket(bucket) / time.Second),
		Points:        make([]concurrencyPointResponse, 0, len(points)),
	}
	for _, point := range points {
		resp.Points = append(resp.Points, concurrencyPointResponse{
			Timestamp: point.Timestamp.UTC().Format(time.RFC3339),
			Count:     point.Count,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type timelineEntryResponse struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Activity    string `json:"activity"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// Timeline handles GET /api/stats/timeline
func (h *StatsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stats.Timeline(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "timeline: "+err.Error())
		return
	}

	resp := make([]timelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, timelineEntryResponse{
			PlayerID:    entry.PlayerID,
			DisplayName: entry.DisplayName,
			Activity:    entry.Activity,
			Start:       entry.Start.UTC().Format(time.RFC3339),
			End:         entry.End.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createMatchRequest struct {
	Players [4]string `json:"players"`
}

type createMatchResponse struct {
	MatchID string `json:"match_id"`
	State   any    `json:"state"`
}

// CreateMatchHandler starts a new match from four player names.
func (c *Coordinator) CreateMatchHandler(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrBadCommand)
		return
	}
	for i, name := range req.Players {
		if name == "" {
			req.Players[i] = defaultPlayerName(i)
		}
	}
	id, view, err := c.CreateMatch(r.Context(), req.Players, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, createMatchResponse{MatchID: id, State: view})
}

// CommandHandler applies one command to a match. Engine rejections come
// back as 422 with the rejection code in the body.
func (c *Coordinator) CommandHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "match_id")
	var cmd Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, ErrBadCommand)
		return
	}
	res, err := c.Apply(r.Context(), matchID, cmd)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// CloseMatchHandler removes a finished match.
func (c *Coordinator) CloseMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "match_id")
	if err := c.CloseMatch(r.Context(), matchID); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func defaultPlayerName(seat int) string {
	return [4]string{"North", "East", "South", "West"}[seat]
}

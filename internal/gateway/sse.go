package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mendikot/internal/game"
)

const ssePingInterval = 15 * time.Second

// WriteSSE writes one event in text/event-stream framing.
func WriteSSE(w http.ResponseWriter, ev StreamEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", ev.ID, ev.Event, payload); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// StateHandler serves the public match view, or one seat's view when
// the seat query parameter is present.
func (c *Coordinator) StateHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "match_id")
	if seatParam := r.URL.Query().Get("seat"); seatParam != "" {
		seat, err := strconv.Atoi(seatParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrBadSeat)
			return
		}
		view, err := c.SeatState(matchID, seat)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, view)
		return
	}
	view, err := c.PublicState(matchID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// EventsHandler streams match events over SSE. Reconnecting clients
// pass Last-Event-ID to replay what they missed; pings keep idle
// connections from being reaped by intermediaries.
func (c *Coordinator) EventsHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "match_id")
	buf, err := c.Events(matchID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Subscribe before replay so nothing falls in the gap. Duplicate
	// delivery is possible and clients dedupe on the event id.
	sub := buf.Subscribe()
	defer buf.Unsubscribe(sub)

	for _, ev := range buf.ReplayAfter(r.Header.Get("Last-Event-ID")) {
		if err := WriteSSE(w, ev); err != nil {
			return
		}
	}

	ping := time.NewTicker(ssePingInterval)
	defer ping.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-sub:
			if !open {
				return
			}
			if err := WriteSSE(w, ev); err != nil {
				return
			}
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadSeat), errors.Is(err, ErrBadCommand), errors.Is(err, game.ErrBadCardCode):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

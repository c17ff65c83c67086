package gateway

import (
	"strconv"
	"sync"
	"time"
)

// StreamEvent is one entry on a match's event stream.
type StreamEvent struct {
	ID       string `json:"id"`
	Event    string `json:"event"`
	MatchID  string `json:"match_id,omitempty"`
	ServerTS int64  `json:"server_ts"`
	Data     any    `json:"data,omitempty"`
}

// EventBuffer keeps a bounded replay window of match events and fans
// new ones out to subscribers. Slow subscribers drop events rather than
// block the command path.
type EventBuffer struct {
	mu     sync.Mutex
	max    int
	seq    int64
	events []StreamEvent
	subs   map[chan StreamEvent]struct{}
	closed bool
}

func NewEventBuffer(max int) *EventBuffer {
	if max <= 0 {
		max = 256
	}
	return &EventBuffer{
		max:  max,
		subs: map[chan StreamEvent]struct{}{},
	}
}

func (b *EventBuffer) Append(event, matchID string, data any) StreamEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	ev := StreamEvent{
		ID:       strconv.FormatInt(b.seq, 10),
		Event:    event,
		MatchID:  matchID,
		ServerTS: time.Now().UnixMilli(),
		Data:     data,
	}
	b.events = append(b.events, ev)
	if len(b.events) > b.max {
		b.events = b.events[len(b.events)-b.max:]
	}
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// ReplayAfter returns buffered events newer than lastEventID; an empty
// or unknown id replays the whole window.
func (b *EventBuffer) ReplayAfter(lastEventID string) []StreamEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	after, err := strconv.ParseInt(lastEventID, 10, 64)
	if lastEventID == "" || err != nil {
		after = 0
	}
	out := make([]StreamEvent, 0, len(b.events))
	for _, ev := range b.events {
		if id, err := strconv.ParseInt(ev.ID, 10, 64); err == nil && id > after {
			out = append(out, ev)
		}
	}
	return out
}

func (b *EventBuffer) Subscribe() chan StreamEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan StreamEvent, 16)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	return ch
}

func (b *EventBuffer) Unsubscribe(ch chan StreamEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *EventBuffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = map[chan StreamEvent]struct{}{}
}

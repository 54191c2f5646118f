package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchingCompletedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Matched   int    `json:"matched"`
	Timestamp string `json:"timestamp"`
}

// Notifier implements usecase.RunNotifier over the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyMatchingCompleted(userID uuid.UUID, matched int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchingCompletedEvent{
		Type:      "matching_completed",
		UserID:    userID.String(),
		Matched:   matched,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(payload)
}

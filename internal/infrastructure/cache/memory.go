package cache

import (
	"context"
	"sync"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
)

// MemoryHistory is an in-memory chat history with the same contract as
// RedisHistory. Used when Redis is unavailable and in tests.
type MemoryHistory struct {
	mu       sync.RWMutex
	maxTurns int
	turns    map[string][]entities.ChatTurn
}

// NewMemoryHistory creates a new in-memory chat history
func NewMemoryHistory(maxTurns int) *MemoryHistory {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &MemoryHistory{
		maxTurns: maxTurns,
		turns:    make(map[string][]entities.ChatTurn),
	}
}

// Append records one turn, trimming to the configured bound
func (h *MemoryHistory) Append(_ context.Context, conversationID string, turn entities.ChatTurn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	turns := append(h.turns[conversationID], turn)
	if len(turns) > h.maxTurns {
		turns = turns[len(turns)-h.maxTurns:]
	}
	h.turns[conversationID] = turns
	return nil
}

// Recent returns up to n most recent turns, oldest first
func (h *MemoryHistory) Recent(_ context.Context, conversationID string, n int) ([]entities.ChatTurn, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	turns := h.turns[conversationID]
	if n <= 0 || n > len(turns) {
		n = len(turns)
	}

	out := make([]entities.ChatTurn, n)
	copy(out, turns[len(turns)-n:])
	return out, nil
}

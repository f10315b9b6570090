// Package store holds GameStore adapters.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbrunton/pusoy-dos/internal/domain"
	"github.com/benbrunton/pusoy-dos/internal/ports"
)

// MemoryStore keeps encoded snapshots in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	games map[string][]byte
}

var _ ports.GameStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string][]byte)}
}

func (m *MemoryStore) Create(_ context.Context, game domain.GameSnapshot) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", game.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[game.ID]; ok {
		return ports.ErrAlreadyExists
	}
	m.games[game.ID] = data
	return nil
}

func (m *MemoryStore) Load(_ context.Context, gameID string) (domain.GameSnapshot, error) {
	m.mu.Lock()
	data, ok := m.games[gameID]
	m.mu.Unlock()
	if !ok {
		return domain.GameSnapshot{}, ports.ErrNotFound
	}
	return decodeGame(data)
}

func (m *MemoryStore) Swap(_ context.Context, expectedVersion int64, game domain.GameSnapshot) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", game.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.games[game.ID]
	if !ok {
		return ports.ErrNotFound
	}
	stored, err := decodeGame(current)
	if err != nil {
		return err
	}
	if stored.Version != expectedVersion {
		return ports.ErrVersionConflict
	}
	m.games[game.ID] = data
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, gameID)
	return nil
}

func decodeGame(data []byte) (domain.GameSnapshot, error) {
	var game domain.GameSnapshot
	if err := json.Unmarshal(data, &game); err != nil {
		return domain.GameSnapshot{}, fmt.Errorf("decode game: %w", err)
	}
	return game, nil
}

package ports

import (
	"context"
	"errors"

	"github.com/benbrunton/pusoy-dos/internal/domain"
)

var (
	ErrNotFound        = errors.New("game not found")
	ErrAlreadyExists   = errors.New("game already exists")
	ErrVersionConflict = errors.New("game version conflict")
)

// GameStore persists game snapshots with optimistic concurrency.
type GameStore interface {
	// Create stores a new game. Returns ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, game domain.GameSnapshot) error

	// Load returns the stored snapshot or ErrNotFound.
	Load(ctx context.Context, gameID string) (domain.GameSnapshot, error)

	// Swap replaces the stored game only if its version is still expectedVersion.
	// A concurrent writer makes it fail with ErrVersionConflict.
	Swap(ctx context.Context, expectedVersion int64, game domain.GameSnapshot) error

	// Delete removes a game. Deleting a missing game is not an error.
	Delete(ctx context.Context, gameID string) error
}

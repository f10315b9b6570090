package bot

import "github.com/benbrunton/pusoy-dos/internal/domain"

// Move represents the decision made by the AI.
type Move struct {
	Pass  bool
	Cards []domain.PlayerCard
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	OnEvent(event interface{})
}

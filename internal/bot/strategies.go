package bot

import (
	"math/rand"

	"github.com/benbrunton/pusoy-dos/internal/bot/internal"
	"github.com/benbrunton/pusoy-dos/internal/domain"
)

// LowestBot sheds its weakest cards. Leading, it plays the combination built
// on its lowest card, the bigger the better; following, the weakest card set
// that beats the table. Jokers are only spent when nothing else is legal.
type LowestBot struct{}

func (b *LowestBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 || game.Round.NextPlayer() != player.Seat {
		return Move{Pass: true}, nil
	}

	var best *internal.ValidMove
	moves := internal.GetValidMoves(player.Hand, game.Round, game.Reversed)
	for i := range moves {
		m := &moves[i]
		if m.Move.IsPass() {
			continue
		}
		if best == nil || preferLower(*m, *best) {
			best = m
		}
	}
	if best == nil {
		return Move{Pass: true}, nil
	}
	return Move{Cards: best.Cards}, nil
}

func (b *LowestBot) OnEvent(interface{}) {}

func preferLower(a, b internal.ValidMove) bool {
	if a.UsesJoker() != b.UsesJoker() {
		return b.UsesJoker()
	}
	if c, ok := domain.CompareMoves(a.Move, b.Move); ok && len(a.Cards) == len(b.Cards) && c != 0 {
		return c < 0
	}
	if c := a.Move.Cards[0].Compare(b.Move.Cards[0]); c != 0 {
		return c < 0
	}
	return len(a.Cards) > len(b.Cards)
}

// RandomBot picks uniformly among the legal moves, passing included.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 || game.Round.NextPlayer() != player.Seat {
		return Move{Pass: true}, nil
	}

	moves := internal.GetValidMoves(player.Hand, game.Round, game.Reversed)
	if len(moves) == 0 {
		return Move{Pass: true}, nil
	}
	pick := moves[b.rng.Intn(len(moves))]
	if pick.Move.IsPass() {
		return Move{Pass: true}, nil
	}
	return Move{Cards: pick.Cards}, nil
}

func (b *RandomBot) OnEvent(interface{}) {}

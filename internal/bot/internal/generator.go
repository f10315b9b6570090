package internal

import "github.com/benbrunton/pusoy-dos/internal/domain"

// ValidMove is a legal play together with its classification.
type ValidMove struct {
	Cards []domain.PlayerCard
	Move  domain.Move
}

// UsesJoker reports whether the play spends a joker.
func (v ValidMove) UsesJoker() bool {
	for _, pc := range v.Cards {
		if pc.IsJoker() {
			return true
		}
	}
	return false
}

// GetValidMoves returns every play the round would accept from its current
// player holding hand. Jokers are offered as singles bound to any card face.
// Pass is included when the round allows it.
func GetValidMoves(hand []domain.PlayerCard, round domain.Round, reversed bool) []ValidMove {
	seat := round.NextPlayer()
	table := round.LastMove()

	var cards []domain.PlayerCard
	hasJoker := false
	for _, pc := range hand {
		if pc.Kind == domain.KindJoker {
			hasJoker = true
			continue
		}
		cards = append(cards, pc.Oriented(reversed))
	}
	domain.SortHand(cards)

	var moves []ValidMove
	try := func(play []domain.PlayerCard) {
		mv, ok := domain.BuildMove(play)
		if !ok {
			return
		}
		if _, err := round.Play(seat, mv); err != nil {
			return
		}
		moves = append(moves, ValidMove{Cards: append([]domain.PlayerCard(nil), play...), Move: mv})
	}

	sizes := []int{1, 2, 3, 5}
	if !table.IsPass() {
		sizes = []int{len(table.Cards)}
	}
	for _, n := range sizes {
		forEachCombination(cards, n, try)
	}

	// One joker is enough to enumerate; they are interchangeable.
	if hasJoker && (table.IsPass() || table.Kind == domain.MoveSingle) {
		for s := domain.Clubs; s <= domain.Spades; s++ {
			for r := domain.Three; r <= domain.Two; r++ {
				face := domain.NewCard(r, s, reversed)
				try([]domain.PlayerCard{domain.Wildcard(face)})
			}
		}
	}

	if _, err := round.Play(seat, domain.Pass); err == nil {
		moves = append(moves, ValidMove{Move: domain.Pass})
	}
	return moves
}

// forEachCombination calls fn with every n-card subset of cards, in order.
// The slice passed to fn is reused between calls.
func forEachCombination(cards []domain.PlayerCard, n int, fn func([]domain.PlayerCard)) {
	if n <= 0 || n > len(cards) {
		return
	}
	buf := make([]domain.PlayerCard, n)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == n {
			fn(buf)
			return
		}
		for i := start; i <= len(cards)-(n-depth); i++ {
			buf[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

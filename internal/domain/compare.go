package domain

import "cmp"

// CompareMoves orders two moves of the same category. The boolean is false
// when the categories differ and the moves cannot be compared at all.
func CompareMoves(a, b Move) (int, bool) {
	if a.Kind != b.Kind {
		return 0, false
	}

	switch a.Kind {
	case MovePass:
		return 0, true
	case MoveSingle, MovePair, MovePrial:
		if len(a.Cards) != len(b.Cards) {
			return 0, false
		}
		return compareFromTop(a.Cards, b.Cards), true
	case MoveFiveCardTrick:
		return compareTricks(a, b), true
	}
	return 0, false
}

// Beats reports whether next can be played on top of table.
func Beats(next, table Move) bool {
	c, ok := CompareMoves(next, table)
	return ok && c > 0
}

func compareTricks(a, b Move) int {
	if a.Trick != b.Trick {
		return cmp.Compare(a.Trick, b.Trick)
	}

	switch a.Trick {
	case FullHouse:
		return compareBlocks(a.Cards, b.Cards, 3)
	case FourOfAKind:
		return compareBlocks(a.Cards, b.Cards, 4)
	case StraightFlush:
		return compareFromTop(a.Cards, b.Cards)
	default:
		// Straight, Flush and FiveOfAKind are decided by their highest card.
		return a.Cards[len(a.Cards)-1].Compare(b.Cards[len(b.Cards)-1])
	}
}

// compareFromTop compares two canonical card lists highest card first.
func compareFromTop(a, b []Card) int {
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := a[i].Compare(b[j]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareBlocks compares only the rank of the block of the given size,
// ignoring suits and the remaining cards.
func compareBlocks(a, b []Card, size int) int {
	ra, revA := blockRank(a, size)
	rb, revB := blockRank(b, size)
	return cmp.Compare(rankStrength(ra, revA), rankStrength(rb, revB))
}

func blockRank(cards []Card, size int) (Rank, bool) {
	for r, n := range rankCounts(cards) {
		if n == size {
			for _, c := range cards {
				if c.Rank == r {
					return r, c.Reversed
				}
			}
		}
	}
	return cards[0].Rank, cards[0].Reversed
}

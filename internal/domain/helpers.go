package domain

// Holds reports whether hand contains every played card. Ordinary cards match
// a held card in either orientation; each wildcard needs its own joker.
func Holds(hand []PlayerCard, played []PlayerCard) bool {
	_, ok := matchCards(hand, played)
	return ok
}

// RemoveCards removes the played cards from a hand and returns the updated
// hand. Cards that are not held are ignored.
func RemoveCards(hand []PlayerCard, played []PlayerCard) []PlayerCard {
	if len(played) == 0 || len(hand) == 0 {
		return hand
	}

	used, _ := matchCards(hand, played)
	updated := make([]PlayerCard, 0, len(hand))
	for i, pc := range hand {
		if used[i] {
			continue
		}
		updated = append(updated, pc)
	}
	return updated
}

func matchCards(hand []PlayerCard, played []PlayerCard) ([]bool, bool) {
	used := make([]bool, len(hand))
	all := true
	for _, pc := range played {
		found := false
		for i, held := range hand {
			if used[i] || !sameHolding(held, pc) {
				continue
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			all = false
		}
	}
	return used, all
}

func sameHolding(held, played PlayerCard) bool {
	switch played.Kind {
	case KindOrdinary:
		return held.Kind == KindOrdinary && held.Card.SameFace(played.Card)
	case KindWildcard:
		return held.Kind == KindJoker
	}
	return false
}

// CountPlayersWithCards returns the number of players still holding cards.
func CountPlayersWithCards(g *Game) int {
	count := 0
	for _, player := range g.Players {
		if !player.Finished && len(player.Hand) > 0 {
			count++
		}
	}
	return count
}

// StartingSeat returns the seat holding the lowest card.
func StartingSeat(g *Game) (PlayerID, bool) {
	for _, seat := range g.Seats {
		for _, pc := range g.Players[seat].Hand {
			if pc.Kind == KindOrdinary && pc.Card.SameFace(LowestCard) {
				return seat, true
			}
		}
	}
	return 0, false
}

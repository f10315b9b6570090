package domain

import (
	"math/rand"
	"sort"
)

// MaxJokers is the number of jokers in a full Pusoy Dos deck.
const MaxJokers = 2

// NewDeck returns an ordered 52-card deck followed by up to two jokers.
func NewDeck(jokers int) []PlayerCard {
	if jokers < 0 {
		jokers = 0
	}
	if jokers > MaxJokers {
		jokers = MaxJokers
	}
	deck := make([]PlayerCard, 0, NumRanks*NumSuits+jokers)
	for s := Clubs; s <= Spades; s++ {
		for r := Three; r <= Two; r++ {
			deck = append(deck, Ordinary(Card{Rank: r, Suit: s}))
		}
	}
	for id := 1; id <= jokers; id++ {
		deck = append(deck, Joker(id))
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []PlayerCard, rng *rand.Rand) []PlayerCard {
	out := make([]PlayerCard, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal hands out the whole deck one card at a time, taking from the end of
// the deck, until it is exhausted. Early seats receive the odd cards.
func Deal(deck []PlayerCard, players int) [][]PlayerCard {
	if players <= 0 {
		return nil
	}
	hands := make([][]PlayerCard, players)
	seat := 0
	for i := len(deck) - 1; i >= 0; i-- {
		hands[seat] = append(hands[seat], deck[i])
		seat = (seat + 1) % players
	}
	return hands
}

// SortHand orders a hand by ascending strength with jokers last.
func SortHand(hand []PlayerCard) {
	sort.SliceStable(hand, func(i, j int) bool {
		a, b := hand[i], hand[j]
		if a.IsJoker() != b.IsJoker() {
			return b.IsJoker()
		}
		if a.IsJoker() {
			return a.JokerID < b.JokerID
		}
		return a.Card.Less(b.Card)
	})
}

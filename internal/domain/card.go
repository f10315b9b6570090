package domain

import (
	"cmp"
	"fmt"
)

// Rank is a card rank in Pusoy Dos strength order: 3 is the lowest, 2 the highest.
type Rank int

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// NumRanks is the size of the rank domain.
const NumRanks = 13

var rankNames = [NumRanks]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

func (r Rank) String() string {
	if r < Three || r > Two {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Three && r <= Two
}

// PreviousRank returns the rank below r. There is nothing below a 3.
func (r Rank) PreviousRank() (Rank, bool) {
	if r <= Three || r > Two {
		return 0, false
	}
	return r - 1, true
}

// NextRank returns the rank above r. There is nothing above a 2.
func (r Rank) NextRank() (Rank, bool) {
	if r < Three || r >= Two {
		return 0, false
	}
	return r + 1, true
}

// Suit is a card suit. The declaration order is the suit tie-break order.
type Suit int

const (
	Clubs Suit = iota
	Hearts
	Diamonds
	Spades
)

// NumSuits is the size of the suit domain.
const NumSuits = 4

var suitSymbols = [NumSuits]string{"♣", "♥", "♦", "♠"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitSymbols[s]
}

// Colour is informational only and always derived from the suit.
type Colour int

const (
	Black Colour = iota
	Red
)

func (c Colour) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is a single playing card. Reversed marks a card whose rank ordering is
// inverted after a four or five of a kind has been played.
type Card struct {
	Rank     Rank `json:"rank"`
	Suit     Suit `json:"suit"`
	Reversed bool `json:"reversed"`
}

// NewCard returns a card. Every rank and suit combination is valid.
func NewCard(rank Rank, suit Suit, reversed bool) Card {
	return Card{Rank: rank, Suit: suit, Reversed: reversed}
}

// Colour derives the card colour from its suit.
func (c Card) Colour() Colour {
	switch c.Suit {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

// AlternateColour returns the colour this card is not.
func (c Card) AlternateColour() Colour {
	if c.Colour() == Red {
		return Black
	}
	return Red
}

func (c Card) PreviousRank() (Rank, bool) { return c.Rank.PreviousRank() }
func (c Card) NextRank() (Rank, bool)     { return c.Rank.NextRank() }

// SameFace reports whether two cards are the same physical card, whatever their orientation.
func (c Card) SameFace(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

// Flip toggles the card orientation.
func (c Card) Flip() Card {
	c.Reversed = !c.Reversed
	return c
}

// Oriented returns the card with the given orientation.
func (c Card) Oriented(reversed bool) Card {
	c.Reversed = reversed
	return c
}

// rankStrength is the rank ordinal as seen from the card's own orientation.
func rankStrength(r Rank, reversed bool) int {
	if reversed {
		return int(Two - r)
	}
	return int(r)
}

// Compare orders cards by (rank strength, suit, orientation). Rank strength is
// inverted for reversed cards; the suit order is never inverted. The trailing
// orientation key only separates mixed-orientation duplicates, which keeps the
// order total over every oriented card.
func (c Card) Compare(o Card) int {
	if a, b := rankStrength(c.Rank, c.Reversed), rankStrength(o.Rank, o.Reversed); a != b {
		return cmp.Compare(a, b)
	}
	if c.Suit != o.Suit {
		return cmp.Compare(int(c.Suit), int(o.Suit))
	}
	switch {
	case c.Reversed == o.Reversed:
		return 0
	case o.Reversed:
		return -1
	default:
		return 1
	}
}

func (c Card) Less(o Card) bool    { return c.Compare(o) < 0 }
func (c Card) Greater(o Card) bool { return c.Compare(o) > 0 }

func (c Card) String() string {
	s := c.Rank.String() + c.Suit.String()
	if c.Reversed {
		s += "'"
	}
	return s
}

// LowestCard must be part of the opening move of every game.
var LowestCard = Card{Rank: Three, Suit: Clubs}

// TopCard is the strongest card for the given orientation.
func TopCard(reversed bool) Card {
	if reversed {
		return Card{Rank: Three, Suit: Spades, Reversed: true}
	}
	return Card{Rank: Two, Suit: Spades}
}

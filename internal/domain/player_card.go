package domain

import "fmt"

// PlayerCardKind tags the variants of PlayerCard.
type PlayerCardKind int

const (
	// KindOrdinary is a normal card from the deck.
	KindOrdinary PlayerCardKind = iota
	// KindWildcard is a joker standing in for Card during a single play.
	KindWildcard
	// KindJoker is an unbound joker sitting in a hand.
	KindJoker
)

func (k PlayerCardKind) String() string {
	switch k {
	case KindOrdinary:
		return "ordinary"
	case KindWildcard:
		return "wildcard"
	case KindJoker:
		return "joker"
	}
	return fmt.Sprintf("PlayerCardKind(%d)", int(k))
}

// PlayerCard is a card as held or played by a player.
type PlayerCard struct {
	Kind    PlayerCardKind `json:"kind"`
	Card    Card           `json:"card"`
	JokerID int            `json:"joker_id,omitempty"`
}

// Ordinary wraps a deck card.
func Ordinary(c Card) PlayerCard {
	return PlayerCard{Kind: KindOrdinary, Card: c}
}

// Wildcard binds a joker to the identity of c for the current play.
func Wildcard(c Card) PlayerCard {
	return PlayerCard{Kind: KindWildcard, Card: c}
}

// Joker is an unbound joker token.
func Joker(id int) PlayerCard {
	return PlayerCard{Kind: KindJoker, JokerID: id}
}

// IsJoker reports whether the physical card behind pc is a joker.
func (pc PlayerCard) IsJoker() bool {
	return pc.Kind == KindWildcard || pc.Kind == KindJoker
}

// Resolve returns the card used for pattern matching. Unbound jokers have none.
func (pc PlayerCard) Resolve() (Card, bool) {
	switch pc.Kind {
	case KindOrdinary, KindWildcard:
		return pc.Card, true
	}
	return Card{}, false
}

// Flip toggles the orientation of the underlying card. Unbound jokers have no orientation.
func (pc PlayerCard) Flip() PlayerCard {
	if pc.Kind == KindJoker {
		return pc
	}
	pc.Card = pc.Card.Flip()
	return pc
}

// Oriented forces the orientation of the underlying card.
func (pc PlayerCard) Oriented(reversed bool) PlayerCard {
	if pc.Kind == KindJoker {
		return pc
	}
	pc.Card = pc.Card.Oriented(reversed)
	return pc
}

func (pc PlayerCard) String() string {
	switch pc.Kind {
	case KindWildcard:
		return "*" + pc.Card.String()
	case KindJoker:
		return fmt.Sprintf("JOKER%d", pc.JokerID)
	}
	return pc.Card.String()
}

// OrdinaryCards wraps each card as an ordinary player card.
func OrdinaryCards(cards ...Card) []PlayerCard {
	out := make([]PlayerCard, len(cards))
	for i, c := range cards {
		out[i] = Ordinary(c)
	}
	return out
}

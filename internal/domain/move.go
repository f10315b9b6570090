package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MoveKind is the category of a move. Moves of different kinds never beat each other.
type MoveKind int

const (
	MovePass MoveKind = iota
	MoveSingle
	MovePair
	MovePrial
	MoveFiveCardTrick
)

var moveKindNames = map[MoveKind]string{
	MovePass:          "pass",
	MoveSingle:        "single",
	MovePair:          "pair",
	MovePrial:         "prial",
	MoveFiveCardTrick: "five_card_trick",
}

func (k MoveKind) String() string {
	if name, ok := moveKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

func (k MoveKind) MarshalText() ([]byte, error) {
	name, ok := moveKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown move kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *MoveKind) UnmarshalText(text []byte) error {
	for kind, name := range moveKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown move kind %q", text)
}

// TrickKind is the sub-type of a five card trick, declared weakest first.
type TrickKind int

const (
	TrickNone TrickKind = iota
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

var trickKindNames = map[TrickKind]string{
	TrickNone:     "",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	FourOfAKind:   "four_of_a_kind",
	StraightFlush: "straight_flush",
	FiveOfAKind:   "five_of_a_kind",
}

func (t TrickKind) String() string {
	if name, ok := trickKindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TrickKind(%d)", int(t))
}

func (t TrickKind) MarshalText() ([]byte, error) {
	name, ok := trickKindNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown trick kind %d", int(t))
	}
	return []byte(name), nil
}

func (t *TrickKind) UnmarshalText(text []byte) error {
	for kind, name := range trickKindNames {
		if name == string(text) {
			*t = kind
			return nil
		}
	}
	return fmt.Errorf("unknown trick kind %q", text)
}

// Move is a classified play. Cards are held in canonical ascending order and
// Trick is only set for five card tricks. A move carries no player identity.
type Move struct {
	Kind  MoveKind  `json:"kind"`
	Trick TrickKind `json:"trick,omitempty"`
	Cards []Card    `json:"cards,omitempty"`
}

// Pass is the empty move. It is also the state of a clear table.
var Pass = Move{Kind: MovePass}

// BuildMove classifies the played cards. Wildcards count as the card they are
// bound to. It returns false when the cards do not form a legal move.
// Passing an unbound joker is a caller bug and panics.
func BuildMove(cards []PlayerCard) (Move, bool) {
	resolved := make([]Card, len(cards))
	for i, pc := range cards {
		c, ok := pc.Resolve()
		if !ok {
			panic(fmt.Sprintf("domain: unbound joker %v cannot be classified", pc))
		}
		resolved[i] = c
	}
	return classify(resolved)
}

// MustBuildMove classifies ordinary cards and panics if they are not a legal move.
func MustBuildMove(cards ...Card) Move {
	mv, ok := BuildMove(OrdinaryCards(cards...))
	if !ok {
		panic(fmt.Sprintf("domain: %v is not a legal move", cards))
	}
	return mv
}

func classify(cards []Card) (Move, bool) {
	switch len(cards) {
	case 0:
		return Pass, true
	case 1:
		return Move{Kind: MoveSingle, Cards: cards}, true
	case 2:
		if allSameRank(cards) {
			return Move{Kind: MovePair, Cards: SortCards(cards)}, true
		}
	case 3:
		if allSameRank(cards) {
			return Move{Kind: MovePrial, Cards: SortCards(cards)}, true
		}
	case 5:
		return buildTrick(cards)
	}
	return Move{}, false
}

func buildTrick(cards []Card) (Move, bool) {
	sorted := SortCards(cards)
	counts := rankCounts(sorted)

	trick := TrickNone
	switch len(counts) {
	case 1:
		trick = FiveOfAKind
	case 2:
		trick = FullHouse
		for _, n := range counts {
			if n == 4 {
				trick = FourOfAKind
			}
		}
	case 5:
		run, flush := isRun(sorted), isFlush(sorted)
		switch {
		case run && flush:
			trick = StraightFlush
		case run:
			trick = Straight
		case flush:
			trick = Flush
		}
	}

	if trick == TrickNone {
		return Move{}, false
	}
	return Move{Kind: MoveFiveCardTrick, Trick: trick, Cards: sorted}, true
}

// SortCards returns an ascending copy of cards.
func SortCards(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

func rankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// isRun reports whether the ranks walk upward one step at a time. The walk
// ends at 2, so runs never wrap around to 3.
func isRun(cards []Card) bool {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	for i := 1; i < len(ranks); i++ {
		next, ok := ranks[i-1].NextRank()
		if !ok || next != ranks[i] {
			return false
		}
	}
	return true
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// IsPass reports whether the move plays no cards.
func (m Move) IsPass() bool {
	return m.Kind == MovePass
}

// Contains reports whether the move includes the physical card c in either orientation.
func (m Move) Contains(c Card) bool {
	for _, mc := range m.Cards {
		if mc.SameFace(c) {
			return true
		}
	}
	return false
}

// HighCard is the strongest card of the move.
func (m Move) HighCard() (Card, bool) {
	if len(m.Cards) == 0 {
		return Card{}, false
	}
	return m.Cards[len(m.Cards)-1], true
}

// Reversed reports the orientation the move was played in.
func (m Move) Reversed() bool {
	return len(m.Cards) > 0 && m.Cards[0].Reversed
}

// TriggersReversal reports whether playing the move flips the card order.
func (m Move) TriggersReversal() bool {
	return m.Kind == MoveFiveCardTrick && (m.Trick == FourOfAKind || m.Trick == FiveOfAKind)
}

// Unbeatable reports whether a single, pair or prial holds the top card of
// its orientation. Nobody can follow such a move.
func (m Move) Unbeatable() bool {
	switch m.Kind {
	case MoveSingle, MovePair, MovePrial:
		top := TopCard(m.Reversed())
		for _, c := range m.Cards {
			if c == top {
				return true
			}
		}
	}
	return false
}

// Flip toggles every card's orientation and restores canonical order.
func (m Move) Flip() Move {
	if len(m.Cards) == 0 {
		return m
	}
	cards := make([]Card, len(m.Cards))
	for i, c := range m.Cards {
		cards[i] = c.Flip()
	}
	m.Cards = SortCards(cards)
	return m
}

// Oriented returns the move with every card set to the given orientation.
func (m Move) Oriented(reversed bool) Move {
	if len(m.Cards) == 0 {
		return m
	}
	cards := make([]Card, len(m.Cards))
	for i, c := range m.Cards {
		cards[i] = c.Oriented(reversed)
	}
	m.Cards = SortCards(cards)
	return m
}

// Equal reports whether two moves are the same kind with the same cards.
func (m Move) Equal(o Move) bool {
	if m.Kind != o.Kind || m.Trick != o.Trick || len(m.Cards) != len(o.Cards) {
		return false
	}
	for i := range m.Cards {
		if m.Cards[i] != o.Cards[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	parts := make([]string, len(m.Cards))
	for i, c := range m.Cards {
		parts[i] = c.String()
	}
	kind := m.Kind.String()
	if m.Trick != TrickNone {
		kind = m.Trick.String()
	}
	return kind + "(" + strings.Join(parts, " ") + ")"
}

package domain

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(MaxJokers)
	if len(deck) != 54 {
		t.Fatalf("deck size = %d, want 54", len(deck))
	}

	seen := make(map[string]bool)
	jokers := 0
	for _, pc := range deck {
		if pc.Kind == KindJoker {
			jokers++
			continue
		}
		key := fmt.Sprintf("%d-%d", pc.Card.Suit, pc.Card.Rank)
		if seen[key] {
			t.Fatalf("duplicate card found: %s", key)
		}
		seen[key] = true
		if !pc.Card.Rank.Valid() || pc.Card.Reversed {
			t.Fatalf("unexpected card %v", pc.Card)
		}
	}
	if jokers != 2 {
		t.Fatalf("jokers = %d, want 2", jokers)
	}
	if got := len(NewDeck(0)); got != 52 {
		t.Fatalf("deck without jokers = %d, want 52", got)
	}
}

func TestShuffleAndDeal(t *testing.T) {
	deck := NewDeck(MaxJokers)
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(7)))
	if reflect.DeepEqual(deck, shuffled) {
		t.Fatalf("shuffle should change the order")
	}
	if !reflect.DeepEqual(deck, NewDeck(MaxJokers)) {
		t.Fatalf("shuffle should not modify its input")
	}

	hands := Deal(shuffled, 4)
	sizes := []int{len(hands[0]), len(hands[1]), len(hands[2]), len(hands[3])}
	if !reflect.DeepEqual(sizes, []int{14, 14, 13, 13}) {
		t.Fatalf("hand sizes = %v, want [14 14 13 13]", sizes)
	}
}

func TestHoldsAndRemoveCards(t *testing.T) {
	hand := []PlayerCard{
		Ordinary(card(Three, Clubs)),
		Ordinary(card(Nine, Hearts).Flip()),
		Joker(1),
		Ordinary(card(King, Spades)),
	}

	tests := []struct {
		name   string
		played []PlayerCard
		holds  bool
		left   int
	}{
		{"ordinary card", OrdinaryCards(card(Three, Clubs)), true, 3},
		{"either orientation", OrdinaryCards(card(Nine, Hearts)), true, 3},
		{"wildcard uses the joker", []PlayerCard{Wildcard(card(Two, Spades))}, true, 3},
		{"second wildcard has no joker", []PlayerCard{Wildcard(card(Two, Spades)), Wildcard(card(Two, Hearts))}, false, 3},
		{"card not held", OrdinaryCards(card(Four, Clubs)), false, 4},
		{"card played twice", OrdinaryCards(card(King, Spades), card(King, Spades)), false, 3},
		{"raw joker is never held", []PlayerCard{Joker(1)}, false, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Holds(hand, tt.played); got != tt.holds {
				t.Fatalf("Holds() = %v, want %v", got, tt.holds)
			}
			if got := RemoveCards(hand, tt.played); len(got) != tt.left {
				t.Fatalf("RemoveCards() left %d cards, want %d", len(got), tt.left)
			}
		})
	}
}

func TestCountPlayersWithCards(t *testing.T) {
	g := &Game{
		Players: map[PlayerID]*Player{
			1: {Hand: OrdinaryCards(card(Three, Clubs))},
			2: {Hand: nil},
			3: {Hand: OrdinaryCards(card(Four, Hearts)), Finished: true},
		},
	}
	if got := CountPlayersWithCards(g); got != 1 {
		t.Fatalf("CountPlayersWithCards() = %d, want 1", got)
	}
}

func newTestGame() *Game {
	players := map[PlayerID]*Player{
		1: {UserID: "u1", Seat: 1, Hand: OrdinaryCards(card(Five, Clubs), card(Six, Hearts))},
		2: {UserID: "u2", Seat: 2, Hand: []PlayerCard{Ordinary(card(Three, Clubs)), Joker(2)}},
	}
	return &Game{
		ID:      "g1",
		Phase:   PhasePlaying,
		Seats:   []PlayerID{1, 2},
		Players: players,
		Round:   StartRound([]PlayerID{1, 2}, 2),
	}
}

func TestStartingSeat(t *testing.T) {
	seat, ok := StartingSeat(newTestGame())
	if !ok || seat != 2 {
		t.Fatalf("StartingSeat() = %d, %v, want 2, true", seat, ok)
	}
}

func TestGameReverseTwiceRestoresEverything(t *testing.T) {
	g := newTestGame()
	g.Round = NewRound([]PlayerID{1, 2}, 1, MustBuildMove(card(Eight, Clubs), card(Eight, Hearts)), 0, false)
	before := g.Export()

	g.Reverse()
	if !g.Reversed {
		t.Fatalf("game should be reversed")
	}
	for _, pc := range g.Players[1].Hand {
		if !pc.Card.Reversed {
			t.Fatalf("hand card %v should be reversed", pc)
		}
	}
	if !g.Round.LastMove().Reversed() {
		t.Fatalf("table move should be reversed")
	}

	g.Reverse()
	if !reflect.DeepEqual(g.Export(), before) {
		t.Fatalf("double reversal changed the game:\n got %+v\nwant %+v", g.Export(), before)
	}
}

func TestGameSnapshotJSON(t *testing.T) {
	g := newTestGame()
	g.FinishOrder = []PlayerID{}
	data, err := json.Marshal(g.Export())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var snap GameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := RestoreGame(snap)
	if restored.ID != g.ID || !restored.Round.Equal(g.Round) {
		t.Fatalf("restored game mismatch: %+v", restored)
	}
	if !reflect.DeepEqual(restored.Players[2].Hand, g.Players[2].Hand) {
		t.Fatalf("hand = %v, want %v", restored.Players[2].Hand, g.Players[2].Hand)
	}
}

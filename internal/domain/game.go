package domain

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseLobby indicates the game is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates cards are being played.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates at most one player still holds cards.
	PhaseEnded Phase = "ended"
)

// Player holds the domain state for a player in a game.
type Player struct {
	UserID   string
	Seat     PlayerID
	Hand     []PlayerCard
	Finished bool
}

// Game is the state a round is played in: hands, orientation and placings.
type Game struct {
	ID          string
	Phase       Phase
	Seats       []PlayerID // turn order
	Players     map[PlayerID]*Player
	Round       Round
	Reversed    bool
	FinishOrder []PlayerID
	Version     int64
}

// ActiveSeats returns the seats still holding cards, in turn order.
func (g *Game) ActiveSeats() []PlayerID {
	seats := make([]PlayerID, 0, len(g.Seats))
	for _, seat := range g.Seats {
		if pl, ok := g.Players[seat]; ok && !pl.Finished {
			seats = append(seats, seat)
		}
	}
	return seats
}

// Reverse flips the card order for the rest of the game. Every hand and the
// table move are flipped together so later comparisons stay consistent.
func (g *Game) Reverse() {
	for _, pl := range g.Players {
		hand := make([]PlayerCard, len(pl.Hand))
		for i, pc := range pl.Hand {
			hand[i] = pc.Flip()
		}
		pl.Hand = hand
	}
	g.Round = g.Round.Reverse()
	g.Reversed = !g.Reversed
}

// PlayerSnapshot is the serializable form of a Player.
type PlayerSnapshot struct {
	UserID   string       `json:"user_id"`
	Seat     PlayerID     `json:"seat"`
	Hand     []PlayerCard `json:"hand"`
	Finished bool         `json:"finished"`
}

// GameSnapshot is the serializable form of a Game.
type GameSnapshot struct {
	ID          string           `json:"id"`
	Phase       Phase            `json:"phase"`
	Seats       []PlayerID       `json:"seats"`
	Players     []PlayerSnapshot `json:"players"`
	Round       RoundSnapshot    `json:"round"`
	Reversed    bool             `json:"reversed"`
	FinishOrder []PlayerID       `json:"finish_order"`
	Version     int64            `json:"version"`
}

// Export captures the game in seat order.
func (g *Game) Export() GameSnapshot {
	snap := GameSnapshot{
		ID:          g.ID,
		Phase:       g.Phase,
		Seats:       append([]PlayerID(nil), g.Seats...),
		Round:       g.Round.Export(),
		Reversed:    g.Reversed,
		FinishOrder: append([]PlayerID(nil), g.FinishOrder...),
		Version:     g.Version,
	}
	for _, seat := range g.Seats {
		pl := g.Players[seat]
		snap.Players = append(snap.Players, PlayerSnapshot{
			UserID:   pl.UserID,
			Seat:     pl.Seat,
			Hand:     append([]PlayerCard(nil), pl.Hand...),
			Finished: pl.Finished,
		})
	}
	return snap
}

// RestoreGame rebuilds a game from a snapshot.
func RestoreGame(s GameSnapshot) *Game {
	g := &Game{
		ID:          s.ID,
		Phase:       s.Phase,
		Seats:       append([]PlayerID(nil), s.Seats...),
		Players:     make(map[PlayerID]*Player, len(s.Players)),
		Round:       RestoreRound(s.Round),
		Reversed:    s.Reversed,
		FinishOrder: append([]PlayerID(nil), s.FinishOrder...),
		Version:     s.Version,
	}
	for _, ps := range s.Players {
		g.Players[ps.Seat] = &Player{
			UserID:   ps.UserID,
			Seat:     ps.Seat,
			Hand:     append([]PlayerCard(nil), ps.Hand...),
			Finished: ps.Finished,
		}
	}
	return g
}

package domain

// RoundSnapshot is the serializable form of a Round.
type RoundSnapshot struct {
	Players       []PlayerID `json:"players"`
	CurrentPlayer PlayerID   `json:"current_player"`
	LastMove      Move       `json:"last_move"`
	TableSetter   PlayerID   `json:"table_setter,omitempty"`
	PassCount     int        `json:"pass_count"`
	FirstRound    bool       `json:"first_round"`
}

// Export captures every field of the round.
func (r Round) Export() RoundSnapshot {
	return RoundSnapshot{
		Players:       r.Players(),
		CurrentPlayer: r.current,
		LastMove:      r.lastMove,
		TableSetter:   r.setter,
		PassCount:     r.passCount,
		FirstRound:    r.firstRound,
	}
}

// RestoreRound rebuilds a round from a snapshot with the same checks as
// NewRound. A missing table setter is inferred as NewRound does.
func RestoreRound(s RoundSnapshot) Round {
	r := NewRound(s.Players, s.CurrentPlayer, s.LastMove, s.PassCount, s.FirstRound)
	if s.TableSetter != 0 && !r.lastMove.IsPass() {
		r.setter = s.TableSetter
	}
	return r
}

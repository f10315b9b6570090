package domain

import (
	"errors"
	"fmt"
)

// PlayerID identifies a player within a game. It is the player's 1-based seat.
type PlayerID int

// ErrIllegalMove is wrapped by every rejection returned from Round.Play.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrNotYourTurn      = fmt.Errorf("%w: not your turn", ErrIllegalMove)
	ErrMissingStartCard = fmt.Errorf("%w: opening move must include %v", ErrIllegalMove, LowestCard)
	ErrPassOnEmptyTable = fmt.Errorf("%w: cannot pass on an empty table", ErrIllegalMove)
	ErrWrongCategory    = fmt.Errorf("%w: move does not match the table", ErrIllegalMove)
	ErrTooWeak          = fmt.Errorf("%w: move does not beat the table", ErrIllegalMove)
)

// Round is the turn state of a game. It is a value: every transition returns a
// new Round and a rejected play returns the receiver untouched.
type Round struct {
	players    []PlayerID
	current    PlayerID
	lastMove   Move
	setter     PlayerID // who laid lastMove; zero on a clear table
	passCount  int
	firstRound bool
}

// NewRound builds a round. The current player must be one of players; anything
// else is a wiring bug and panics. The table move is taken to have been laid
// by the player passCount+1 seats before current.
func NewRound(players []PlayerID, current PlayerID, lastMove Move, passCount int, firstRound bool) Round {
	i := indexOf(players, current)
	if i < 0 {
		panic(fmt.Sprintf("domain: current player %d is not in the round %v", current, players))
	}
	r := Round{
		players:    append([]PlayerID(nil), players...),
		current:    current,
		lastMove:   lastMove,
		passCount:  passCount,
		firstRound: firstRound,
	}
	if !lastMove.IsPass() {
		n := len(players)
		r.setter = players[((i-passCount-1)%n+n)%n]
	}
	return r
}

// StartRound is the state at the beginning of a game: clear table, opening move pending.
func StartRound(players []PlayerID, first PlayerID) Round {
	return NewRound(players, first, Pass, 0, true)
}

// Play applies a move for player. On rejection the unchanged round is
// returned together with an error wrapping ErrIllegalMove.
func (r Round) Play(player PlayerID, mv Move) (Round, error) {
	if player != r.current {
		return r, ErrNotYourTurn
	}
	if r.firstRound && !mv.Contains(LowestCard) {
		return r, ErrMissingStartCard
	}

	tableClear := r.lastMove.IsPass()
	if tableClear && mv.IsPass() {
		return r, ErrPassOnEmptyTable
	}

	next := r.clone()

	if mv.IsPass() {
		next.passCount++
		next.current = r.nextAfter(player)
		if next.passCount >= r.passThreshold() {
			// Everyone still in the round passed. The rotation has reached the
			// setter, or the setter's successor when the setter has gone out.
			next.clearTable()
		}
		return next, nil
	}

	if !tableClear {
		c, ok := CompareMoves(mv, r.lastMove)
		if !ok {
			return r, ErrWrongCategory
		}
		if c <= 0 {
			return r, ErrTooWeak
		}
	}

	next.firstRound = false
	next.passCount = 0

	if mv.Unbeatable() {
		next.current = player
		next.clearTable()
		return next, nil
	}

	next.current = r.nextAfter(player)
	next.lastMove = mv
	next.setter = player
	return next, nil
}

// NextPlayer is the player expected to act.
func (r Round) NextPlayer() PlayerID { return r.current }

// LastMove is the move on top of the table, Pass when the table is clear.
func (r Round) LastMove() Move { return r.lastMove }

// PassCount is the number of players still in the round who passed on the table move.
func (r Round) PassCount() int { return r.passCount }

// FirstRound reports whether the opening move of the game is still pending.
func (r Round) FirstRound() bool { return r.firstRound }

// Players returns a copy of the remaining players in turn order.
func (r Round) Players() []PlayerID {
	return append([]PlayerID(nil), r.players...)
}

// UpdatePlayers shrinks the round to the given players. When the current
// player is gone the turn moves to the first survivor after them in the old
// order. Passes by removed players no longer count; if the survivors have
// all passed the table clears and the setter, when still present, leads.
func (r Round) UpdatePlayers(players []PlayerID) Round {
	if len(players) == 0 {
		panic("domain: a round needs at least one player")
	}

	next := r.clone()
	next.players = append([]PlayerID(nil), players...)

	if indexOf(players, r.current) < 0 {
		next.current = r.successorIn(players)
	}

	next.passCount = 0
	for _, p := range r.passers() {
		if indexOf(players, p) >= 0 {
			next.passCount++
		}
	}

	if !next.lastMove.IsPass() && next.passCount > 0 && next.passCount >= next.passThreshold() {
		if indexOf(players, next.setter) >= 0 {
			next.current = next.setter
		}
		next.clearTable()
	}
	return next
}

// passers are the players who passed on the table move: the passCount
// players directly before the current player.
func (r Round) passers() []PlayerID {
	n := len(r.players)
	i := indexOf(r.players, r.current)
	out := make([]PlayerID, 0, r.passCount)
	for step := 1; step <= r.passCount && step < n; step++ {
		out = append(out, r.players[((i-step)%n+n)%n])
	}
	return out
}

// passThreshold is the number of passes that clears the table: everyone but
// the setter, or everyone once the setter has left the round.
func (r Round) passThreshold() int {
	if indexOf(r.players, r.setter) >= 0 {
		return len(r.players) - 1
	}
	return len(r.players)
}

func (r *Round) clearTable() {
	r.lastMove = Pass
	r.setter = 0
	r.passCount = 0
}

// Reverse flips the table move after a reversal. Applying it twice restores the round.
func (r Round) Reverse() Round {
	next := r.clone()
	next.lastMove = r.lastMove.Flip()
	return next
}

// Equal reports whether two rounds hold the same state.
func (r Round) Equal(o Round) bool {
	if r.current != o.current || r.setter != o.setter || r.passCount != o.passCount || r.firstRound != o.firstRound {
		return false
	}
	if len(r.players) != len(o.players) || !r.lastMove.Equal(o.lastMove) {
		return false
	}
	for i := range r.players {
		if r.players[i] != o.players[i] {
			return false
		}
	}
	return true
}

func (r Round) clone() Round {
	r.players = append([]PlayerID(nil), r.players...)
	return r
}

func (r Round) nextAfter(player PlayerID) PlayerID {
	i := indexOf(r.players, player)
	return r.players[(i+1)%len(r.players)]
}

// successorIn walks the old turn order from the current player and returns
// the first player that is still present.
func (r Round) successorIn(players []PlayerID) PlayerID {
	start := indexOf(r.players, r.current)
	for step := 1; step <= len(r.players); step++ {
		candidate := r.players[(start+step)%len(r.players)]
		if indexOf(players, candidate) >= 0 {
			return candidate
		}
	}
	return players[0]
}

func indexOf(players []PlayerID, id PlayerID) int {
	for i, p := range players {
		if p == id {
			return i
		}
	}
	return -1
}

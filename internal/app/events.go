package app

import "github.com/benbrunton/pusoy-dos/internal/domain"

// EventKind identifies emitted domain events for dispatch to players.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardPlayed     EventKind = "card_played"
	EventCardsReversed  EventKind = "cards_reversed"
	EventTurnPassed     EventKind = "turn_passed"
	EventTableCleared   EventKind = "table_cleared"
	EventPlayerFinished EventKind = "player_finished"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID    string
	Phase     domain.Phase
	FirstSeat domain.PlayerID
}

type HandDealtPayload struct {
	Seat domain.PlayerID
	Hand []domain.PlayerCard
}

type CardPlayedPayload struct {
	Seat     domain.PlayerID
	Move     domain.Move
	NextSeat domain.PlayerID
}

type CardsReversedPayload struct {
	Seat     domain.PlayerID
	Reversed bool
}

type TurnPassedPayload struct {
	Seat     domain.PlayerID
	NextSeat domain.PlayerID
}

// TableClearedPayload names the seat that now leads on an empty table.
type TableClearedPayload struct {
	LeadSeat domain.PlayerID
}

type PlayerFinishedPayload struct {
	Seat     domain.PlayerID
	Position int
}

type GameEndedPayload struct {
	FinishOrder []domain.PlayerID
}

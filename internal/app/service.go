package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/benbrunton/pusoy-dos/internal/config"
	"github.com/benbrunton/pusoy-dos/internal/domain"
	"github.com/benbrunton/pusoy-dos/internal/logging"
)

// Service contains Pusoy Dos use-cases operating on domain state.
type Service struct {
	rng    *rand.Rand
	logger runtime.Logger
	cfg    *config.GameConfig
}

// NewService constructs a Service. A nil rng is time-seeded, a nil logger
// discards output and a nil config falls back to the global game config.
func NewService(rng *rand.Rand, logger runtime.Logger, cfg *config.GameConfig) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	if cfg == nil {
		cfg = config.GetGameConfig()
	}
	return &Service{rng: rng, logger: logger, cfg: cfg}
}

var (
	ErrNotPlaying         = errors.New("game not in playing phase")
	ErrTooFewPlayers      = errors.New("not enough players to start")
	ErrTooManyPlayers     = errors.New("too many players to start")
	ErrUnknownPlayer      = errors.New("player not found")
	ErrPlayerFinished     = errors.New("player already finished")
	ErrNoCards            = errors.New("no cards played; use PassTurn")
	ErrUnboundJoker       = errors.New("joker must be bound to a card before it is played")
	ErrCardsNotHeld       = errors.New("cards not held by player")
	ErrInvalidCombination = errors.New("cards do not form a legal move")
)

// StartGame deals a new game to the given players. userIDs are in seat order;
// empty strings are empty seats and are skipped. The holder of the lowest
// card opens.
func (s *Service) StartGame(userIDs []string) (*domain.Game, []Event, error) {
	game := &domain.Game{
		ID:      uuid.NewString(),
		Phase:   domain.PhasePlaying,
		Players: make(map[domain.PlayerID]*domain.Player),
	}
	for i, userID := range userIDs {
		if userID == "" {
			continue
		}
		seat := domain.PlayerID(i + 1)
		game.Players[seat] = &domain.Player{UserID: userID, Seat: seat}
		game.Seats = append(game.Seats, seat)
	}

	if len(game.Seats) < s.cfg.MinPlayers {
		return nil, nil, ErrTooFewPlayers
	}
	if len(game.Seats) > s.cfg.MaxPlayers {
		return nil, nil, ErrTooManyPlayers
	}

	deck := domain.ShuffleDeck(domain.NewDeck(s.cfg.Jokers), s.rng)
	hands := domain.Deal(deck, len(game.Seats))

	events := make([]Event, 0, len(game.Seats)+1)
	for i, seat := range game.Seats {
		pl := game.Players[seat]
		pl.Hand = hands[i]
		domain.SortHand(pl.Hand)

		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Hand: append([]domain.PlayerCard(nil), pl.Hand...),
			},
			Recipients: []string{pl.UserID},
		})
	}

	first, ok := domain.StartingSeat(game)
	if !ok {
		return nil, nil, fmt.Errorf("no player holds %v", domain.LowestCard)
	}
	game.Round = domain.StartRound(game.Seats, first)

	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: game.ID, Phase: game.Phase, FirstSeat: first},
	})

	s.logger.WithFields(map[string]interface{}{
		"game":    game.ID,
		"players": len(game.Seats),
	}).Info("game started, seat %d opens", first)

	return game, events, nil
}

// PlayCards validates and applies a play. The game is only modified when the
// play is accepted.
func (s *Service) PlayCards(game *domain.Game, seat domain.PlayerID, cards []domain.PlayerCard) ([]Event, error) {
	pl, err := s.actor(game, seat)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	for _, pc := range cards {
		if pc.Kind == domain.KindJoker {
			return nil, ErrUnboundJoker
		}
	}
	if !domain.Holds(pl.Hand, cards) {
		return nil, ErrCardsNotHeld
	}

	oriented := make([]domain.PlayerCard, len(cards))
	for i, pc := range cards {
		oriented[i] = pc.Oriented(game.Reversed)
	}
	mv, ok := domain.BuildMove(oriented)
	if !ok {
		return nil, ErrInvalidCombination
	}

	next, err := game.Round.Play(seat, mv)
	if err != nil {
		return nil, fmt.Errorf("seat %d cannot play %v: %w", seat, mv, err)
	}

	log := s.logger.WithFields(map[string]interface{}{"game": game.ID, "seat": seat})

	game.Round = next
	pl.Hand = domain.RemoveCards(pl.Hand, cards)
	game.Version++
	log.Debug("played %v", mv)

	reversed := mv.TriggersReversal() && s.cfg.ReversalEnabled
	if reversed {
		game.Reverse()
		log.Info("card order reversed (reversed=%t)", game.Reversed)
	}

	position := 0
	if len(pl.Hand) == 0 {
		pl.Finished = true
		game.FinishOrder = append(game.FinishOrder, seat)
		position = len(game.FinishOrder)
		log.Info("finished in position %d", position)
	}

	var ended *Event
	if domain.CountPlayersWithCards(game) <= 1 {
		ev := s.endGame(game)
		ended = &ev
	} else if position > 0 {
		game.Round = game.Round.UpdatePlayers(game.ActiveSeats())
	}

	// Seats in the payloads are read after the finisher has left the round.
	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Move: mv, NextSeat: game.Round.NextPlayer()},
	}}
	if mv.Unbeatable() && ended == nil {
		events = append(events, tableCleared(game.Round.NextPlayer()))
	}
	if reversed {
		events = append(events, Event{
			Kind:    EventCardsReversed,
			Payload: CardsReversedPayload{Seat: seat, Reversed: game.Reversed},
		})
	}
	if position > 0 {
		events = append(events, Event{
			Kind:    EventPlayerFinished,
			Payload: PlayerFinishedPayload{Seat: seat, Position: position},
		})
	}
	if ended != nil {
		events = append(events, *ended)
	}
	return events, nil
}

// PassTurn passes for the acting seat.
func (s *Service) PassTurn(game *domain.Game, seat domain.PlayerID) ([]Event, error) {
	if _, err := s.actor(game, seat); err != nil {
		return nil, err
	}

	tableBefore := game.Round.LastMove()
	next, err := game.Round.Play(seat, domain.Pass)
	if err != nil {
		return nil, fmt.Errorf("seat %d cannot pass: %w", seat, err)
	}
	game.Round = next
	game.Version++

	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextSeat: next.NextPlayer()},
	}}
	if !tableBefore.IsPass() && next.LastMove().IsPass() {
		events = append(events, tableCleared(next.NextPlayer()))
	}

	s.logger.WithFields(map[string]interface{}{"game": game.ID, "seat": seat}).
		Debug("passed, %d consecutive", next.PassCount())
	return events, nil
}

func (s *Service) actor(game *domain.Game, seat domain.PlayerID) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[seat]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if pl.Finished {
		return nil, ErrPlayerFinished
	}
	return pl, nil
}

// endGame places the last holder and closes the game.
func (s *Service) endGame(game *domain.Game) Event {
	for _, seat := range game.ActiveSeats() {
		game.Players[seat].Finished = true
		game.FinishOrder = append(game.FinishOrder, seat)
	}
	game.Phase = domain.PhaseEnded

	s.logger.WithField("game", game.ID).Info("game ended, finish order %v", game.FinishOrder)
	return Event{
		Kind:    EventGameEnded,
		Payload: GameEndedPayload{FinishOrder: append([]domain.PlayerID(nil), game.FinishOrder...)},
	}
}

func tableCleared(lead domain.PlayerID) Event {
	return Event{Kind: EventTableCleared, Payload: TableClearedPayload{LeadSeat: lead}}
}

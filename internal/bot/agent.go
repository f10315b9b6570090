package bot

import "github.com/benbrunton/pusoy-dos/internal/domain"

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Seat     domain.PlayerID
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player, ok := game.Players[a.Seat]
	if !ok {
		// Agent is not part of this game
		return Move{Pass: true}, nil
	}

	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}

// OnGameEvent notifies the agent of a game event.
func (a *Agent) OnGameEvent(event interface{}) {
	a.Strategy.OnEvent(event)
}

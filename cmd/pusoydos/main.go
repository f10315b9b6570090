// Command pusoydos plays a seeded bot-only game of Pusoy Dos to completion,
// persisting every transition, and prints the finishing order.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/spf13/pflag"

	"github.com/benbrunton/pusoy-dos/internal/app"
	"github.com/benbrunton/pusoy-dos/internal/bot"
	"github.com/benbrunton/pusoy-dos/internal/config"
	"github.com/benbrunton/pusoy-dos/internal/domain"
	"github.com/benbrunton/pusoy-dos/internal/logging"
	"github.com/benbrunton/pusoy-dos/internal/ports"
	"github.com/benbrunton/pusoy-dos/internal/session"
	"github.com/benbrunton/pusoy-dos/internal/store"
)

// maxSteps bounds a simulation; a game between legal players ends long before.
const maxSteps = 10000

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pusoydos:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, logOut io.Writer) error {
	fs := pflag.NewFlagSet("pusoydos", pflag.ContinueOnError)
	configPath := fs.String("config", "", "game config file (yaml, json or toml)")
	seed := fs.Int64("seed", time.Now().UnixNano(), "shuffle and bot seed")
	players := fs.Int("players", 4, "number of bot players")
	strategies := fs.StringSlice("bots", []string{"lowest"}, "bot strategy per seat, cycled (lowest, random)")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Int("jokers", 2, "jokers in the deck (0-2)")
	fs.String("redis-addr", "", "store games in redis at this address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*strategies) == 0 {
		*strategies = []string{"lowest"}
	}

	cfg, err := config.LoadWithFlags(*configPath, fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	games, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var signer *session.Signer
	if cfg.Session.Secret != "" {
		signer, err = session.NewSigner(cfg.Session.Secret, cfg.Session.Issuer, time.Duration(cfg.Session.TTLSeconds)*time.Second)
		if err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	sim := &simulation{
		svc:    app.NewService(rng, logger, cfg),
		store:  games,
		signer: signer,
		logger: logger.WithField("seed", *seed),
	}

	userIDs := make([]string, *players)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("bot-%d", i+1)
	}
	game, err := sim.start(ctx, userIDs, *strategies, rng)
	if err != nil {
		return err
	}
	if err := sim.play(ctx, game); err != nil {
		return err
	}

	fmt.Fprintf(out, "game %s finished\n", game.ID)
	for i, seat := range game.FinishOrder {
		fmt.Fprintf(out, "%d. %s (seat %d)\n", i+1, game.Players[seat].UserID, seat)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.GameConfig) (ports.GameStore, func(), error) {
	if cfg.Redis.Addr == "" {
		return store.NewMemoryStore(), func() {}, nil
	}
	rs, err := store.DialRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

type simulation struct {
	svc    *app.Service
	store  ports.GameStore
	signer *session.Signer
	logger runtime.Logger
	agents map[domain.PlayerID]*bot.Agent
}

func (s *simulation) start(ctx context.Context, userIDs, strategies []string, rng *rand.Rand) (*domain.Game, error) {
	game, _, err := s.svc.StartGame(userIDs)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, game.Export()); err != nil {
		return nil, fmt.Errorf("save new game: %w", err)
	}

	s.agents = make(map[domain.PlayerID]*bot.Agent, len(game.Seats))
	for i, seat := range game.Seats {
		level, err := bot.ParseBotLevel(strategies[i%len(strategies)])
		if err != nil {
			return nil, err
		}
		brain, err := bot.NewBrain(level, rng)
		if err != nil {
			return nil, err
		}
		s.agents[seat] = &bot.Agent{ID: game.Players[seat].UserID, Seat: seat, Strategy: brain}
	}
	return game, nil
}

func (s *simulation) play(ctx context.Context, game *domain.Game) error {
	for step := 0; game.Phase == domain.PhasePlaying; step++ {
		if step >= maxSteps {
			return fmt.Errorf("game %s did not finish in %d steps", game.ID, maxSteps)
		}
		seat := game.Round.NextPlayer()
		if err := s.checkTurnToken(game, seat); err != nil {
			return err
		}

		move, err := s.agents[seat].Play(game)
		if err != nil {
			return err
		}

		expected := game.Version
		var evs []app.Event
		if move.Pass {
			evs, err = s.svc.PassTurn(game, seat)
		} else {
			evs, err = s.svc.PlayCards(game, seat, move.Cards)
		}
		if err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
		if err := s.store.Swap(ctx, expected, game.Export()); err != nil {
			return fmt.Errorf("save game %s at version %d: %w", game.ID, game.Version, err)
		}

		for _, agent := range s.agents {
			for _, ev := range evs {
				agent.OnGameEvent(ev)
			}
		}
	}

	saved, err := s.store.Load(ctx, game.ID)
	if err != nil {
		return err
	}
	if saved.Phase != domain.PhaseEnded || saved.Version != game.Version {
		return fmt.Errorf("stored game %s is at %s/v%d, want ended/v%d", game.ID, saved.Phase, saved.Version, game.Version)
	}
	s.logger.WithField("game", game.ID).Info("stored %d transitions", saved.Version)
	return nil
}

// checkTurnToken round-trips the acting seat's turn token when sessions are enabled.
func (s *simulation) checkTurnToken(game *domain.Game, seat domain.PlayerID) error {
	if s.signer == nil {
		return nil
	}
	token, err := s.signer.Sign(game.ID, game.Round.Export())
	if err != nil {
		return err
	}
	claims, err := s.signer.Verify(token)
	if err != nil {
		return err
	}
	if claims.Subject != game.ID || claims.Round.CurrentPlayer != seat {
		return fmt.Errorf("turn token for game %s names seat %d, want %d", claims.Subject, claims.Round.CurrentPlayer, seat)
	}
	return nil
}

package bot

import (
	"fmt"
	"math/rand"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelLowest BotLevel = iota
	BotLevelRandom
)

// ParseBotLevel maps a strategy name ("lowest", "random") to its level.
func ParseBotLevel(name string) (BotLevel, error) {
	switch name {
	case "lowest", "":
		return BotLevelLowest, nil
	case "random":
		return BotLevelRandom, nil
	}
	return 0, fmt.Errorf("unknown bot strategy: %q", name)
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case BotLevelLowest:
		return &LowestBot{}, nil
	case BotLevelRandom:
		if rng == nil {
			return nil, fmt.Errorf("random bot needs a rng")
		}
		return NewRandomBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

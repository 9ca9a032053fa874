package coin

import (
	"math/rand"
	"time"

	"github.com/kerchief/duelbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_coin.go github.com/kerchief/duelbot/internal/coin Flipper

// Flipper draws the asymmetric duel roles, mockable for deterministic tests
type Flipper interface {
	// DrawRole returns Dropper or Checker with equal probability
	DrawRole() models.Role
}

// Config for the role flipper
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Randomized implements Flipper with a uniform 50/50 draw
type Randomized struct {
	random *rand.Rand
}

// New creates a new role flipper
func New(cfg *Config) *Randomized {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Randomized{
		random: rand.New(source),
	}
}

// DrawRole returns Dropper or Checker with equal probability
func (f *Randomized) DrawRole() models.Role {
	if f.random.Intn(2) == 0 {
		return models.RoleDropper
	}
	return models.RoleChecker
}

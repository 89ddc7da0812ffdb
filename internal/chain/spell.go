package chain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// SpellArgs is the number of positional values describing a chain heal.
const SpellArgs = 5

// MaxInitialPower keeps every decayed power exactly representable as float64.
const MaxInitialPower = 1 << 53

// DefaultMaxJumps bounds NumberOfJumps when the caller supplies no ceiling.
const DefaultMaxJumps = 32

var (
	ErrMissingArguments = errors.New("not enough spell arguments")
	ErrInvalidArgument  = errors.New("invalid spell argument")
)

// SpellConfig describes one cast of the chain heal.
type SpellConfig struct {
	InitialRange   int     // max distance from the caster to the first target
	JumpRange      int     // max distance between consecutive targets
	NumberOfJumps  int     // max targets in the chain
	InitialPower   int     // heal power of the first jump
	PowerReduction float64 // fraction of power lost on every jump, in [0, 1)
}

// Validate checks ranges. maxJumps <= 0 falls back to DefaultMaxJumps.
func (c SpellConfig) Validate(maxJumps int) error {
	if maxJumps <= 0 {
		maxJumps = DefaultMaxJumps
	}
	if c.InitialRange < 0 {
		return fmt.Errorf("%w: initial range %d must be >= 0", ErrInvalidArgument, c.InitialRange)
	}
	if c.JumpRange < 0 {
		return fmt.Errorf("%w: jump range %d must be >= 0", ErrInvalidArgument, c.JumpRange)
	}
	if c.NumberOfJumps < 1 || c.NumberOfJumps > maxJumps {
		return fmt.Errorf("%w: number of jumps %d must be in [1, %d]", ErrInvalidArgument, c.NumberOfJumps, maxJumps)
	}
	if c.InitialPower < 0 || c.InitialPower > MaxInitialPower {
		return fmt.Errorf("%w: initial power %d must be in [0, %d]", ErrInvalidArgument, c.InitialPower, MaxInitialPower)
	}
	if math.IsNaN(c.PowerReduction) || c.PowerReduction < 0 || c.PowerReduction >= 1 {
		return fmt.Errorf("%w: power reduction %v must be in [0, 1)", ErrInvalidArgument, c.PowerReduction)
	}
	return nil
}

// ParseSpellConfig parses "initialRange jumpRange numberOfJumps initialPower powerReduction"
// from args (program name already stripped) and validates the result.
func ParseSpellConfig(args []string, maxJumps int) (SpellConfig, error) {
	var cfg SpellConfig

	if len(args) < SpellArgs {
		return cfg, fmt.Errorf("%w: got %d, want %d", ErrMissingArguments, len(args), SpellArgs)
	}

	ints := []struct {
		field string
		dst   *int
	}{
		{"initial range", &cfg.InitialRange},
		{"jump range", &cfg.JumpRange},
		{"number of jumps", &cfg.NumberOfJumps},
		{"initial power", &cfg.InitialPower},
	}
	for i, f := range ints {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return cfg, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidArgument, f.field, args[i])
		}
		*f.dst = v
	}

	r, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return cfg, fmt.Errorf("%w: power reduction must be a number, got %q", ErrInvalidArgument, args[4])
	}
	cfg.PowerReduction = r

	if err := cfg.Validate(maxJumps); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package chain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbible3/chain-heal/internal/model"
)

func newCaster(x, y int32) *model.Participant {
	return model.NewParticipant(model.DefaultCasterName, x, y, 100, 100)
}

func TestCast_TwoHopScenario(t *testing.T) {
	cfg := SpellConfig{InitialRange: 5, JumpRange: 5, NumberOfJumps: 2, InitialPower: 10, PowerReduction: 0.5}
	caster := newCaster(0, 0)
	a := model.NewParticipant("A", 3, 0, 50, 100)
	b := model.NewParticipant("B", 6, 0, 80, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, a, b})

	require.Len(t, res.Path, 2)
	assert.Equal(t, []string{"A", "B"}, res.Names())
	assert.Equal(t, 10, res.Path[0].Heal)
	assert.Equal(t, 5, res.Path[1].Heal)
	assert.Equal(t, 15, res.Total)
	assert.Equal(t, res.Total, res.Sum())
}

func TestCast_CasterNeverHealed(t *testing.T) {
	cfg := SpellConfig{InitialRange: 10, JumpRange: 10, NumberOfJumps: 3, InitialPower: 50, PowerReduction: 0}
	caster := model.NewParticipant(model.DefaultCasterName, 0, 0, 1, 100)
	a := model.NewParticipant("A", 1, 0, 90, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, a})

	assert.Equal(t, []string{"A"}, res.Names())
	assert.Equal(t, 10, res.Total)
}

func TestCast_NobodyInInitialRange(t *testing.T) {
	cfg := SpellConfig{InitialRange: 2, JumpRange: 100, NumberOfJumps: 3, InitialPower: 50, PowerReduction: 0.1}
	caster := newCaster(0, 0)
	a := model.NewParticipant("A", 10, 0, 10, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, a})

	assert.Empty(t, res.Path)
	assert.Zero(t, res.Total)
}

func TestCast_EveryoneAtFullHealth(t *testing.T) {
	cfg := SpellConfig{InitialRange: 10, JumpRange: 10, NumberOfJumps: 3, InitialPower: 50, PowerReduction: 0.1}
	caster := newCaster(0, 0)
	a := model.NewParticipant("A", 1, 0, 100, 100)
	b := model.NewParticipant("B", 2, 0, 70, 70)

	res := Cast(cfg, caster, []*model.Participant{caster, a, b})

	assert.Empty(t, res.Path)
	assert.Zero(t, res.Total)
}

func TestCast_FullHealthTargetNotPreferred(t *testing.T) {
	cfg := SpellConfig{InitialRange: 5, JumpRange: 5, NumberOfJumps: 2, InitialPower: 10, PowerReduction: 0}
	caster := newCaster(0, 0)
	full := model.NewParticipant("Full", 1, 0, 100, 100)
	hurt := model.NewParticipant("Hurt", 2, 0, 50, 100)

	// Full is explored first and reaches the same total through Hurt.
	res := Cast(cfg, caster, []*model.Participant{caster, full, hurt})

	assert.Equal(t, []string{"Hurt"}, res.Names())
	assert.Equal(t, 10, res.Total)
}

func TestCast_JumpsThroughFullHealthTarget(t *testing.T) {
	cfg := SpellConfig{InitialRange: 1, JumpRange: 5, NumberOfJumps: 2, InitialPower: 10, PowerReduction: 0}
	caster := newCaster(0, 0)
	full := model.NewParticipant("Full", 1, 0, 100, 100)
	far := model.NewParticipant("Far", 6, 0, 50, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, full, far})

	assert.Equal(t, []string{"Full", "Far"}, res.Names())
	assert.Equal(t, []int{0, 10}, []int{res.Path[0].Heal, res.Path[1].Heal})
	assert.Equal(t, 10, res.Total)
}

func TestCast_PrefersLaterBiggerHeal(t *testing.T) {
	// Greedy would start on A (missing 10); the best chain starts on B and
	// spends the strong first jump on it.
	cfg := SpellConfig{InitialRange: 5, JumpRange: 5, NumberOfJumps: 2, InitialPower: 100, PowerReduction: 0.5}
	caster := newCaster(0, 0)
	a := model.NewParticipant("A", 1, 0, 90, 100)
	b := model.NewParticipant("B", 2, 0, 0, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, a, b})

	assert.Equal(t, []string{"B", "A"}, res.Names())
	assert.Equal(t, 110, res.Total)
}

func TestCast_TrialsDoNotShareVisitedState(t *testing.T) {
	// A-B-C where only A and C are in initial range and A-C is out of jump range.
	// The trial from C must still reach B and A after the trial from A is done.
	cfg := SpellConfig{InitialRange: 5, JumpRange: 5, NumberOfJumps: 3, InitialPower: 30, PowerReduction: 0.5}
	caster := newCaster(3, -4)
	a := model.NewParticipant("A", 0, 0, 95, 100)
	b := model.NewParticipant("B", 3, 3, 90, 100)
	c := model.NewParticipant("C", 6, 0, 0, 100)

	res := Cast(cfg, caster, []*model.Participant{caster, a, b, c})

	assert.Equal(t, []string{"C", "B", "A"}, res.Names())
	assert.Equal(t, []int{30, 10, 5}, []int{res.Path[0].Heal, res.Path[1].Heal, res.Path[2].Heal})
	assert.Equal(t, 45, res.Total)
}

func TestFindBestPath_SimplePathWithinJumpLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 30; round++ {
		ps := randomParticipants(rng, 8, 12)
		cfg := SpellConfig{
			InitialRange:   rng.Intn(10),
			JumpRange:      rng.Intn(8),
			NumberOfJumps:  1 + rng.Intn(5),
			InitialPower:   rng.Intn(120),
			PowerReduction: rng.Float64() * 0.9,
		}
		res := FindBestPath(cfg, model.NewLocation(6, 6), BuildGraph(ps, cfg.JumpRange))

		assert.LessOrEqual(t, len(res.Path), cfg.NumberOfJumps, "round %d", round)
		assert.Equal(t, res.Total, res.Sum(), "round %d", round)
		assert.Equal(t, bruteForceBest(cfg, model.NewLocation(6, 6), ps), res.Total, "round %d", round)

		seen := map[*model.Participant]bool{}
		for i, h := range res.Path {
			assert.False(t, seen[h.Participant], "round %d: %s repeated", round, h.Participant.Name)
			seen[h.Participant] = true
			assert.GreaterOrEqual(t, h.Heal, 0)
			assert.LessOrEqual(t, h.Heal, h.Participant.MissingHP())
			assert.Equal(t, h.Participant.HealFor(cfg.PowerForJump(i+1)), h.Heal)
			if i > 0 {
				prev := res.Path[i-1].Participant
				assert.True(t, prev.Location.InRange(h.Participant.Location, cfg.JumpRange))
			}
		}
	}
}

func TestFindBestPath_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	caster := model.NewLocation(5, 5)

	for round := 0; round < 20; round++ {
		ps := randomParticipants(rng, 8, 10)
		base := SpellConfig{InitialRange: 4, JumpRange: 2, NumberOfJumps: 1, InitialPower: 60, PowerReduction: 0.25}

		prev := 0
		for jumps := 1; jumps <= 5; jumps++ {
			cfg := base
			cfg.NumberOfJumps = jumps
			total := FindBestPath(cfg, caster, BuildGraph(ps, cfg.JumpRange)).Total
			assert.GreaterOrEqual(t, total, prev, "round %d: jumps %d", round, jumps)
			prev = total
		}

		prev = 0
		for jumpRange := 0; jumpRange <= 8; jumpRange++ {
			cfg := base
			cfg.NumberOfJumps = 3
			cfg.JumpRange = jumpRange
			total := FindBestPath(cfg, caster, BuildGraph(ps, cfg.JumpRange)).Total
			assert.GreaterOrEqual(t, total, prev, "round %d: jump range %d", round, jumpRange)
			prev = total
		}
	}
}

// bruteForceBest enumerates every simple chain with its own visited map.
func bruteForceBest(cfg SpellConfig, caster model.Location, ps []*model.Participant) int {
	best := 0
	var walk func(cur *model.Participant, hop, total int, used map[*model.Participant]bool)
	walk = func(cur *model.Participant, hop, total int, used map[*model.Participant]bool) {
		total += cur.HealFor(cfg.PowerForJump(hop))
		best = max(best, total)
		if hop == cfg.NumberOfJumps {
			return
		}
		for _, next := range ps {
			if used[next] || !cur.Location.InRange(next.Location, cfg.JumpRange) {
				continue
			}
			used[next] = true
			walk(next, hop+1, total, used)
			delete(used, next)
		}
	}
	for _, p := range ps {
		if caster.InRange(p.Location, cfg.InitialRange) {
			walk(p, 1, 0, map[*model.Participant]bool{p: true})
		}
	}
	return best
}

func BenchmarkFindBestPath(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	ps := randomParticipants(rng, 20, 20)
	cfg := SpellConfig{InitialRange: 8, JumpRange: 6, NumberOfJumps: 5, InitialPower: 500, PowerReduction: 0.2}
	g := BuildGraph(ps, cfg.JumpRange)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindBestPath(cfg, model.NewLocation(10, 10), g)
	}
}

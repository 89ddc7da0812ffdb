// Package chain finds the best jump sequence for a chain heal.
//
// A chain heal lands on a target within InitialRange of the caster, then jumps
// up to NumberOfJumps-1 more times between targets standing within JumpRange
// of each other, losing PowerReduction of its power on every jump. Each target
// absorbs at most its missing HP. The search explores every simple path and
// keeps the one restoring the most HP in total.
package chain

import (
	"context"
	"log/slog"

	"github.com/bbible3/chain-heal/internal/model"
)

// Cast builds the proximity graph over participants and searches it from caster.
// The caster itself is left out of the graph: it never heals itself.
func Cast(cfg SpellConfig, caster *model.Participant, participants []*model.Participant) Result {
	pool := make([]*model.Participant, 0, len(participants))
	for _, p := range participants {
		if p != caster {
			pool = append(pool, p)
		}
	}

	g := BuildGraph(pool, cfg.JumpRange)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("proximity graph built", "participants", g.Len(), "adjacency", "\n"+g.String())
	}

	return FindBestPath(cfg, caster.Location, g)
}

package chain

import (
	"log/slog"

	"github.com/bbible3/chain-heal/internal/model"
)

// Hop is one target of the chain and the HP it received.
type Hop struct {
	Participant *model.Participant
	Heal        int
}

// searcher holds the state of one FindBestPath call.
// visited and path are path-local: every push in dfs is undone before it returns.
type searcher struct {
	g       *Graph
	power   []int // power[hop-1]
	visited []bool
	path    []Hop
	best    Result
}

// FindBestPath runs an exhaustive depth-first search for the chain that restores
// the most HP. Every participant within cfg.InitialRange of caster starts an
// independent trial; chains are simple paths of at most cfg.NumberOfJumps targets
// through g. The caster must not be part of g.
//
// On equal totals the chain with fewer hops wins, so targets that absorb
// nothing are not kept for free; remaining ties resolve in input order.
// A zero-total search returns an empty path.
func FindBestPath(cfg SpellConfig, caster model.Location, g *Graph) Result {
	s := &searcher{
		g:       g,
		power:   cfg.PowerTable(),
		visited: make([]bool, g.Len()),
		path:    make([]Hop, 0, max(0, cfg.NumberOfJumps)),
	}

	for i, p := range g.Participants {
		if !caster.InRange(p.Location, cfg.InitialRange) {
			continue
		}
		slog.Debug("chain trial", "start", p.Name)
		s.dfs(i, 1, 0)
	}

	return s.best
}

func (s *searcher) dfs(i, hop, total int) {
	if s.visited[i] || hop > len(s.power) {
		return
	}

	p := s.g.Participants[i]
	heal := p.HealFor(s.power[hop-1])
	total += heal

	s.path = append(s.path, Hop{Participant: p, Heal: heal})
	s.visited[i] = true

	if s.better(total) {
		s.best = Result{
			Path:  append([]Hop(nil), s.path...),
			Total: total,
		}
		slog.Debug("chain improved", "total", total, "hops", len(s.path), "last", p.Name)
	}

	for _, j := range s.g.Adjacency[i] {
		if !s.visited[j] {
			s.dfs(j, hop+1, total)
		}
	}

	s.visited[i] = false
	s.path = s.path[:len(s.path)-1]
}

// better reports whether the current path should replace the best one.
func (s *searcher) better(total int) bool {
	if total != s.best.Total {
		return total > s.best.Total
	}
	return total > 0 && len(s.path) < len(s.best.Path)
}

package chain

import (
	"strings"

	"github.com/bbible3/chain-heal/internal/model"
)

// Graph is the proximity graph of chain targets.
// Adjacency holds indices into Participants; it is symmetric and irreflexive.
type Graph struct {
	Participants []*model.Participant
	Adjacency    [][]int
}

// BuildGraph links every pair of participants standing within jumpRange of each other.
// Neighbours keep input order. O(n^2).
func BuildGraph(participants []*model.Participant, jumpRange int) *Graph {
	g := &Graph{
		Participants: participants,
		Adjacency:    make([][]int, len(participants)),
	}

	for i, p := range participants {
		for j, q := range participants {
			if i == j {
				continue
			}
			if p.Location.InRange(q.Location, jumpRange) {
				g.Adjacency[i] = append(g.Adjacency[i], j)
			}
		}
	}

	return g
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.Participants) }

// Neighbors returns participants adjacent to vertex i.
func (g *Graph) Neighbors(i int) []*model.Participant {
	out := make([]*model.Participant, 0, len(g.Adjacency[i]))
	for _, j := range g.Adjacency[i] {
		out = append(out, g.Participants[j])
	}
	return out
}

// String dumps every participant followed by its indented neighbours.
func (g *Graph) String() string {
	var b strings.Builder
	for i, p := range g.Participants {
		b.WriteString(p.Name)
		b.WriteByte('\n')
		for _, q := range g.Neighbors(i) {
			b.WriteString("    ")
			b.WriteString(q.Name)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

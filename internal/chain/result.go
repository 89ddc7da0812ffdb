package chain

import (
	"fmt"
	"io"
)

// DefaultTotalLabel prefixes the final report line.
const DefaultTotalLabel = "Total_Healing"

// Result is the best chain found and its total healing.
type Result struct {
	Path  []Hop
	Total int
}

// Sum adds up the heals recorded along the path.
// Always equals Total for a Result returned by FindBestPath.
func (r Result) Sum() int {
	sum := 0
	for _, h := range r.Path {
		sum += h.Heal
	}
	return sum
}

// Names returns the participant names in chain order.
func (r Result) Names() []string {
	names := make([]string, len(r.Path))
	for i, h := range r.Path {
		names[i] = h.Participant.Name
	}
	return names
}

// WriteReport prints "<name> <heal>" for every hop followed by "<label> <sum>".
// An empty label falls back to DefaultTotalLabel.
func WriteReport(w io.Writer, r Result, label string) error {
	if label == "" {
		label = DefaultTotalLabel
	}
	for _, h := range r.Path {
		if _, err := fmt.Fprintf(w, "%s %d\n", h.Participant.Name, h.Heal); err != nil {
			return fmt.Errorf("writing hop %s: %w", h.Participant.Name, err)
		}
	}
	if _, err := fmt.Fprintf(w, "%s %d\n", label, r.Sum()); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	return nil
}

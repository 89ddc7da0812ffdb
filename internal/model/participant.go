package model

import "fmt"

// DefaultCasterName is the reserved name of the shaman who casts the chain.
const DefaultCasterName = "Urgosa_the_Healing_Shaman"

// Participant is a character on the battlefield that the chain can jump to.
// Immutable after parsing; search state lives in the chain package.
type Participant struct {
	Name      string
	Location  Location
	CurrentHP int
	MaxHP     int
}

// NewParticipant creates a Participant at (x, y).
func NewParticipant(name string, x, y int32, currentHP, maxHP int) *Participant {
	return &Participant{
		Name:      name,
		Location:  NewLocation(x, y),
		CurrentHP: currentHP,
		MaxHP:     maxHP,
	}
}

// MissingHP returns how much HP can still be restored, never negative.
func (p *Participant) MissingHP() int {
	return max(0, p.MaxHP-p.CurrentHP)
}

// HealFor returns the amount actually restored by a heal of the given power.
// Clamped to [0, MissingHP].
func (p *Participant) HealFor(power int) int {
	return max(0, min(power, p.MissingHP()))
}

// String implements fmt.Stringer.
func (p *Participant) String() string {
	return fmt.Sprintf("%s(%d,%d %d/%d)", p.Name, p.Location.X, p.Location.Y, p.CurrentHP, p.MaxHP)
}

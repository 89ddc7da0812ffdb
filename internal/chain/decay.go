package chain

import "math"

// PowerForJump returns the heal power available on jump n (n >= 1).
//
// Power starts at InitialPower and is multiplied by (1 - PowerReduction)
// once per jump after the first. The result is rounded half away from zero,
// so 2.5 becomes 3. The first jump returns InitialPower untouched.
func (c SpellConfig) PowerForJump(n int) int {
	if n <= 1 {
		return c.InitialPower
	}
	potential := float64(c.InitialPower)
	for i := 1; i < n; i++ {
		potential *= 1 - c.PowerReduction
	}
	return int(math.Round(potential))
}

// PowerTable precomputes PowerForJump for jumps 1..NumberOfJumps.
// Index 0 is jump 1.
func (c SpellConfig) PowerTable() []int {
	table := make([]int, max(0, c.NumberOfJumps))
	for i := range table {
		table[i] = c.PowerForJump(i + 1)
	}
	return table
}

// Package pulse builds multi-burst pulse trains from a base ladder.
package pulse

import (
	"github.com/edp1096/pwlgen/pkg/ladder"
)

// BurstGap separates the last breakpoint of a burst from the first of the
// next one, so that no two bursts share a time stamp.
const BurstGap = 1.0

// Replicate returns the base rows followed by cycles shifted copies; copy k
// is offset by k*(period+BurstGap). rows is not modified.
func Replicate(rows []ladder.Row, period float64, cycles int) []ladder.Row {
	if cycles < 0 {
		cycles = 0
	}

	out := make([]ladder.Row, 0, len(rows)*(cycles+1))
	for k := 0; k <= cycles; k++ {
		offset := float64(k) * (period + BurstGap)
		for _, r := range rows {
			c := r.Clone()
			c.Time += offset
			out = append(out, c)
		}
	}
	return out
}

// ShiftPolicy moves the levels of the listed channels one row earlier: row i
// takes the level row i+1 had. The last row has no successor and is dropped
// for every channel.
type ShiftPolicy struct {
	Channels []int
}

// Apply returns the shifted rows. Channel indexes outside a row are ignored.
func (p ShiftPolicy) Apply(rows []ladder.Row) []ladder.Row {
	if len(rows) == 0 {
		return nil
	}

	out := make([]ladder.Row, len(rows)-1)
	for i := range out {
		out[i] = rows[i].Clone()
		next := rows[i+1].Levels
		for _, ch := range p.Channels {
			if ch >= 0 && ch < len(out[i].Levels) && ch < len(next) {
				out[i].Levels[ch] = next[ch]
			}
		}
	}
	return out
}

// EdgePairs doubles every row: once at its own time and once rise later,
// both with the same levels.
func EdgePairs(rows []ladder.Row, rise float64) []ladder.Row {
	out := make([]ladder.Row, 0, 2*len(rows))
	for _, r := range rows {
		edge := r.Clone()
		settle := r.Clone()
		settle.Time += rise
		out = append(out, edge, settle)
	}
	return out
}

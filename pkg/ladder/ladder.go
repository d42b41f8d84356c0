// Package ladder expands a phase script into a rise-time padded breakpoint
// ladder shared by every channel.
//
// Expansion runs in two stages. Expand turns each phase into an edge row
// (duration = rise time) and a settle row (duration = phase duration) and drops
// the edge row of the bookkeeping phase. Accumulate then stamps each row with
// the cumulative time through which its levels hold.
package ladder

import (
	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/errs"
	"github.com/edp1096/pwlgen/pkg/pwl"
	"github.com/edp1096/pwlgen/pkg/script"
)

// Row is one breakpoint of the ladder.
type Row struct {
	Time     float64   // cumulative time after this row
	Duration float64   // contribution of this row
	Levels   []float64 // channel levels valid at Time
}

// Clone returns a deep copy of r.
func (r Row) Clone() Row {
	r.Levels = append([]float64(nil), r.Levels...)
	return r
}

// Expand returns two rows per phase with zero times. The first phase loses
// its edge row.
func Expand(s script.Script) []Row {
	if s.Len() == 0 {
		return nil
	}

	rows := make([]Row, 0, 2*s.Len()-1)
	for i, p := range s.Phases() {
		if i > 0 {
			rows = append(rows, Row{Duration: consts.RiseTime, Levels: p.Levels})
		}
		// Phases() hands out fresh slices; the settle row gets its own copy.
		rows = append(rows, Row{Duration: p.Duration, Levels: append([]float64(nil), p.Levels...)})
	}
	return rows
}

// Accumulate returns a copy of rows with Time set to the running sum of
// durations, own duration included.
func Accumulate(rows []Row) []Row {
	out := make([]Row, len(rows))
	elapsed := 0.0
	for i, r := range rows {
		elapsed += r.Duration
		out[i] = r.Clone()
		out[i].Time = elapsed
	}
	return out
}

// Build expands and accumulates s.
func Build(s script.Script) ([]Row, error) {
	if s.Len() == 0 {
		return nil, errors.Wrap(errs.Shape("phases", 1, 0), "empty script")
	}
	return Accumulate(Expand(s)), nil
}

// Channels returns the number of levels carried by rows.
func Channels(rows []Row) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0].Levels)
}

// Waveforms splits rows into one waveform per channel. labels[i] names
// channel i; missing labels leave the waveform unnamed.
func Waveforms(rows []Row, labels []string) []pwl.Waveform {
	n := Channels(rows)
	waves := make([]pwl.Waveform, n)
	for ch := 0; ch < n; ch++ {
		if ch < len(labels) {
			waves[ch].Label = labels[ch]
		}
		waves[ch].Points = make([]pwl.Point, len(rows))
		for i, r := range rows {
			waves[ch].Points[i] = pwl.Point{Time: r.Time, Value: r.Levels[ch]}
		}
	}
	return waves
}

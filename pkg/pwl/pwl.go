// Package pwl holds piecewise-linear waveforms and their text form: one
// "<time><unit> <value>" breakpoint per line, as read by a SPICE PWL source
// with the file= option.
package pwl

import (
	"strings"

	"github.com/edp1096/pwlgen/pkg/util"
)

type Point struct {
	Time  float64
	Value float64
}

// Waveform is the breakpoint list of one channel, ordered by time.
type Waveform struct {
	Label  string
	Points []Point
}

// Len returns the number of breakpoints.
func (w Waveform) Len() int {
	return len(w.Points)
}

// Shift returns a copy of w with every time increased by dt.
func (w Waveform) Shift(dt float64) Waveform {
	out := Waveform{Label: w.Label, Points: make([]Point, len(w.Points))}
	for i, p := range w.Points {
		out.Points[i] = Point{Time: p.Time + dt, Value: p.Value}
	}
	return out
}

// ValueAt evaluates w at t, holding the end values outside the breakpoints.
func (w Waveform) ValueAt(t float64) float64 {
	if len(w.Points) == 0 {
		return 0
	}
	if t <= w.Points[0].Time {
		return w.Points[0].Value
	}

	lastIdx := len(w.Points) - 1
	if t >= w.Points[lastIdx].Time {
		return w.Points[lastIdx].Value
	}

	for i := 1; i < len(w.Points); i++ {
		if t <= w.Points[i].Time {
			t1, t2 := w.Points[i-1].Time, w.Points[i].Time
			v1, v2 := w.Points[i-1].Value, w.Points[i].Value
			if t2 == t1 {
				return v2
			}
			slope := (v2 - v1) / (t2 - t1)
			return v1 + slope*(t-t1)
		}
	}

	return w.Points[lastIdx].Value // Must not reach
}

// Expression returns the inline form: PWL(0u 0 241u 1 ...).
func (w Waveform) Expression(unit string) string {
	var b strings.Builder
	b.WriteString("PWL(")
	for i, p := range w.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(util.FormatTime(p.Time, unit))
		b.WriteByte(' ')
		b.WriteString(util.FormatNumber(p.Value))
	}
	b.WriteByte(')')
	return b.String()
}

// Package trace derives a breakpoint ladder from a sampled digital trace by
// detecting level changes.
package trace

import (
	"math"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/pwl"
)

type Sample struct {
	Time  float64
	Value float64
}

type Options struct {
	TimeScale float64 // multiplies sample times, 1e6 for seconds -> us
	MaxValue  float64 // high level of a binary channel
	Raw       bool    // keep sample values instead of mapping to {0, MaxValue}
	RiseTime  float64 // gap between the held and the new level
}

func DefaultOptions() Options {
	return Options{
		TimeScale: consts.MicroScale,
		MaxValue:  consts.MaxValue,
		RiseTime:  consts.RiseTime,
	}
}

// Changes keeps the samples whose value differs from the previous sample.
// The first sample always counts as a change.
func Changes(samples []Sample) []Sample {
	var out []Sample
	for i, s := range samples {
		if i == 0 || s.Value != samples[i-1].Value {
			out = append(out, s)
		}
	}
	return out
}

// edge is the state carried from one change to the next.
type edge struct {
	started bool
	prev    float64
}

// step folds one change into the breakpoint list.
func step(acc edge, points []pwl.Point, t, v, rise float64) (edge, []pwl.Point) {
	if !acc.started {
		points = append(points, pwl.Point{Time: t, Value: v})
	} else {
		points = append(points,
			pwl.Point{Time: t, Value: acc.prev},
			pwl.Point{Time: t + rise, Value: v},
		)
	}
	return edge{started: true, prev: v}, points
}

// Detect converts samples into breakpoints. The first change yields one
// point; every later change holds the previous level until its own time and
// reaches the new level one rise time later. Times are rounded after scaling.
func Detect(samples []Sample, opts Options) []pwl.Point {
	var (
		acc    edge
		points []pwl.Point
	)
	for _, s := range Changes(samples) {
		v := s.Value
		if !opts.Raw {
			v = binary(v, opts.MaxValue)
		}
		acc, points = step(acc, points, math.Round(s.Time*opts.TimeScale), v, opts.RiseTime)
	}
	return points
}

func binary(v, high float64) float64 {
	if v != 0 {
		return high
	}
	return 0
}

// Waveform runs Detect and labels the result.
func Waveform(label string, samples []Sample, opts Options) pwl.Waveform {
	return pwl.Waveform{Label: label, Points: Detect(samples, opts)}
}

package ladder

import (
	"math"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/errs"
	"github.com/edp1096/pwlgen/pkg/script"
)

// Timing holds the durations of the five phases after the bookkeeping row.
type Timing struct {
	PulseWidth     float64
	Gap0           float64
	RebalanceWidth float64
	Gap1           float64
	TrailingGap    float64
}

// TimingOf reads the named durations of s. It needs at least six phases.
func TimingOf(s script.Script) (Timing, error) {
	if s.Len() < consts.MinPhases {
		return Timing{}, errors.Wrap(errs.Shape("phases", consts.MinPhases, s.Len()), "named timing")
	}
	return Timing{
		PulseWidth:     s.Phase(1).Duration,
		Gap0:           s.Phase(2).Duration,
		RebalanceWidth: s.Phase(3).Duration,
		Gap1:           s.Phase(4).Duration,
		TrailingGap:    s.Phase(5).Duration,
	}, nil
}

// Period excludes the trailing gap.
func (t Timing) Period() float64 {
	return t.PulseWidth + t.Gap0 + t.RebalanceWidth + t.Gap1
}

// Frequency in Hz for microsecond timings; 1 when the period is not positive.
func (t Timing) Frequency() float64 {
	p := t.Period()
	if p <= 0 {
		return 1
	}
	return math.Round(consts.MicroScale / p)
}

// Validate reports a *errs.DegenerateTimingError for a non-positive period.
func (t Timing) Validate() error {
	if p := t.Period(); p <= 0 {
		return &errs.DegenerateTimingError{Period: p}
	}
	return nil
}

// Package script turns the rows of a phase table into typed phases.
//
// A row reads "label, duration, ch0, ch1, ch2, ch3[, ch4 ... ch7]". The label
// only documents the table and is dropped; durations are in microseconds.
package script

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/errs"
)

// Phase is one interval of constant channel levels.
type Phase struct {
	Duration float64
	Levels   []float64
}

// Script is an ordered, read-only list of phases. The first phase is the
// zero-duration bookkeeping row that seeds the ladder.
type Script struct {
	phases   []Phase
	channels int
}

// New builds a script from phases already in memory. Levels are copied.
func New(phases []Phase) (Script, error) {
	s := Script{phases: make([]Phase, 0, len(phases))}
	for i, p := range phases {
		if p.Duration < 0 {
			return Script{}, errors.Wrapf(errs.Parse(strconv.FormatFloat(p.Duration, 'g', -1, 64), "negative duration"), "phase %d", i)
		}
		if err := checkChannels(len(p.Levels)); err != nil {
			return Script{}, errors.Wrapf(err, "phase %d", i)
		}
		if i > 0 && len(p.Levels) != s.channels {
			return Script{}, errors.Wrapf(errs.Shape("channel count", s.channels, len(p.Levels)), "phase %d", i)
		}
		s.channels = len(p.Levels)
		s.phases = append(s.phases, Phase{Duration: p.Duration, Levels: append([]float64(nil), p.Levels...)})
	}
	return s, nil
}

// Parse reads the rows of a phase table. Blank rows are skipped.
func Parse(rows []string) (Script, error) {
	phases := make([]Phase, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		p, err := parseRow(row)
		if err != nil {
			return Script{}, err
		}
		phases = append(phases, p)
	}
	return New(phases)
}

func parseRow(row string) (Phase, error) {
	fields := strings.Split(row, ",")
	if len(fields) < 2 {
		return Phase{}, errs.Parse(row, "want label, duration and levels")
	}

	values := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Phase{}, errors.Wrapf(errs.Parse(f, "not a number"), "row %q", row)
		}
		values[i] = round1(v)
	}

	if values[0] < 0 {
		return Phase{}, errs.Parse(row, "negative duration")
	}
	return Phase{Duration: values[0], Levels: values[1:]}, nil
}

func checkChannels(n int) error {
	if n != consts.BaseChannels && n != consts.AllChannels {
		return errs.Shape("channel count", consts.BaseChannels, n)
	}
	return nil
}

// Values are kept to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Len returns the number of phases, bookkeeping phase included.
func (s Script) Len() int {
	return len(s.phases)
}

// Channels returns the number of levels per phase.
func (s Script) Channels() int {
	return s.channels
}

// Phase returns a copy of phase i.
func (s Script) Phase(i int) Phase {
	p := s.phases[i]
	return Phase{Duration: p.Duration, Levels: append([]float64(nil), p.Levels...)}
}

// Phases returns a copy of all phases.
func (s Script) Phases() []Phase {
	out := make([]Phase, len(s.phases))
	for i := range s.phases {
		out[i] = s.Phase(i)
	}
	return out
}

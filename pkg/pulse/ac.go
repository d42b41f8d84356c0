package pulse

import (
	"math"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/ladder"
	"github.com/edp1096/pwlgen/pkg/pwl"
)

// ACSpec describes a biphasic stimulation burst: a pulse, an inter-pulse
// interval, a rebalance pulse RPR times longer, and the gap that completes
// the requested period. Durations are in microseconds.
type ACSpec struct {
	AmplitudeUA  float64 `yaml:"amplitude_ua" toml:"amplitude_ua"`
	PulseWidthUS float64 `yaml:"pulse_width_us" toml:"pulse_width_us"`
	IPIUS        float64 `yaml:"ipi_us" toml:"ipi_us"`
	RPR          float64 `yaml:"rpr" toml:"rpr"`
	FrequencyHz  float64 `yaml:"frequency_hz" toml:"frequency_hz"`
	Cycles       int     `yaml:"cycles" toml:"cycles"`
}

func DefaultACSpec() ACSpec {
	return ACSpec{
		AmplitudeUA:  -1000,
		PulseWidthUS: 240,
		IPIUS:        60,
		RPR:          2,
		FrequencyHz:  500,
		Cycles:       2,
	}
}

// Channels shifted one row earlier; the amplitude channels stay put.
var logicChannels = []int{0, 1, 2, 3, 4, 5}

// Train is a built pulse train.
type Train struct {
	Timing ladder.Timing
	Base   []ladder.Row // one burst after the level shift
	Rows   []ladder.Row // Base followed by Cycles shifted copies
}

func (s ACSpec) Validate() error {
	switch {
	case s.FrequencyHz <= 0:
		return errors.Errorf("frequency must be positive, got %g", s.FrequencyHz)
	case s.RPR <= 0:
		return errors.Errorf("rebalance ratio must be positive, got %g", s.RPR)
	case s.PulseWidthUS < 0 || s.IPIUS < 0:
		return errors.New("pulse width and inter-pulse interval must not be negative")
	case s.Cycles < 0:
		return errors.Errorf("cycles must not be negative, got %d", s.Cycles)
	}
	return nil
}

// Timing quantizes the spec to the time grid.
func (s ACSpec) Timing() (ladder.Timing, error) {
	if err := s.Validate(); err != nil {
		return ladder.Timing{}, err
	}

	pw := quantize(s.PulseWidthUS)
	rpw := pw * s.RPR
	dt0 := quantize(s.IPIUS)
	dt1 := math.Trunc(quantize(consts.MicroScale/s.FrequencyHz - pw - dt0 - rpw))
	if dt1 < 0 {
		return ladder.Timing{}, errors.Errorf("frequency %g Hz too high for pw %g us and rpr %g", s.FrequencyHz, pw, s.RPR)
	}

	return ladder.Timing{PulseWidth: pw, Gap0: dt0, RebalanceWidth: rpw, Gap1: dt1}, nil
}

// Build returns the pulse train of s.
func (s ACSpec) Build() (*Train, error) {
	tm, err := s.Timing()
	if err != nil {
		return nil, err
	}

	pwAmp := 1e-6 * s.AmplitudeUA
	rpwAmp := 1e-6 * s.AmplitudeUA / s.RPR
	levels := func(dac, amp, rb1, rb2 float64) []float64 {
		return []float64{dac, amp, rb1, rb2, 0, 0, pwAmp, rpwAmp}
	}

	phases := []ladder.Row{
		{Duration: 0, Levels: levels(0, 0, 0, 0)},
		{Duration: tm.PulseWidth, Levels: levels(1, 1, 0, 0)},
		{Duration: tm.Gap0, Levels: levels(0, 0, 0, 0)},
		{Duration: tm.RebalanceWidth, Levels: levels(1, 0, 0, 0)},
		{Duration: tm.Gap1, Levels: levels(0, 0, 1, 1)},
	}

	base := ShiftPolicy{Channels: logicChannels}.Apply(EdgePairs(ladder.Accumulate(phases), consts.RiseTime))
	return &Train{
		Timing: tm,
		Base:   base,
		Rows:   Replicate(base, tm.Period(), s.Cycles),
	}, nil
}

// Waveforms splits the train into the labelled channel waveforms.
func (t *Train) Waveforms() []pwl.Waveform {
	return ladder.Waveforms(t.Rows, consts.Channels)
}

// quantize rounds v down to the time grid, floor-mod style for negatives.
func quantize(v float64) float64 {
	m := math.Mod(v, consts.TimeGrid)
	if m < 0 {
		m += consts.TimeGrid
	}
	return v - m
}

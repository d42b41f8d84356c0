package script

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/pwlgen/pkg/errs"
)

var pulseRows = []string{
	"start,0,0,0,0,0",
	"pw,240,1,1,0,0",
	"dt0,60,0,0,0,0",
	"rpw,480,1,0,0,0",
	"dt1,500,0,0,1,1",
	"gap,10,0,0,0,0",
}

func TestParse(t *testing.T) {
	s, err := Parse(pulseRows)
	require.NoError(t, err)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 4, s.Channels())
	assert.Equal(t, Phase{Duration: 240, Levels: []float64{1, 1, 0, 0}}, s.Phase(1))
	assert.Equal(t, Phase{Duration: 500, Levels: []float64{0, 0, 1, 1}}, s.Phase(4))
}

func TestParseWhitespaceAndRounding(t *testing.T) {
	s, err := Parse([]string{" start , 0 , 0,0,0,0", "", "pw,\t240.04, 0.26, 1, 0, 0, 0, 0, -1.25, 0.5"})
	require.Error(t, err, "mixed channel counts")

	s, err = Parse([]string{" start , 0 , 0,0,0,0,0,0,0,0", "", "pw,\t240.04, 0.26, 1, 0, 0, 0, 0, -1.24, 0.5"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 8, s.Channels())

	p := s.Phase(1)
	assert.Equal(t, 240.0, p.Duration)
	assert.Equal(t, []float64{0.3, 1, 0, 0, 0, 0, -1.2, 0.5}, p.Levels)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		shape bool
	}{
		{"not a number", []string{"pw,abc,1,1,0,0"}, false},
		{"negative duration", []string{"pw,-1,1,1,0,0"}, false},
		{"label only", []string{"pw"}, false},
		{"three channels", []string{"pw,1,1,1,0"}, true},
		{"mismatch", []string{"start,0,0,0,0,0", "pw,1,1,1,0,0,0,0,0,0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			require.Error(t, err)

			var pe *errs.ParseError
			var se *errs.ShapeError
			if tt.shape {
				assert.True(t, errors.As(err, &se), err.Error())
			} else {
				assert.True(t, errors.As(err, &pe), err.Error())
			}
		})
	}
}

func TestScriptIsReadOnly(t *testing.T) {
	levels := []float64{1, 1, 0, 0}
	s, err := New([]Phase{{Duration: 0, Levels: []float64{0, 0, 0, 0}}, {Duration: 5, Levels: levels}})
	require.NoError(t, err)

	levels[0] = 9
	p := s.Phase(1)
	p.Levels[1] = 9

	assert.Equal(t, []float64{1, 1, 0, 0}, s.Phase(1).Levels)
	assert.Len(t, s.Phases(), 2)
}

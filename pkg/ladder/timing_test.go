package ladder

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/pwlgen/pkg/errs"
)

func TestTimingOf(t *testing.T) {
	tm, err := TimingOf(pulseScript(t))
	require.NoError(t, err)

	assert.Equal(t, Timing{PulseWidth: 240, Gap0: 60, RebalanceWidth: 480, Gap1: 500, TrailingGap: 10}, tm)
	assert.Equal(t, 1280.0, tm.Period())
	assert.Equal(t, 781.0, tm.Frequency())
	assert.NoError(t, tm.Validate())
}

func TestTimingShortScript(t *testing.T) {
	_, err := TimingOf(mustParse(t, "start,0,0,0,0,0", "pw,240,1,1,0,0"))

	var se *errs.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 6, se.Want)
	assert.Equal(t, 2, se.Got)
}

func TestTimingZeroPeriod(t *testing.T) {
	s := mustParse(t,
		"start,0,0,0,0,0",
		"pw,0,1,1,0,0",
		"dt0,0,0,0,0,0",
		"rpw,0,1,0,0,0",
		"dt1,0,0,0,1,1",
		"gap,0,0,0,0,0",
	)
	tm, err := TimingOf(s)
	require.NoError(t, err)

	assert.Equal(t, 1.0, tm.Frequency())

	var de *errs.DegenerateTimingError
	assert.True(t, errors.As(tm.Validate(), &de))
}

package netlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/pwlgen/pkg/errs"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		in   string
		name string
		want float64
	}{
		{"pw=240", "pw", 240},
		{"rf=1meg", "rf", 1e6},
		{"rf=1MEG", "rf", 1e6},
		{"r=2k", "r", 2e3},
		{"t=5m", "t", 5e-3},
		{"t=5ms", "t", 5e-3},
		{"pw=240u", "pw", 240e-6},
		{"pw=240us", "pw", 240e-6},
		{"c=10n", "c", 10e-9},
		{"c=3p", "c", 3e-12},
		{"x=1.5k", "x", 1.5e3},
		{"x=1.k", "x", 1e3},
		{"x=.5u", "x", 0.5e-6},
		{"x=2e3", "x", 2e3},
		{"x=1meg", "x", 1e6},
		{"x=7V", "x", 7},
		{" amp = 1000u", "amp", 1000e-6},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseParam(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.name, p.Name)
			assert.InDelta(t, tt.want, p.Value, tt.want*1e-12)
		})
	}
}

func TestParseParamErrors(t *testing.T) {
	for _, in := range []string{"pw", "pw=", "pw=us"} {
		_, err := ParseParam(in)

		var pe *errs.ParseError
		require.Error(t, err, in)
		assert.True(t, errors.As(err, &pe), in)
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("1k")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)

	v, err = ParseValue("10us")
	require.NoError(t, err)
	assert.InDelta(t, 10e-6, v, 1e-18)

	v, err = ParseValue("2.2meg")
	require.NoError(t, err)
	assert.InDelta(t, 2.2e6, v, 1e-6)

	_, err = ParseValue("abc")
	assert.Error(t, err)
}

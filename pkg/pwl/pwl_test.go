package pwl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/pwlgen/pkg/errs"
)

var ampSel = Waveform{
	Label: "amp_sel",
	Points: []Point{
		{0, 0}, {1, 1}, {241, 1}, {242, 0}, {302, 0}, {303, 0.5}, {1295, -1.2},
	},
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ampSel, "u"))

	want := "0u 0\n1u 1\n241u 1\n242u 0\n302u 0\n303u 0.5\n1295u -1.2\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, ampSel, "u")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "amp_sel.txt"), path)

	got, err := ReadFile(path, "u")
	require.NoError(t, err)
	assert.Equal(t, ampSel, got)
}

func TestWriteEmpty(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, Waveform{Label: "rebal1"}, "u")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteFileErrors(t *testing.T) {
	_, err := WriteFile(t.TempDir(), Waveform{}, "u")
	assert.Error(t, err)

	_, err = WriteFile(filepath.Join(t.TempDir(), "missing"), ampSel, "u")
	assert.Error(t, err)
}

func TestWriteFileRejectsPathLabels(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(dir, 0o755))

	for _, label := range []string{"../escaped", "sub/amp", `sub\amp`, "..", "."} {
		wf := Waveform{Label: label, Points: ampSel.Points}

		path, err := WriteFile(dir, wf, "u")

		var pe *errs.ParseError
		require.Error(t, err, label)
		assert.True(t, errors.As(err, &pe), label)
		assert.Empty(t, path, label)
	}

	_, err := os.Stat(filepath.Join(root, "escaped.txt"))
	assert.True(t, os.IsNotExist(err))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesErrors(t *testing.T) {
	err := Write(failingWriter{}, ampSel, "u")
	assert.ErrorContains(t, err, "disk full")
}

func TestReadErrors(t *testing.T) {
	for _, in := range []string{"1u\n", "xu 1\n", "1u y\n", "1u 2 3\n"} {
		_, err := Read(strings.NewReader(in), "u")

		var pe *errs.ParseError
		assert.True(t, errors.As(err, &pe), in)
	}

	points, err := Read(strings.NewReader("\n0u  0\n\n2000001u  3\n"), "u")
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {2000001, 3}}, points)
}

func TestValueAt(t *testing.T) {
	assert.Equal(t, 0.0, ampSel.ValueAt(-5))
	assert.Equal(t, 0.5, ampSel.ValueAt(0.5))
	assert.Equal(t, 1.0, ampSel.ValueAt(100))
	assert.Equal(t, 0.5, ampSel.ValueAt(241.5))
	assert.Equal(t, -1.2, ampSel.ValueAt(5000))
	assert.Equal(t, 0.0, Waveform{}.ValueAt(1))

	step := Waveform{Points: []Point{{0, 0}, {10, 0}, {10, 3}}}
	assert.Equal(t, 3.0, step.ValueAt(10))
}

func TestExpressionAndShift(t *testing.T) {
	w := Waveform{Label: "x", Points: []Point{{0, 0}, {2000000, 0}, {2000001, 3}}}
	assert.Equal(t, "PWL(0u 0 2000000u 0 2000001u 3)", w.Expression("u"))
	assert.Equal(t, "PWL()", Waveform{}.Expression("u"))

	s := w.Shift(10)
	assert.Equal(t, 10.0, s.Points[0].Time)
	assert.Equal(t, 0.0, w.Points[0].Time)
	assert.Equal(t, 3, s.Len())
}

package pwl

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/pkg/errs"
	"github.com/edp1096/pwlgen/pkg/util"
)

// FileExt is appended to the channel label to name its file.
const FileExt = ".txt"

// Write writes one breakpoint per line. An empty waveform writes nothing.
func Write(w io.Writer, wf Waveform, unit string) error {
	bw := bufio.NewWriter(w)
	for _, p := range wf.Points {
		bw.WriteString(util.FormatTime(p.Time, unit))
		bw.WriteByte(' ')
		bw.WriteString(util.FormatNumber(p.Value))
		bw.WriteByte('\n')
	}
	return errors.Wrapf(bw.Flush(), "writing %s", wf.Label)
}

// WriteFile writes wf to dir/<label>.txt and returns the path. A failed
// write removes the partial file.
func WriteFile(dir string, wf Waveform, unit string) (path string, err error) {
	if err := checkLabel(wf.Label); err != nil {
		return "", err
	}

	path = filepath.Join(dir, wf.Label+FileExt)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating waveform file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
		if err != nil {
			os.Remove(path)
			path = ""
		}
	}()

	err = Write(f, wf, unit)
	return path, err
}

// checkLabel keeps the file of a channel inside its output directory.
func checkLabel(label string) error {
	switch {
	case label == "":
		return errors.New("waveform has no label")
	case label == "." || label == ".." || strings.ContainsAny(label, `/\`) || filepath.Base(label) != label:
		return errors.Wrap(errs.Parse(label, "label is not a plain file name"), "waveform")
	}
	return nil
}

// Read parses the output of Write. The unit suffix is stripped from times,
// so values come back exactly as they were written.
func Read(r io.Reader, unit string) ([]Point, error) {
	var points []Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Wrapf(errs.Parse(scanner.Text(), "want time and value"), "line %d", lineNo)
		}

		t, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], unit), 64)
		if err != nil {
			return nil, errors.Wrapf(errs.Parse(fields[0], "bad time"), "line %d", lineNo)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(errs.Parse(fields[1], "bad value"), "line %d", lineNo)
		}
		points = append(points, Point{Time: t, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading breakpoints")
	}

	return points, nil
}

// ReadFile reads a file written by WriteFile; the label is the file name
// without extension.
func ReadFile(path, unit string) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, errors.Wrap(err, "opening waveform file")
	}
	defer f.Close()

	points, err := Read(f, unit)
	if err != nil {
		return Waveform{}, errors.Wrapf(err, "%s", path)
	}
	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Waveform{Label: label, Points: points}, nil
}

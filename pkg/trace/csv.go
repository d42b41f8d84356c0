package trace

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/pkg/errs"
)

// DefaultTimeColumn is the time header of recorder exports.
const DefaultTimeColumn = "Time"

// Table is a headed trace with one time column and any number of channels.
type Table struct {
	Times   []float64
	Columns map[string][]float64
	Header  []string
}

// ReadCSV reads a comma separated trace with a header row. Every column
// except timeCol is a channel. Times must not decrease.
func ReadCSV(r io.Reader, timeCol string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading trace header")
	}
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if seen[header[i]] {
			return nil, errors.Wrap(errs.Parse(header[i], "duplicate column"), "trace header")
		}
		seen[header[i]] = true
	}

	timeIdx := -1
	for i, h := range header {
		if h == timeCol {
			timeIdx = i
		}
	}
	if timeIdx < 0 {
		return nil, errors.Errorf("trace has no %q column", timeCol)
	}

	tbl := &Table{Columns: make(map[string][]float64), Header: header}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "trace line %d", line)
		}

		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(errs.Parse(field, "not a number"), "trace line %d", line)
			}
			if i == timeIdx {
				if n := len(tbl.Times); n > 0 && v < tbl.Times[n-1] {
					return nil, errors.Wrapf(errs.Parse(field, "time goes backwards"), "trace line %d", line)
				}
				tbl.Times = append(tbl.Times, v)
				continue
			}
			tbl.Columns[header[i]] = append(tbl.Columns[header[i]], v)
		}
	}

	return tbl, nil
}

// Samples pairs the time column with one channel.
func (t *Table) Samples(column string) ([]Sample, error) {
	values, ok := t.Columns[column]
	if !ok {
		return nil, errors.Errorf("trace has no %q column", column)
	}
	if len(values) != len(t.Times) {
		return nil, errors.Wrapf(errs.Shape("samples", len(t.Times), len(values)), "column %q", column)
	}

	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{Time: t.Times[i], Value: v}
	}
	return samples, nil
}

// Channels returns the channel names in header order.
func (t *Table) Channels() []string {
	var names []string
	for _, h := range t.Header {
		if _, ok := t.Columns[h]; ok {
			names = append(names, h)
		}
	}
	return names
}

// Package compile wires the stages of the waveform compiler together: phase
// script, sampled trace or AC spec in, labelled channel waveforms out.
package compile

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/config"
	"github.com/edp1096/pwlgen/pkg/errs"
	"github.com/edp1096/pwlgen/pkg/ladder"
	"github.com/edp1096/pwlgen/pkg/netlist"
	"github.com/edp1096/pwlgen/pkg/pulse"
	"github.com/edp1096/pwlgen/pkg/pwl"
	"github.com/edp1096/pwlgen/pkg/script"
	"github.com/edp1096/pwlgen/pkg/trace"
	"github.com/edp1096/pwlgen/pkg/util"
)

type Options struct {
	Channels []string      // labels of the script columns
	Cycles   int           // extra bursts appended to a script ladder
	Marker   string        // netlist text holding the phase table
	Trace    trace.Options // edge detector settings
	Logger   *log.Logger   // nil discards stage logs
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFrom(config.Default(), nil)
}

// OptionsFrom maps a loaded config onto compiler options.
func OptionsFrom(cfg config.Config, logger *log.Logger) Options {
	return Options{
		Channels: cfg.Channels,
		Cycles:   cfg.Cycles,
		Marker:   cfg.Marker,
		Trace: trace.Options{
			TimeScale: cfg.Trace.TimeScale,
			MaxValue:  cfg.Trace.MaxValue,
			Raw:       cfg.Trace.Raw,
			RiseTime:  cfg.Trace.RiseTime,
		},
		Logger: logger,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}

// Result is the output of one compilation.
type Result struct {
	Timing    *ladder.Timing     // nil when the input has no named phases
	Rows      []ladder.Row       // nil for traces
	Waveforms []pwl.Waveform
	Title     string             // netlist title line
	Params    map[string]float64 // .param values of the netlist, scaled
}

// FromScript expands s, repeats it Cycles more times and splits the ladder
// into channel waveforms.
func FromScript(s script.Script, opts Options) (*Result, error) {
	logger := opts.logger()

	if s.Channels() > len(opts.Channels) {
		return nil, errors.Wrap(errs.Shape("channel labels", s.Channels(), len(opts.Channels)), "script")
	}

	rows, err := ladder.Build(s)
	if err != nil {
		return nil, err
	}
	logger.Printf("expanded %d phases into %d rows", s.Len(), len(rows))

	res := &Result{}
	if tm, err := ladder.TimingOf(s); err == nil {
		res.Timing = &tm
		if err := tm.Validate(); err != nil {
			logger.Printf("warning: %v", err)
		}
		logger.Printf("period %s, frequency %s",
			util.FormatValueFactor(tm.Period()/consts.MicroScale, "s"),
			util.FormatFrequency(tm.Frequency()))
	} else {
		logger.Printf("no named timing: %v", err)
	}

	if opts.Cycles > 0 {
		// Bursts follow each other after the whole ladder, trailing gap included.
		span := rows[len(rows)-1].Time
		rows = pulse.Replicate(rows, span, opts.Cycles)
		logger.Printf("replicated %d cycles of %s", opts.Cycles, util.FormatValueFactor(span/consts.MicroScale, "s"))
	}

	res.Rows = rows
	res.Waveforms = ladder.Waveforms(rows, opts.Channels[:s.Channels()])
	return res, nil
}

// FromRows parses the rows of a phase table and compiles them.
func FromRows(rows []string, opts Options) (*Result, error) {
	s, err := script.Parse(rows)
	if err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}
	return FromScript(s, opts)
}

// FromNetlist compiles the phase table embedded in a netlist. The .param
// values read in the same pass are kept on the result.
func FromNetlist(r io.Reader, opts Options) (*Result, error) {
	data, err := netlist.Parse(r, opts.Marker)
	if err != nil {
		return nil, err
	}
	if !data.HasScript {
		return nil, errors.Wrapf(netlist.ErrScriptNotFound, "marker %q", opts.Marker)
	}
	opts.logger().Printf("extracted %d script rows, %d params", len(data.Script), len(data.Params))

	res, err := FromRows(data.Script, opts)
	if err != nil {
		return nil, err
	}
	res.Title = data.Title
	res.Params = data.Params
	return res, nil
}

// FromNetlistFile is FromNetlist on a file path.
func FromNetlistFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening netlist")
	}
	defer f.Close()

	res, err := FromNetlist(f, opts)
	return res, errors.Wrapf(err, "%s", path)
}

// FromTrace detects the edges of each named column. No columns means all.
func FromTrace(tbl *trace.Table, columns []string, opts Options) (*Result, error) {
	if len(columns) == 0 {
		columns = tbl.Channels()
	}

	res := &Result{}
	for _, col := range columns {
		samples, err := tbl.Samples(col)
		if err != nil {
			return nil, err
		}
		w := trace.Waveform(col, samples, opts.Trace)
		opts.logger().Printf("%s: %d samples, %d breakpoints", col, len(samples), w.Len())
		res.Waveforms = append(res.Waveforms, w)
	}
	return res, nil
}

// FromAC builds the pulse train described by spec.
func FromAC(spec pulse.ACSpec, opts Options) (*Result, error) {
	train, err := spec.Build()
	if err != nil {
		return nil, errors.Wrap(err, "ac spec")
	}

	tm := train.Timing
	opts.logger().Printf("Pulse specs: F:%gHz PW:%g IPI:%g RPW:%g dt1:%g",
		tm.Frequency(), tm.PulseWidth, tm.Gap0, tm.RebalanceWidth, tm.Gap1)

	return &Result{Timing: &tm, Rows: train.Rows, Waveforms: train.Waveforms()}, nil
}

// WriteFiles writes one file per waveform into dir and returns the paths.
// On error the files already written are left in place; the run as a whole
// is failed.
func (r *Result) WriteFiles(dir, unit string, logger *log.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	paths := make([]string, 0, len(r.Waveforms))
	for _, w := range r.Waveforms {
		path, err := pwl.WriteFile(dir, w, unit)
		if err != nil {
			return paths, err
		}
		if logger != nil {
			logger.Printf("wrote %s (%d points)", path, w.Len())
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Waveform returns the waveform labelled label.
func (r *Result) Waveform(label string) (pwl.Waveform, bool) {
	for _, w := range r.Waveforms {
		if w.Label == label {
			return w, true
		}
	}
	return pwl.Waveform{}, false
}

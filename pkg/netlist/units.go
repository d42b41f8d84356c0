package netlist

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/pwlgen/pkg/errs"
)

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

// Checked in order, first match wins. "meg" must precede "m".
var paramUnits = []struct {
	suffix string
	factor float64
}{
	{"meg", 1e6},
	{"k", 1e3},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
}

var (
	valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?s?$`)
	paramRe = regexp.MustCompile(`([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)([A-Za-z]*)`)
)

// Param is one name=value assignment with the value scaled to base units.
type Param struct {
	Name  string
	Value float64
}

// ParseValue - Parse value and factor. 1k -> 1000
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, errs.Parse(val, "invalid value format")
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, errs.Parse(val, err.Error())
	}

	// factor
	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// ParseParam reads "name=<number><unit>", e.g. "pw=240u" -> 2.4e-4.
//
// Only the letters directly after the number are matched against the unit
// list, case-insensitively, so "1ms" is milli and "1meg" is mega.
func ParseParam(s string) (Param, error) {
	name, frag, ok := strings.Cut(s, "=")
	if !ok {
		return Param{}, errs.Parse(s, "missing '='")
	}

	matches := paramRe.FindStringSubmatch(frag)
	if matches == nil {
		return Param{}, errs.Parse(s, "no digits after '='")
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Param{}, errs.Parse(s, err.Error())
	}

	tail := strings.ToLower(matches[2])
	for _, u := range paramUnits {
		if strings.HasPrefix(tail, u.suffix) {
			num *= u.factor
			break
		}
	}

	return Param{Name: strings.TrimSpace(name), Value: num}, nil
}

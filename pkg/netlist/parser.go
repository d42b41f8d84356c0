package netlist

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrScriptNotFound is returned when no line carries the script marker.
var ErrScriptNotFound = errors.New("netlist: script marker not found")

// LTspice stores multi-line text as one line joined by a literal `\n`.
const escapedNewline = `\n`

var (
	spaceRe  = regexp.MustCompile(`[ \t]+`)
	assignRe = regexp.MustCompile(`\s*=\s*`)
)

type NetlistData struct {
	Title     string             // First line without the leading '*'
	Script    []string           // Phase rows, header and column labels removed
	HasScript bool               // A line carried the marker
	Params    map[string]float64 // .param assignments, scaled
}

// Parse reads a whole netlist in one pass: title, embedded phase script and
// .param lines. A netlist without a script is not an error here; HasScript
// is left false. When several lines carry the marker the last one wins.
func Parse(r io.Reader, marker string) (*NetlistData, error) {
	scanner := newScanner(r)
	netlistData := &NetlistData{
		Params: make(map[string]float64),
	}

	// Title or comment
	if scanner.Scan() {
		first := scanner.Text()
		netlistData.Title = strings.TrimPrefix(first, "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)

		// A bare script pasted as the whole file has no title line.
		if strings.Contains(first, marker) {
			netlistData.Script = SplitScript(first)
			netlistData.HasScript = true
		}
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "+") { // Line continue
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if currentLine != "" {
			if err := parseLine(netlistData, currentLine, marker); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading netlist")
	}

	// Process final line if exists
	if currentLine != "" {
		if err := parseLine(netlistData, currentLine, marker); err != nil {
			return nil, err
		}
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line, marker string) error {
	if strings.Contains(line, marker) {
		netlistData.Script = SplitScript(line)
		netlistData.HasScript = true
		return nil
	}

	params, err := paramsOf(line)
	if err != nil {
		return err
	}
	for _, p := range params {
		netlistData.Params[p.Name] = p.Value
	}
	return nil
}

// ExtractScript returns the phase rows of the last line containing marker.
func ExtractScript(r io.Reader, marker string) ([]string, error) {
	netlistData, err := Parse(r, marker)
	if err != nil {
		return nil, err
	}
	if !netlistData.HasScript {
		return nil, errors.Wrapf(ErrScriptNotFound, "marker %q", marker)
	}
	return netlistData.Script, nil
}

// SplitScript splits one escaped multi-line text into rows. The first two
// tokens (header, column labels) are dropped, as are blank rows.
func SplitScript(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = spaceRe.ReplaceAllString(text, " ")

	tokens := strings.Split(text, escapedNewline)
	if len(tokens) <= 2 {
		return nil
	}

	rows := make([]string, 0, len(tokens)-2)
	for _, tok := range tokens[2:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		rows = append(rows, tok)
	}
	return rows
}

// ScanParams collects every .param assignment of a netlist.
func ScanParams(r io.Reader) (map[string]float64, error) {
	scanner := newScanner(r)

	params := make(map[string]float64)
	for scanner.Scan() {
		list, err := paramsOf(scanner.Text())
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			params[p.Name] = p.Value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading netlist")
	}

	return params, nil
}

// paramsOf returns the assignments of a .param directive, nil otherwise.
// ".param a=1k b = 2u" -> [a=1000 b=2e-6]
func paramsOf(line string) ([]Param, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "*") { // Comment
		return nil, nil
	}

	idx := strings.Index(strings.ToLower(line), ".param")
	if idx < 0 {
		return nil, nil
	}
	rest := assignRe.ReplaceAllString(line[idx+len(".param"):], "=")

	var params []Param
	for _, field := range strings.Fields(rest) {
		if !strings.Contains(field, "=") {
			continue
		}
		p, err := ParseParam(field)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", line)
		}
		params = append(params, p)
	}
	return params, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return scanner
}

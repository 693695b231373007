// Package input reads the description of a chart: its settings and the
// ordered list of items to plot.
//
// Two formats are understood. YAML files carry a settings mapping and an
// items sequence; CSV files carry items only and take every setting from the
// defaults. Readers do not stop at the first problem: every error found in
// the file is collected and reported together.
package input

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"timeline2tikz/internal/chart"
	"timeline2tikz/internal/failure"
)

// SeparatorLabel marks a separator row in CSV input.
const SeparatorLabel = "---"

// Read parses filename, picking the format from its extension. Settings the
// file leaves out are taken from defaults.
func Read(fs afero.Fs, filename string, defaults chart.Settings) (chart.Settings, []chart.Item, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return chart.Settings{}, nil, failure.New(failure.ErrInputFile, "Error: cannot read input data file %q: %v", filename, err)
	}

	var p *parser
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		p = parseCSV(filename, data, defaults)
	default:
		p = parseYAML(filename, data, defaults)
	}
	if err := p.err(); err != nil {
		return chart.Settings{}, nil, err
	}
	return p.settings, p.items, nil
}

// parser accumulates the result of reading one file along with every
// problem found in it.
type parser struct {
	filename string
	settings chart.Settings
	items    []chart.Item
	errors   []string
}

func (p *parser) errorf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		p.errors = append(p.errors, fmt.Sprintf("%s:%d: %s", p.filename, line, msg))
		return
	}
	p.errors = append(p.errors, fmt.Sprintf("%s: %s", p.filename, msg))
}

func (p *parser) err() error {
	return failure.Collect(failure.ErrParse, "Errors found; aborting.", p.errors)
}

// checkSettings reports every dimension that must be positive but is not.
func (p *parser) checkSettings(line int) {
	s := p.settings
	for _, d := range []struct {
		key      string
		value    float64
		positive bool
	}{
		{"chart_width", s.ChartWidth, true},
		{"line_height", s.LineHeight, true},
		{"x_label_width", s.XLabelWidth, true},
		{"y_label_width", s.YLabelWidth, true},
		{"x_label_y_coordinate", s.XLabelYCoordinate, false},
	} {
		switch {
		case math.IsNaN(d.value) || math.IsInf(d.value, 0):
			p.errorf(line, "setting %s must be a finite number, got %g", d.key, d.value)
		case d.positive && d.value <= 0:
			p.errorf(line, "setting %s must be positive, got %g", d.key, d.value)
		}
	}
}

// entry validates a labeled item whose date ranges were given as strings.
// It reports every problem found and returns false if there was any.
func (p *parser) entry(line int, label, style string, dates []dateSpec) (chart.Entry, bool) {
	ok := true
	if strings.TrimSpace(label) == "" {
		p.errorf(line, "item has no label")
		ok = false
	}
	style = strings.TrimSpace(style)
	if style != "" && !chart.ValidStyle(style) {
		p.errorf(line, "item %q: invalid style %q, expected a letter followed by letters, digits, spaces, _ or -", label, style)
		ok = false
	}
	if len(dates) == 0 {
		p.errorf(line, "item %q has no dates", label)
		ok = false
	}

	ranges := make([]chart.DateRange, 0, len(dates))
	for _, d := range dates {
		r, err := ParseDateRange(d.text)
		if err != nil {
			p.errorf(d.line, "item %q: %v", label, err)
			ok = false
			continue
		}
		ranges = append(ranges, r)
	}
	return chart.Entry{Label: strings.TrimSpace(label), Style: style, Ranges: ranges}, ok
}

// dateSpec is an unparsed date range and the line it came from.
type dateSpec struct {
	text string
	line int
}

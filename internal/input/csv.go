package input

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"timeline2tikz/internal/chart"
)

// parseCSV reads items from CSV with a header row naming the label, style
// and dates columns (case-insensitive; style is optional). Several date
// ranges in one cell are separated by semicolons, and a row labeled "---"
// is a separator. Lines starting with # are skipped.
func parseCSV(filename string, data []byte, defaults chart.Settings) *parser {
	p := &parser{filename: filename, settings: defaults}
	p.checkSettings(0)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return p
	}
	if err != nil {
		p.errorf(0, "error reading CSV header: %v", err)
		return p
	}

	// Create case-insensitive column mapping
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	labelCol, hasLabel := columnMap["label"]
	datesCol, hasDates := columnMap["dates"]
	styleCol, hasStyle := columnMap["style"]
	if !hasLabel || !hasDates {
		headerLine, _ := reader.FieldPos(0)
		p.errorf(headerLine, "header must name a label and a dates column, got %v", header)
		return p
	}

	field := func(record []string, col int) string {
		if col < len(record) {
			return strings.TrimSpace(record[col])
		}
		return ""
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			p.errorf(parseErr.Line, "%v", parseErr.Err)
			continue
		}
		if err != nil {
			p.errorf(0, "error reading CSV: %v", err)
			break
		}
		line, _ := reader.FieldPos(0)

		label := field(record, labelCol)
		if label == SeparatorLabel {
			p.items = append(p.items, chart.Separator{})
			continue
		}

		var style string
		if hasStyle {
			style = field(record, styleCol)
		}
		var dates []dateSpec
		for _, d := range strings.Split(field(record, datesCol), ";") {
			if d = strings.TrimSpace(d); d != "" {
				dates = append(dates, dateSpec{text: d, line: line})
			}
		}
		if e, ok := p.entry(line, label, style, dates); ok {
			p.items = append(p.items, e)
		}
	}
	return p
}

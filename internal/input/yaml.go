package input

import (
	"gopkg.in/yaml.v3"

	"timeline2tikz/internal/chart"
)

// parseYAML reads a description of the form
//
//	settings:
//	  chart_width: 100
//	  line_height: 5
//	items:
//	  - label: Go
//	    style: lang
//	    dates: ["2009.11-2012", "2015"]
//	  - separator: true
func parseYAML(filename string, data []byte, defaults chart.Settings) *parser {
	p := &parser{filename: filename, settings: defaults}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		p.errorf(0, "%v", err)
		return p
	}
	if len(doc.Content) == 0 {
		p.checkSettings(0)
		return p
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		p.errorf(root.Line, "expected a mapping with settings and items")
		return p
	}

	settingsLine := root.Line
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "settings":
			settingsLine = key.Line
			p.yamlSettings(value)
		case "items":
			p.yamlItems(value)
		default:
			p.errorf(key.Line, "unknown section %q", key.Value)
		}
	}
	p.checkSettings(settingsLine)
	return p
}

func (p *parser) yamlSettings(n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		if n.Tag != "!!null" {
			p.errorf(n.Line, "settings must be a mapping")
		}
		return
	}
	fields := map[string]*float64{
		"chart_width":          &p.settings.ChartWidth,
		"line_height":          &p.settings.LineHeight,
		"x_label_width":        &p.settings.XLabelWidth,
		"y_label_width":        &p.settings.YLabelWidth,
		"x_label_y_coordinate": &p.settings.XLabelYCoordinate,
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		field, ok := fields[key.Value]
		if !ok {
			p.errorf(key.Line, "unknown setting %q", key.Value)
			continue
		}
		var v float64
		if value.Kind != yaml.ScalarNode || value.Decode(&v) != nil {
			p.errorf(value.Line, "setting %s must be a number, got %q", key.Value, value.Value)
			continue
		}
		*field = v
	}
}

func (p *parser) yamlItems(n *yaml.Node) {
	if n.Kind != yaml.SequenceNode {
		if n.Tag != "!!null" {
			p.errorf(n.Line, "items must be a sequence")
		}
		return
	}
	for _, item := range n.Content {
		p.yamlItem(item)
	}
}

func (p *parser) yamlItem(n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		p.errorf(n.Line, "item must be a mapping")
		return
	}

	var (
		label, style string
		dates        []dateSpec
		separator    bool
		others       bool
		valid        = true
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "label":
			label = value.Value
			others = true
		case "style":
			style = value.Value
			others = true
		case "dates":
			dates = p.yamlDates(value)
			others = true
		case "separator":
			if err := value.Decode(&separator); err != nil {
				p.errorf(value.Line, "separator must be true or false, got %q", value.Value)
				valid = false
			}
		default:
			p.errorf(key.Line, "unknown item key %q", key.Value)
			valid = false
		}
	}

	if separator {
		if others {
			p.errorf(n.Line, "a separator takes no label, style or dates")
			return
		}
		if valid {
			p.items = append(p.items, chart.Separator{})
		}
		return
	}
	if !valid && !others {
		return
	}
	if e, ok := p.entry(n.Line, label, style, dates); ok && valid {
		p.items = append(p.items, e)
	}
}

// yamlDates accepts a single date range or a sequence of them.
func (p *parser) yamlDates(n *yaml.Node) []dateSpec {
	switch n.Kind {
	case yaml.ScalarNode:
		return []dateSpec{{text: n.Value, line: n.Line}}
	case yaml.SequenceNode:
		dates := make([]dateSpec, 0, len(n.Content))
		for _, d := range n.Content {
			if d.Kind != yaml.ScalarNode {
				p.errorf(d.Line, "date range must be a string")
				continue
			}
			dates = append(dates, dateSpec{text: d.Value, line: d.Line})
		}
		return dates
	}
	p.errorf(n.Line, "dates must be a string or a sequence of strings")
	return nil
}

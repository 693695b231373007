// Package config loads the appearance configuration of a chart: default
// dimensions, the style names attached to primitives, and SVG colors and fonts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"timeline2tikz/internal/chart"
	"timeline2tikz/internal/failure"
	"timeline2tikz/internal/render"
)

// Config maps directly onto the YAML configuration file. Keys left out of
// the file keep their defaults.
type Config struct {
	Chart  ChartConfig `yaml:"chart"`  // Dimensions used when the input file omits them
	Styles StyleConfig `yaml:"styles"` // Style names written into TikZ commands and SVG classes
	SVG    SVGConfig   `yaml:"svg"`    // Appearance of SVG output
}

// ChartConfig holds default chart dimensions in millimetres.
type ChartConfig struct {
	ChartWidth        float64 `yaml:"chart_width"`          // Total width including the item label column
	LineHeight        float64 `yaml:"line_height"`          // Vertical distance between rows
	XLabelWidth       float64 `yaml:"x_label_width"`        // Width of a year label under the axis
	YLabelWidth       float64 `yaml:"y_label_width"`        // Width of the item label column
	XLabelYCoordinate float64 `yaml:"x_label_y_coordinate"` // Vertical position of year labels, usually negative
}

// StyleConfig names the style of each kind of primitive.
type StyleConfig struct {
	Frame    string `yaml:"frame"`
	Gridline string `yaml:"gridline"`
	XLabel   string `yaml:"x_label"`
	YLabel   string `yaml:"y_label"`
	Bar      string `yaml:"bar"` // Bar style for items that do not name one
}

// SVGConfig controls SVG output only; TikZ output leaves appearance to the
// styles defined by the including document.
type SVGConfig struct {
	Font struct {
		Family string  `yaml:"family"` // Font family for labels (e.g., "Arial, sans-serif")
		Size   float64 `yaml:"size"`   // Font size in document units
	} `yaml:"font"`
	Colors struct {
		Background string `yaml:"background"`
		Frame      string `yaml:"frame"`
		Gridline   string `yaml:"gridline"`
		Text       string `yaml:"text"`
		Bar        string `yaml:"bar"`
	} `yaml:"colors"`
	LineWidth float64 `yaml:"line_width"`
	BarHeight float64 `yaml:"bar_height"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	s := chart.DefaultSettings()
	st := chart.DefaultStyles()
	svg := render.DefaultSVGOptions()

	var c Config
	c.Chart = ChartConfig{
		ChartWidth:        s.ChartWidth,
		LineHeight:        s.LineHeight,
		XLabelWidth:       s.XLabelWidth,
		YLabelWidth:       s.YLabelWidth,
		XLabelYCoordinate: s.XLabelYCoordinate,
	}
	c.Styles = StyleConfig{
		Frame:    st.Frame,
		Gridline: st.Gridline,
		XLabel:   st.XLabel,
		YLabel:   st.YLabel,
		Bar:      st.Bar,
	}
	c.SVG.Font.Family = svg.FontFamily
	c.SVG.Font.Size = svg.FontSize
	c.SVG.Colors.Background = svg.BackgroundColor
	c.SVG.Colors.Frame = svg.FrameColor
	c.SVG.Colors.Gridline = svg.GridlineColor
	c.SVG.Colors.Text = svg.TextColor
	c.SVG.Colors.Bar = svg.BarColor
	c.SVG.LineWidth = svg.LineWidth
	c.SVG.BarHeight = svg.BarHeight
	return c
}

// Load reads the configuration at path over the defaults. An empty path
// returns the defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, failure.New(failure.ErrConfig, "Error: cannot read config file %q: %v", path, err)
	}
	if err := c.decode(data); err != nil {
		return Config{}, failure.New(failure.ErrConfig, "Error: config file %q: %s", path, oneLine(err))
	}
	if err := c.Validate(); err != nil {
		return Config{}, failure.New(failure.ErrConfig, "Error: config file %q: %v", path, err)
	}
	return c, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// oneLine folds a multi-line yaml error onto a single line.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

// Validate checks that every dimension is usable.
func (c Config) Validate() error {
	var problems []string
	dims := []struct {
		key      string
		value    float64
		positive bool
	}{
		{"chart.chart_width", c.Chart.ChartWidth, true},
		{"chart.line_height", c.Chart.LineHeight, true},
		{"chart.x_label_width", c.Chart.XLabelWidth, true},
		{"chart.y_label_width", c.Chart.YLabelWidth, true},
		{"chart.x_label_y_coordinate", c.Chart.XLabelYCoordinate, false},
		{"svg.font.size", c.SVG.Font.Size, true},
		{"svg.line_width", c.SVG.LineWidth, true},
		{"svg.bar_height", c.SVG.BarHeight, true},
	}
	for _, d := range dims {
		switch {
		case math.IsNaN(d.value) || math.IsInf(d.value, 0):
			problems = append(problems, fmt.Sprintf("%s must be a finite number, got %g", d.key, d.value))
		case d.positive && d.value <= 0:
			problems = append(problems, fmt.Sprintf("%s must be positive, got %g", d.key, d.value))
		}
	}
	styles := []struct{ key, value string }{
		{"styles.frame", c.Styles.Frame},
		{"styles.gridline", c.Styles.Gridline},
		{"styles.x_label", c.Styles.XLabel},
		{"styles.y_label", c.Styles.YLabel},
		{"styles.bar", c.Styles.Bar},
	}
	for _, s := range styles {
		switch {
		case s.value == "":
			problems = append(problems, s.key+" must not be empty")
		case !chart.ValidStyle(s.value):
			problems = append(problems, fmt.Sprintf("%s %q is not a valid style name", s.key, s.value))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Settings returns the default chart dimensions.
func (c Config) Settings() chart.Settings {
	return chart.Settings{
		ChartWidth:        c.Chart.ChartWidth,
		XLabelWidth:       c.Chart.XLabelWidth,
		YLabelWidth:       c.Chart.YLabelWidth,
		LineHeight:        c.Chart.LineHeight,
		XLabelYCoordinate: c.Chart.XLabelYCoordinate,
	}
}

// ChartStyles returns the style names for chart builders.
func (c Config) ChartStyles() chart.Styles {
	return chart.Styles{
		Frame:    c.Styles.Frame,
		Gridline: c.Styles.Gridline,
		XLabel:   c.Styles.XLabel,
		YLabel:   c.Styles.YLabel,
		Bar:      c.Styles.Bar,
	}
}

// SVGOptions returns the SVG canvas appearance.
func (c Config) SVGOptions() render.SVGOptions {
	return render.SVGOptions{
		FontFamily:      c.SVG.Font.Family,
		FontSize:        c.SVG.Font.Size,
		BackgroundColor: c.SVG.Colors.Background,
		FrameColor:      c.SVG.Colors.Frame,
		GridlineColor:   c.SVG.Colors.Gridline,
		TextColor:       c.SVG.Colors.Text,
		BarColor:        c.SVG.Colors.Bar,
		LineWidth:       c.SVG.LineWidth,
		BarHeight:       c.SVG.BarHeight,
		FrameStyle:      c.Styles.Frame,
	}
}

// Package app runs one conversion: it loads the appearance config, reads the
// input description, lays out the chart and writes the rendered document.
package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"timeline2tikz/internal/chart"
	"timeline2tikz/internal/config"
	"timeline2tikz/internal/failure"
	"timeline2tikz/internal/input"
	"timeline2tikz/internal/render"
)

// Options describe a single conversion.
type Options struct {
	Input      string
	Output     string
	ConfigPath string
	// Format is "tikz" or "svg"; empty picks one from the output file name.
	Format string

	// Printf receives progress lines, Debugf verbose diagnostics. Either
	// may be nil.
	Printf func(format string, args ...any)
	Debugf func(format string, args ...any)
}

func (o Options) printf(format string, args ...any) {
	if o.Printf != nil {
		o.Printf(format, args...)
	}
}

func (o Options) debugf(format string, args ...any) {
	if o.Debugf != nil {
		o.Debugf(format, args...)
	}
}

// Result summarizes a finished conversion.
type Result struct {
	Items  int
	Format render.Format
	Output string
}

// Run performs the conversion described by opts. The output file is only
// written once the whole document has been rendered.
func Run(fs afero.Fs, opts Options) (Result, error) {
	format, err := resolveFormat(opts)
	if err != nil {
		return Result{}, err
	}
	opts.debugf("Output format: %s", format)

	cfg, err := config.Load(fs, opts.ConfigPath)
	if err != nil {
		return Result{}, err
	}
	if opts.ConfigPath != "" {
		opts.debugf("Loaded configuration from %s", opts.ConfigPath)
	} else {
		opts.debugf("Using default configuration")
	}

	settings, items, err := input.Read(fs, opts.Input, cfg.Settings())
	if err != nil {
		return Result{}, err
	}
	opts.printf("Loaded %d items from %s", len(items), opts.Input)
	opts.debugf("Settings: %+v", settings)

	layout, err := chart.BuildLayout(settings, items)
	if err != nil {
		return Result{}, err
	}
	layout = layout.WithStyles(cfg.ChartStyles())
	opts.debugf("Layout: x axis %gmm, y axis %gmm, %d ticks", layout.XAxisLength(), layout.YAxisLength(), len(layout.TickDates()))

	c, err := chart.New(layout, items)
	if err != nil {
		return Result{}, err
	}
	doc, err := render.Render(c, render.NewCanvas(format, cfg.SVGOptions()))
	if err != nil {
		return Result{}, err
	}
	opts.debugf("Rendered %d bytes", len(doc))

	if err := afero.WriteFile(fs, opts.Output, []byte(doc), 0o644); err != nil {
		return Result{}, errors.Wrapf(err, "writing %s", opts.Output)
	}
	return Result{Items: len(items), Format: format, Output: opts.Output}, nil
}

func resolveFormat(opts Options) (render.Format, error) {
	if opts.Format == "" {
		return render.FormatFor(opts.Output), nil
	}
	f, err := render.ParseFormat(opts.Format)
	if err != nil {
		return "", failure.New(failure.ErrUsage, "Error: %v", err)
	}
	return f, nil
}

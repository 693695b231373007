/*
Package main implements timeline2tikz, a converter that turns a description of
dated items into a timeline chart drawn as a TikZ picture or an SVG document.

The input file lists chart settings and items (YAML), or just items (CSV).
Each item is either a labeled row with one or more date ranges, or a
separator line. The chart places a year axis along the bottom and one row
per item, and writes the result to the output file.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"timeline2tikz/internal/app"
	"timeline2tikz/internal/args"
	"timeline2tikz/internal/failure"
	"timeline2tikz/internal/render"
)

// Global debug flag
var debugMode bool

// debugOut receives debug messages; tests replace it.
var debugOut io.Writer = os.Stderr

// debugPrint prints debug messages when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(debugOut, "[DEBUG] "+format+"\n", args...)
	}
}

var formatNames = map[render.Format]string{
	render.FormatTikZ: "TikZ",
	render.FormatSVG:  "SVG",
}

func newRootCommand(fs afero.Fs, stdout io.Writer) *cobra.Command {
	var (
		configFile string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "timeline2tikz [flags] input-data-filename output-document-filename",
		Short: "Draw a timeline chart as a TikZ picture or an SVG document",
		Long: `Draw a timeline chart as a TikZ picture or an SVG document.

The input data file is YAML (settings and items) or, when its name ends in
.csv, a CSV file with label, style and dates columns. Dates are written as
YYYY, YYYY.M or YYYY.M.D, and ranges as BEGIN-END.

The output format follows the output file name (.svg gives SVG, anything
else TikZ) unless --format is given. If no config file is specified,
default settings will be used.`,
		Example:       "  timeline2tikz --config style.yaml languages.yaml languages.tex",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			a, err := args.Parse(fs, argv)
			if err != nil {
				return err
			}
			debugPrint("Input: %s, output: %s", a.DataFilename, a.OutputFilename)

			res, err := app.Run(fs, app.Options{
				Input:      a.DataFilename,
				Output:     a.OutputFilename,
				ConfigPath: configFile,
				Format:     format,
				Printf: func(msg string, v ...any) {
					fmt.Fprintf(stdout, msg+"\n", v...)
				},
				Debugf: debugPrint,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "Timeline %s generated successfully: %s\n", formatNames[res.Format], res.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML configuration file (optional)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format, tikz or svg (default from the output file name)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return failure.New(failure.ErrUsage, "Error: %v (see --help)", err)
	})
	return cmd
}

// run executes the command line argv and returns the process exit code.
func run(argv []string, fs afero.Fs, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = report(stderr, errors.Errorf("panic: %v", r))
		}
	}()

	if argv == nil {
		argv = []string{}
	}
	cmd := newRootCommand(fs, stdout)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return report(stderr, err)
	}
	return 0
}

// report prints err for the user. Expected failures print their message
// (preceded by every individual problem for input errors) and give exit
// code 1; anything else is an internal error printed with its stack trace.
func report(w io.Writer, err error) int {
	var fe *failure.Error
	if errors.As(err, &fe) {
		if errors.Is(fe, failure.ErrParse) {
			for _, d := range fe.Details {
				fmt.Fprintln(w, d)
			}
		}
		fmt.Fprintln(w, fe.Error())
		return 1
	}
	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	fmt.Fprintf(w, "%+v\n", err)
	return 2
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// Package args validates the command-line arguments of the converter.
package args

import (
	"path/filepath"

	"github.com/spf13/afero"

	"timeline2tikz/internal/failure"
)

// Usage is the one-line synopsis printed on a malformed invocation.
const Usage = "Usage: timeline2tikz input-data-filename output-document-filename"

// CommandLineArgs are the validated positional arguments.
type CommandLineArgs struct {
	DataFilename   string
	OutputFilename string
}

// Parse checks that argv names an existing input file and an output path
// that is either absent or a regular file distinct from the input.
func Parse(fs afero.Fs, argv []string) (CommandLineArgs, error) {
	if len(argv) != 2 {
		return CommandLineArgs{}, failure.New(failure.ErrUsage, "%s", Usage)
	}
	data, out := argv[0], argv[1]

	info, err := fs.Stat(data)
	if err != nil {
		return CommandLineArgs{}, failure.New(failure.ErrInputFile, "Error: input data file %q not found.", data)
	}
	if !info.Mode().IsRegular() {
		return CommandLineArgs{}, failure.New(failure.ErrInputFile, "Error: input data file %q is not a file.", data)
	}
	if info, err := fs.Stat(out); err == nil && !info.Mode().IsRegular() {
		return CommandLineArgs{}, failure.New(failure.ErrInputFile, "Error: existing output data file %q is not a file.", out)
	}
	if sameFile(data, out) {
		return CommandLineArgs{}, failure.New(failure.ErrInputFile, "Error: input %q and output %q refer to the same file.", data, out)
	}
	return CommandLineArgs{DataFilename: data, OutputFilename: out}, nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

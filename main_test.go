package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline2tikz/internal/args"
	"timeline2tikz/internal/failure"
)

const exampleYAML = `settings:
  chart_width: 100
  x_label_width: 10
  y_label_width: 10
  line_height: 5
  x_label_y_coordinate: -3
items:
  - label: First
    dates: 2000
  - label: Second
    dates: 2000.6-2001.3
`

func runWith(t *testing.T, fs afero.Fs, argv ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(argv, fs, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func exampleFs(t *testing.T, input string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "chart.yaml", []byte(input), 0o644))
	return fs
}

func TestRun(t *testing.T) {
	fs := exampleFs(t, exampleYAML)

	code, stdout, stderr := runWith(t, fs, "chart.yaml", "chart.tex")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "Loaded 2 items from chart.yaml\nTimeline TikZ generated successfully: chart.tex\n", stdout)

	out, err := afero.ReadFile(fs, "chart.tex")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "\\tikzpicture\n"))
	assert.True(t, strings.HasSuffix(string(out), "\\endtikzpicture\n"))
}

func TestRunFormatFlag(t *testing.T) {
	fs := exampleFs(t, exampleYAML)

	code, stdout, _ := runWith(t, fs, "--format", "svg", "chart.yaml", "chart.out")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Timeline SVG generated successfully: chart.out")

	out, err := afero.ReadFile(fs, "chart.out")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
}

func TestRunDebug(t *testing.T) {
	var debug bytes.Buffer
	saved := debugOut
	debugOut = &debug
	t.Cleanup(func() {
		debugOut = saved
		debugMode = false
	})

	code, _, _ := runWith(t, exampleFs(t, exampleYAML), "--debug", "chart.yaml", "chart.tex")
	assert.Equal(t, 0, code)
	assert.Contains(t, debug.String(), "[DEBUG] Input: chart.yaml, output: chart.tex\n")
	assert.Contains(t, debug.String(), "[DEBUG] Output format: tikz\n")
}

func TestRunKnownErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		argv  []string
		want  string
	}{
		{
			name:  "usage",
			input: exampleYAML,
			argv:  []string{"chart.yaml"},
			want:  args.Usage + "\n",
		},
		{
			name:  "unknown flag",
			input: exampleYAML,
			argv:  []string{"--colour", "chart.yaml", "chart.tex"},
			want:  "Error: unknown flag: --colour (see --help)\n",
		},
		{
			name:  "missing input",
			input: exampleYAML,
			argv:  []string{"other.yaml", "chart.tex"},
			want:  "Error: input data file \"other.yaml\" not found.\n",
		},
		{
			name:  "parse errors",
			input: "items:\n  - label: A\n  - dates: 2001\n",
			argv:  []string{"chart.yaml", "chart.tex"},
			want: "chart.yaml:2: item \"A\" has no dates\n" +
				"chart.yaml:3: item has no label\n" +
				"Errors found; aborting.\n",
		},
		{
			name:  "plot area too narrow",
			input: strings.Replace(exampleYAML, "chart_width: 100", "chart_width: 20", 1),
			argv:  []string{"chart.yaml", "chart.tex"},
			want:  "plot area is too narrow (0, min is 1); is chart_width too small, or x_label_width or y_label_width too large?\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := exampleFs(t, tt.input)

			code, _, stderr := runWith(t, fs, tt.argv...)
			assert.Equal(t, 1, code)
			assert.Equal(t, tt.want, stderr)

			exists, err := afero.Exists(fs, "chart.tex")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestRunInternalError(t *testing.T) {
	fs := afero.NewReadOnlyFs(exampleFs(t, exampleYAML))

	code, _, stderr := runWith(t, fs, "chart.yaml", "chart.tex")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "writing chart.tex")
	assert.Contains(t, stderr, "timeline2tikz/internal/app.Run")
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 1, report(&buf, failure.New(failure.ErrLayout, "too narrow")))
	assert.Equal(t, "too narrow\n", buf.String())

	buf.Reset()
	assert.Equal(t, 1, report(&buf, errors.Wrap(failure.New(failure.ErrConfig, "bad config"), "loading")))
	assert.Equal(t, "bad config\n", buf.String())

	buf.Reset()
	assert.Equal(t, 2, report(&buf, errors.New("boom")))
	assert.True(t, strings.HasPrefix(buf.String(), "boom\n"))
	assert.Contains(t, buf.String(), "TestReport")
}

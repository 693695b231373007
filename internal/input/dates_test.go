package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline2tikz/internal/chart"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		in         string
		begin, end time.Time
	}{
		{"2001", chart.Date(2001, time.January, 1), chart.Date(2001, time.December, 31)},
		{"2000.2", chart.Date(2000, time.February, 1), chart.Date(2000, time.February, 29)},
		{"2001.2", chart.Date(2001, time.February, 1), chart.Date(2001, time.February, 28)},
		{"2001.3.14", chart.Date(2001, time.March, 14), chart.Date(2001, time.March, 14)},
		{"2001.3.14-2001.10.2", chart.Date(2001, time.March, 14), chart.Date(2001, time.October, 2)},
		{"1999 - 2001.4", chart.Date(1999, time.January, 1), chart.Date(2001, time.April, 30)},
		{" 2003.11-2004 ", chart.Date(2003, time.November, 1), chart.Date(2004, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseDateRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.begin, r.Begin)
			assert.Equal(t, tt.end, r.End)
		})
	}
}

func TestParseDateRangeErrors(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `invalid date "", expected YYYY, YYYY.M or YYYY.M.D`},
		{"abc", `invalid date "abc", expected YYYY, YYYY.M or YYYY.M.D`},
		{"2001.1.1.1", `invalid date "2001.1.1.1", expected YYYY, YYYY.M or YYYY.M.D`},
		{"2001-", `invalid date "", expected YYYY, YYYY.M or YYYY.M.D`},
		{"2001.13", `invalid month in date "2001.13"`},
		{"2001.0", `invalid month in date "2001.0"`},
		{"2001.2.29", `invalid day in date "2001.2.29"`},
		{"2001.4.31", `invalid day in date "2001.4.31"`},
		{"2002-2001", `date range "2002-2001" ends before it begins`},
		{"2001.5.2-2001.5.1", `date range "2001.5.2-2001.5.1" ends before it begins`},
		{"2001-2002-2003", `invalid date "2002-2003", expected YYYY, YYYY.M or YYYY.M.D`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDateRange(tt.in)
			assert.EqualError(t, err, tt.want)
		})
	}
}

package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timeline2tikz/internal/chart"
)

// ParseDateRange parses "date" or "date-date", where each date is YYYY,
// YYYY.M or YYYY.M.D. A partial date covers its whole year or month, so
// "2001" is 2001-01-01..2001-12-31 and "2001.2-2001.3" ends on March 31st.
func ParseDateRange(s string) (chart.DateRange, error) {
	from, to, isRange := strings.Cut(s, "-")
	if !isRange {
		to = from
	}
	begin, err := parseDate(from, false)
	if err != nil {
		return chart.DateRange{}, err
	}
	end, err := parseDate(to, true)
	if err != nil {
		return chart.DateRange{}, err
	}
	if end.Before(begin) {
		return chart.DateRange{}, fmt.Errorf("date range %q ends before it begins", strings.TrimSpace(s))
	}
	return chart.DateRange{Begin: begin, End: end}, nil
}

// parseDate reads one date. Missing parts are filled from the start of the
// period, or from its end when last is set.
func parseDate(s string, last bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 3 {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY, YYYY.M or YYYY.M.D", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY, YYYY.M or YYYY.M.D", s)
		}
		nums[i] = n
	}

	year, month, day := nums[0], 1, 1
	if last {
		month = 12
	}
	if len(nums) > 1 {
		month = nums[1]
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("invalid month in date %q", s)
		}
	}
	if last {
		day = daysIn(year, time.Month(month))
	}
	if len(nums) > 2 {
		day = nums[2]
		if day < 1 || day > daysIn(year, time.Month(month)) {
			return time.Time{}, fmt.Errorf("invalid day in date %q", s)
		}
	}
	return chart.Date(year, time.Month(month), day), nil
}

func daysIn(year int, month time.Month) int {
	return chart.Date(year, month+1, 0).Day()
}

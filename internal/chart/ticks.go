package chart

import "time"

// today is replaced in tests to pin the default date range of an empty chart.
var today = time.Now

// TickDates chooses the date axis ticks for the span earliest..latest.
//
// Up to ten years get a tick every year, up to fifty years a tick every five
// years and anything longer a tick every ten years. Ticks fall on January 1st
// and always bracket the whole of latest's year.
func TickDates(earliest, latest time.Time) []time.Time {
	from := earliest.Year()
	to := latest.Year() + 1
	if to-from <= 10 {
		return makeTickDates(from, to, 1)
	}

	from, to = floorTo(from, 5), ceilTo(to, 5)
	if to-from <= 50 {
		return makeTickDates(from, to, 5)
	}

	return makeTickDates(floorTo(from, 10), ceilTo(to, 10), 10)
}

func makeTickDates(from, to, interval int) []time.Time {
	dates := make([]time.Time, 0, (to-from)/interval+1)
	for year := from; year <= to; year += interval {
		dates = append(dates, Date(year, time.January, 1))
	}
	return dates
}

// floorTo rounds year down to a multiple of n, also for negative years.
func floorTo(year, n int) int {
	r := year % n
	if r < 0 {
		r += n
	}
	return year - r
}

func ceilTo(year, n int) int {
	return -floorTo(-year, n)
}

// itemsDateRange returns the earliest begin and latest end over all items,
// or the current calendar year when no item carries a date.
func itemsDateRange(items []Item) (time.Time, time.Time) {
	var earliest, latest time.Time
	found := false
	for _, item := range items {
		for _, r := range item.DateRanges() {
			if !found || r.Begin.Before(earliest) {
				earliest = r.Begin
			}
			if !found || r.End.After(latest) {
				latest = r.End
			}
			found = true
		}
	}
	if !found {
		year := today().Year()
		return Date(year, time.January, 1), Date(year, time.December, 31)
	}
	return earliest, latest
}

package timeline

import "time"

// canadianHolidays is the 2026 Canadian statutory calendar, keyed by
// month: New Year's Day, Family Day, Good Friday, Victoria Day, Canada
// Day, Civic Holiday, Labour Day + Truth and Reconciliation Day,
// Thanksgiving, Remembrance Day, Christmas + Boxing Day (observed).
var canadianHolidays = map[time.Month][]int{
	time.January:   {1},
	time.February:  {16},
	time.April:     {3},
	time.May:       {18},
	time.July:      {1},
	time.August:    {3},
	time.September: {7, 30},
	time.October:   {12},
	time.November:  {11},
	time.December:  {25, 28},
}

// WorkingDays counts the weekdays in a month that are not Canadian
// statutory holidays.
func WorkingDays(year int, month time.Month) int {
	holidays := make(map[int]bool, 2)
	for _, day := range canadianHolidays[month] {
		holidays[day] = true
	}

	count := 0
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday && !holidays[d.Day()] {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}

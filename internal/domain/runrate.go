package domain

import "sort"

// RunRateTable is a sparse year → month (0-11) → system → monthly spend
// mapping. Absent entries read as zero.
type RunRateTable map[int]map[int]map[System]float64

// Amount returns the run rate for one system in a given year/month,
// or zero when no entry exists.
func (r RunRateTable) Amount(year, month int, sys System) float64 {
	return r[year][month][sys]
}

// GlobalAmount sums the run rate across every concrete system for a
// given year/month.
func (r RunRateTable) GlobalAmount(year, month int) float64 {
	total := 0.0
	for _, sys := range AllSystems {
		total += r[year][month][sys]
	}
	return total
}

// Set records an amount, creating intermediate maps as needed.
func (r RunRateTable) Set(year, month int, sys System, amount float64) {
	if r[year] == nil {
		r[year] = make(map[int]map[System]float64)
	}
	if r[year][month] == nil {
		r[year][month] = make(map[System]float64)
	}
	r[year][month][sys] = amount
}

// Years returns the year keys in ascending order.
func (r RunRateTable) Years() []int {
	years := make([]int, 0, len(r))
	for y := range r {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Clone returns a deep copy of the table.
func (r RunRateTable) Clone() RunRateTable {
	out := make(RunRateTable, len(r))
	for y, months := range r {
		out[y] = make(map[int]map[System]float64, len(months))
		for m, systems := range months {
			out[y][m] = make(map[System]float64, len(systems))
			for sys, amt := range systems {
				out[y][m][sys] = amt
			}
		}
	}
	return out
}

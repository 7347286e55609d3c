package charts

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
)

// stackedSeries holds a year-by-category count matrix with missing years
// zero-filled, ready for stacked bar rendering.
type stackedSeries struct {
	Years  []int
	Order  []string             // stacking order, bottom first
	Values map[string][]float64 // aligned with Years
	Totals []float64
}

// parseYear accepts both integer and float-formatted year labels.
func parseYear(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// buildYearStack turns a year × category crosstab into a stackedSeries
// over [startYear, maxYear], zero-filling missing years. Categories keep
// the given order; crosstab categories absent from order are dropped only
// if they are genuinely absent from it (callers pass a complete order).
func buildYearStack(ct *frame.Crosstab, order []string, startYear int) (*stackedSeries, error) {
	minY, maxY, err := yearRange(ct)
	if err != nil {
		return nil, err
	}
	if startYear < minY {
		startYear = minY
	}
	s := &stackedSeries{Order: order, Values: map[string][]float64{}}
	for y := startYear; y <= maxY; y++ {
		s.Years = append(s.Years, y)
	}
	s.Totals = make([]float64, len(s.Years))
	for _, cat := range order {
		vals := make([]float64, len(s.Years))
		for i, y := range s.Years {
			n := ct.Count(yearLabel(ct, y), cat)
			vals[i] = float64(n)
			s.Totals[i] += float64(n)
		}
		s.Values[cat] = vals
	}
	return s, nil
}

// yearRange returns the min and max year among the crosstab rows.
func yearRange(ct *frame.Crosstab) (int, int, error) {
	minY, maxY := 0, 0
	seen := false
	for _, r := range ct.Rows() {
		y, ok := parseYear(r)
		if !ok {
			continue
		}
		if !seen {
			minY, maxY, seen = y, y, true
			continue
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if !seen {
		return 0, 0, fmt.Errorf("crosstab has no numeric year rows")
	}
	return minY, maxY, nil
}

// yearLabel finds the crosstab row label matching the given year, so that
// both "2015" and "2015.0" source labels resolve.
func yearLabel(ct *frame.Crosstab, year int) string {
	for _, r := range ct.Rows() {
		if y, ok := parseYear(r); ok && y == year {
			return r
		}
	}
	return strconv.Itoa(year)
}

// displayStartYear returns the first year whose 3-year window total is at
// least 2 papers, so sparse early decades do not stretch the time axis.
func displayStartYear(ct *frame.Crosstab) (int, error) {
	minY, maxY, err := yearRange(ct)
	if err != nil {
		return 0, err
	}
	totals := map[int]int{}
	for _, r := range ct.Rows() {
		if y, ok := parseYear(r); ok {
			totals[y] += ct.RowTotal(r)
		}
	}
	for yr := minY; yr < maxY; yr++ {
		window := totals[yr] + totals[yr+1] + totals[yr+2]
		if window >= 2 {
			return yr, nil
		}
	}
	return minY, nil
}

// withExtras appends crosstab categories missing from the fixed order, in
// ascending name order, so no observation is silently dropped.
func withExtras(order, present []string) []string {
	known := map[string]bool{}
	for _, o := range order {
		known[o] = true
	}
	var extras []string
	for _, p := range present {
		if !known[p] {
			extras = append(extras, p)
		}
	}
	sort.Strings(extras)
	return append(append([]string(nil), order...), extras...)
}

// intersect keeps the fixed-order entries that actually occur, then
// appends the extras, mirroring the row/column ordering of the published
// heatmaps.
func orderedCategories(order, present []string) []string {
	occurs := map[string]bool{}
	for _, p := range present {
		occurs[p] = true
	}
	var out []string
	for _, o := range order {
		if occurs[o] {
			out = append(out, o)
		}
	}
	known := map[string]bool{}
	for _, o := range out {
		known[o] = true
	}
	var extras []string
	for _, p := range present {
		if !known[p] {
			extras = append(extras, p)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}

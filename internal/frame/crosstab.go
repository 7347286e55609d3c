package frame

import "sort"

// Crosstab is a two-way contingency table of category counts.
type Crosstab struct {
	rowVals []string
	colVals []string
	counts  map[string]map[string]int
	total   int
}

// Crosstab counts rows of the frame where both named columns are non-null.
func (f *Frame) Crosstab(rowCol, colCol string) (*Crosstab, error) {
	rc, err := f.Column(rowCol)
	if err != nil {
		return nil, err
	}
	cc, err := f.Column(colCol)
	if err != nil {
		return nil, err
	}
	ct := &Crosstab{counts: map[string]map[string]int{}}
	colSeen := map[string]bool{}
	for i := range rc {
		if !rc[i].Valid || !cc[i].Valid {
			continue
		}
		r, c := rc[i].Str, cc[i].Str
		m := ct.counts[r]
		if m == nil {
			m = map[string]int{}
			ct.counts[r] = m
			ct.rowVals = append(ct.rowVals, r)
		}
		if !colSeen[c] {
			colSeen[c] = true
			ct.colVals = append(ct.colVals, c)
		}
		m[c]++
		ct.total++
	}
	sort.Strings(ct.rowVals)
	sort.Strings(ct.colVals)
	return ct, nil
}

// Rows returns the row categories in ascending order.
func (ct *Crosstab) Rows() []string { return append([]string(nil), ct.rowVals...) }

// Cols returns the column categories in ascending order.
func (ct *Crosstab) Cols() []string { return append([]string(nil), ct.colVals...) }

// Total returns the number of counted observations.
func (ct *Crosstab) Total() int { return ct.total }

// Count returns the tally for one row/column pair.
func (ct *Crosstab) Count(row, col string) int {
	return ct.counts[row][col]
}

// RowTotal returns the tally across one row.
func (ct *Crosstab) RowTotal(row string) int {
	n := 0
	for _, c := range ct.counts[row] {
		n += c
	}
	return n
}

// ColTotal returns the tally across one column.
func (ct *Crosstab) ColTotal(col string) int {
	n := 0
	for _, m := range ct.counts {
		n += m[col]
	}
	return n
}

// ColsByTotal returns the column categories ordered by descending total,
// ties broken by ascending name.
func (ct *Crosstab) ColsByTotal() []string {
	return ct.byTotal(ct.colVals, ct.ColTotal)
}

// RowsByTotal returns the row categories ordered by descending total,
// ties broken by ascending name.
func (ct *Crosstab) RowsByTotal() []string {
	return ct.byTotal(ct.rowVals, ct.RowTotal)
}

func (ct *Crosstab) byTotal(vals []string, total func(string) int) []string {
	out := append([]string(nil), vals...)
	sort.Slice(out, func(i, j int) bool {
		ti, tj := total(out[i]), total(out[j])
		if ti != tj {
			return ti > tj
		}
		return out[i] < out[j]
	})
	return out
}

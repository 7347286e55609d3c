package frame

import "sort"

// CategoryCount is one entry of a categorical tally.
type CategoryCount struct {
	Value string
	Count int
}

// ValueCounts tallies the values and returns entries sorted by descending
// count, breaking ties by ascending value.
func ValueCounts(vals []string) []CategoryCount {
	m := make(map[string]int, len(vals))
	for _, v := range vals {
		m[v]++
	}
	out := make([]CategoryCount, 0, len(m))
	for v, n := range m {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// NUnique returns the number of distinct values.
func NUnique(vals []string) int {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return len(m)
}

// Mode returns the most frequent value; ties resolve to the
// lexicographically smallest. Empty input yields "".
func Mode(vals []string) string {
	counts := ValueCounts(vals)
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Value
}

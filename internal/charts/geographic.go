package charts

import (
	"fmt"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/tables"
)

// barData is the bottom-to-top display order of a horizontal bar chart.
type barData struct {
	Labels  []string
	Counts  []int
	Special []bool // gray, non-geographic bars
}

// buildGeographic arranges region counts for the horizontal bar chart:
// sentinel categories at the bottom, then the Other bucket, then the top
// N regions with the largest count on top. The input must be sorted by
// descending count, as frame.ValueCounts returns it.
func buildGeographic(counts []frame.CategoryCount, topN int) *barData {
	special := map[string]int{}
	var regular []frame.CategoryCount
	for _, c := range counts {
		if c.Value == tables.SentinelNotSpecified || c.Value == tables.SentinelSynthetic {
			special[c.Value] = c.Count
		} else {
			regular = append(regular, c)
		}
	}
	top := regular
	if len(top) > topN {
		top = regular[:topN]
	}
	otherCount, otherEntries := 0, 0
	for _, c := range regular[len(top):] {
		otherCount += c.Count
		otherEntries++
	}

	b := &barData{}
	for _, name := range []string{tables.SentinelNotSpecified, tables.SentinelSynthetic} {
		if n, ok := special[name]; ok {
			b.append(name, n, true)
		}
	}
	if otherCount > 0 {
		b.append(fmt.Sprintf("Other (%d regions)", otherEntries), otherCount, true)
	}
	for i := len(top) - 1; i >= 0; i-- {
		b.append(top[i].Value, top[i].Count, false)
	}
	return b
}

func (b *barData) append(label string, count int, special bool) {
	b.Labels = append(b.Labels, label)
	b.Counts = append(b.Counts, count)
	b.Special = append(b.Special, special)
}

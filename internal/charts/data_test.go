package charts

import (
	"testing"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/tables"
)

func yearMethodCrosstab(t *testing.T, rows [][2]string) *frame.Crosstab {
	t.Helper()
	f := frame.New("classification", []string{"Year_numeric", "Method_clean"})
	for _, r := range rows {
		err := f.AppendRow([]frame.Value{frame.String(r[0]), frame.String(r[1])})
		if err != nil {
			t.Fatalf("append row: %v", err)
		}
	}
	ct, err := f.Crosstab("Year_numeric", "Method_clean")
	if err != nil {
		t.Fatalf("crosstab: %v", err)
	}
	return ct
}

func TestParseYear(t *testing.T) {
	if y, ok := parseYear("2015"); !ok || y != 2015 {
		t.Fatalf("parseYear(2015) = %d, %v", y, ok)
	}
	if y, ok := parseYear("2015.0"); !ok || y != 2015 {
		t.Fatalf("parseYear(2015.0) = %d, %v", y, ok)
	}
	if _, ok := parseYear("n/a"); ok {
		t.Fatal("parseYear should reject non-numeric labels")
	}
}

func TestBuildYearStackZeroFills(t *testing.T) {
	ct := yearMethodCrosstab(t, [][2]string{
		{"2010", "LP"},
		{"2010", "SDP"},
		{"2013", "LP"},
	})
	s, err := buildYearStack(ct, []string{"LP", "SDP"}, 2010)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Years) != 4 {
		t.Fatalf("got years %v, want 2010-2013", s.Years)
	}
	if s.Values["LP"][0] != 1 || s.Values["LP"][3] != 1 {
		t.Fatalf("unexpected LP series: %v", s.Values["LP"])
	}
	// 2011 and 2012 have no observations.
	if s.Totals[1] != 0 || s.Totals[2] != 0 {
		t.Fatalf("missing years should be zero-filled: %v", s.Totals)
	}
	if s.Totals[0] != 2 {
		t.Fatalf("2010 total = %v, want 2", s.Totals[0])
	}
}

func TestBuildYearStackFloatLabels(t *testing.T) {
	ct := yearMethodCrosstab(t, [][2]string{
		{"2015.0", "LP"},
		{"2016.0", "LP"},
	})
	s, err := buildYearStack(ct, []string{"LP"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Years[0] != 2015 || s.Values["LP"][0] != 1 {
		t.Fatalf("float year labels should resolve: %v %v", s.Years, s.Values["LP"])
	}
}

func TestDisplayStartYearSkipsSparseDecades(t *testing.T) {
	ct := yearMethodCrosstab(t, [][2]string{
		{"1985", "LP"},
		{"2005", "LP"},
		{"2006", "SDP"},
		{"2007", "LP"},
	})
	got, err := displayStartYear(ct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The lone 1985 paper never reaches a 3-year window of 2; the first
	// qualifying window is 2004-2006.
	if got != 2004 {
		t.Fatalf("displayStartYear = %d, want 2004", got)
	}
}

func TestDisplayStartYearDenseFromStart(t *testing.T) {
	ct := yearMethodCrosstab(t, [][2]string{
		{"2001", "LP"},
		{"2002", "SDP"},
	})
	got, err := displayStartYear(ct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2001 {
		t.Fatalf("displayStartYear = %d, want 2001", got)
	}
}

func TestWithExtras(t *testing.T) {
	got := withExtras([]string{"LP", "SDP"}, []string{"SDP", "Heuristic", "Agent"})
	want := []string{"LP", "SDP", "Agent", "Heuristic"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOrderedCategories(t *testing.T) {
	got := orderedCategories([]string{"A", "B", "C"}, []string{"C", "A", "X"})
	want := []string{"A", "C", "X"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildGeographic(t *testing.T) {
	counts := []frame.CategoryCount{
		{Value: "Norway", Count: 10},
		{Value: "Brazil", Count: 8},
		{Value: tables.SentinelNotSpecified, Count: 5},
		{Value: "USA", Count: 4},
		{Value: "China", Count: 2},
		{Value: "Chile", Count: 1},
		{Value: tables.SentinelSynthetic, Count: 1},
	}
	b := buildGeographic(counts, 3)

	want := []string{
		tables.SentinelNotSpecified,
		tables.SentinelSynthetic,
		"Other (2 regions)",
		"USA",
		"Brazil",
		"Norway",
	}
	if len(b.Labels) != len(want) {
		t.Fatalf("got labels %v, want %v", b.Labels, want)
	}
	for i := range want {
		if b.Labels[i] != want[i] {
			t.Fatalf("label %d: got %q, want %q", i, b.Labels[i], want[i])
		}
	}
	// China + Chile merged into Other.
	if b.Counts[2] != 3 {
		t.Fatalf("Other count = %d, want 3", b.Counts[2])
	}
	// Sentinels and Other are the gray special bars.
	for i, special := range []bool{true, true, true, false, false, false} {
		if b.Special[i] != special {
			t.Fatalf("special flag %d: got %v, want %v", i, b.Special[i], special)
		}
	}
	// Largest region sits on top (last).
	if b.Labels[len(b.Labels)-1] != "Norway" {
		t.Fatalf("largest region should be last, got %v", b.Labels)
	}
}

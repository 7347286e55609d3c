package frame

import (
	"math"
	"testing"
)

func newTestFrame(t *testing.T) *Frame {
	t.Helper()
	f := New("classification", []string{"Method", "Year"})
	rows := [][]Value{
		{String("LP"), String("2001")},
		{String("MILP"), String("2001")},
		{String("LP"), Null()},
		{Null(), String("2003")},
		{String("SDP"), String("n/a")},
	}
	for _, r := range rows {
		if err := f.AppendRow(r); err != nil {
			t.Fatalf("append row: %v", err)
		}
	}
	return f
}

func TestAppendRowLengthMismatch(t *testing.T) {
	f := New("x", []string{"a", "b"})
	if err := f.AppendRow([]Value{String("1")}); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestStringsSkipsNulls(t *testing.T) {
	f := newTestFrame(t)
	got, err := f.Strings("Method")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"LP", "MILP", "LP", "SDP"}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFloatsSkipsNonNumeric(t *testing.T) {
	f := newTestFrame(t)
	got, err := f.Floats("Year")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "n/a" and the null cell are dropped.
	if len(got) != 3 {
		t.Fatalf("got %d floats, want 3: %v", len(got), got)
	}
	if got[0] != 2001 || got[1] != 2001 || got[2] != 2003 {
		t.Fatalf("unexpected floats: %v", got)
	}
}

func TestCompleteness(t *testing.T) {
	f := newTestFrame(t)
	pct, err := f.Completeness("Method")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pct != 80 {
		t.Fatalf("got %.1f%%, want 80%%", pct)
	}

	empty := New("empty", []string{"a"})
	pct, err = empty.Completeness("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pct != 0 {
		t.Fatalf("empty frame: got %.1f%%, want 0%%", pct)
	}
}

func TestColumnMissing(t *testing.T) {
	f := newTestFrame(t)
	if _, err := f.Column("Nope"); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestValueCountsOrdering(t *testing.T) {
	got := ValueCounts([]string{"b", "a", "b", "c", "a", "b"})
	want := []CategoryCount{{"b", 3}, {"a", 2}, {"c", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestValueCountsTieBreak(t *testing.T) {
	got := ValueCounts([]string{"z", "a", "z", "a"})
	if got[0].Value != "a" || got[1].Value != "z" {
		t.Fatalf("tie should resolve alphabetically, got %+v", got)
	}
}

func TestModeAndNUnique(t *testing.T) {
	if m := Mode([]string{"x", "y", "x"}); m != "x" {
		t.Fatalf("got mode %q, want x", m)
	}
	if m := Mode([]string{"y", "x"}); m != "x" {
		t.Fatalf("tied mode should be smallest, got %q", m)
	}
	if m := Mode(nil); m != "" {
		t.Fatalf("empty mode should be empty, got %q", m)
	}
	if n := NUnique([]string{"a", "b", "a"}); n != 2 {
		t.Fatalf("got %d unique, want 2", n)
	}
}

func TestCrosstab(t *testing.T) {
	f := New("t", []string{"Cat", "Method"})
	rows := [][]Value{
		{String("A"), String("LP")},
		{String("A"), String("LP")},
		{String("A"), String("SDP")},
		{String("B"), String("LP")},
		{String("B"), Null()}, // not counted
		{Null(), String("LP")}, // not counted
	}
	for _, r := range rows {
		if err := f.AppendRow(r); err != nil {
			t.Fatalf("append row: %v", err)
		}
	}
	ct, err := f.Crosstab("Cat", "Method")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.Total() != 4 {
		t.Fatalf("got total %d, want 4", ct.Total())
	}
	if n := ct.Count("A", "LP"); n != 2 {
		t.Fatalf("got A/LP %d, want 2", n)
	}
	if n := ct.RowTotal("A"); n != 3 {
		t.Fatalf("got row total %d, want 3", n)
	}
	if n := ct.ColTotal("LP"); n != 3 {
		t.Fatalf("got col total %d, want 3", n)
	}
	cols := ct.ColsByTotal()
	if cols[0] != "LP" || cols[1] != "SDP" {
		t.Fatalf("unexpected column order: %v", cols)
	}
	rowsByTotal := ct.RowsByTotal()
	if rowsByTotal[0] != "A" || rowsByTotal[1] != "B" {
		t.Fatalf("unexpected row order: %v", rowsByTotal)
	}
}

func TestRollingMeanCentered(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	got := RollingMean(series, 3, 2)
	if len(got) != len(series) {
		t.Fatalf("got length %d, want %d", len(got), len(series))
	}
	// First position sees a 2-element window [1 2].
	if got[0] != 1.5 {
		t.Fatalf("got[0] = %v, want 1.5", got[0])
	}
	if got[2] != 3 {
		t.Fatalf("got[2] = %v, want 3", got[2])
	}
	if got[4] != 4.5 {
		t.Fatalf("got[4] = %v, want 4.5", got[4])
	}
}

func TestRollingMeanMinPeriods(t *testing.T) {
	series := []float64{1, 2, 3}
	got := RollingMean(series, 5, 3)
	// Edge windows hold only 3 values; all positions satisfy minPeriods.
	for i, v := range got {
		if math.IsNaN(v) {
			t.Fatalf("got[%d] is NaN, want value", i)
		}
	}
	got = RollingMean([]float64{1}, 5, 3)
	if !math.IsNaN(got[0]) {
		t.Fatalf("got %v, want NaN for single element with minPeriods 3", got[0])
	}
}

func TestRollingMeanSkipsNaN(t *testing.T) {
	series := []float64{1, math.NaN(), 3}
	got := RollingMean(series, 3, 2)
	if got[1] != 2 {
		t.Fatalf("got[1] = %v, want 2 (NaN excluded)", got[1])
	}
}

func TestStats(t *testing.T) {
	xs := []float64{4, 1, 3, 2}
	if Min(xs) != 1 || Max(xs) != 4 || Mean(xs) != 2.5 || Median(xs) != 2.5 {
		t.Fatalf("unexpected stats: min=%v max=%v mean=%v median=%v",
			Min(xs), Max(xs), Mean(xs), Median(xs))
	}
	if Median([]float64{1, 2, 3}) != 2 {
		t.Fatal("odd-length median should be the middle value")
	}
	if !math.IsNaN(Mean(nil)) || !math.IsNaN(Median(nil)) {
		t.Fatal("empty input should yield NaN")
	}
}

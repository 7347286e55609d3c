package completeness

import (
	"io"
	"strings"
	"testing"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
)

func discardLog() *report.Log {
	return report.NewWriter("test", io.Discard)
}

func testPanels(t *testing.T) map[string]*frame.Frame {
	t.Helper()
	screening := frame.New("screening", []string{"ID", "Title"})
	classification := frame.New("classification", []string{
		"ID", "Study region", "Method_clean", // Method_clean is derived
	})
	waterValue := frame.New("water_values", []string{
		"ID", "WV_min", "Country_clean", // Country_clean is derived
	})

	appendRows := func(f *frame.Frame, rows [][]frame.Value) {
		for _, r := range rows {
			if err := f.AppendRow(r); err != nil {
				t.Fatalf("append row: %v", err)
			}
		}
	}
	appendRows(screening, [][]frame.Value{
		{frame.String("P1"), frame.String("A title")},
		{frame.String("P2"), frame.String("Another")},
	})
	appendRows(classification, [][]frame.Value{
		{frame.String("P1"), frame.String("Norway"), frame.String("SDP")},
		{frame.String("P2"), frame.Null(), frame.String("LP")},
		{frame.String("P3"), frame.Null(), frame.String("LP")},
		{frame.String("P4"), frame.Null(), frame.String("LP")},
	})
	appendRows(waterValue, [][]frame.Value{
		{frame.String("P1"), frame.Null(), frame.String("Norway")},
	})

	return map[string]*frame.Frame{
		PanelScreening:      screening,
		PanelClassification: classification,
		PanelWaterValue:     waterValue,
	}
}

func TestComputeExcludesDerivedColumns(t *testing.T) {
	files, err := Compute(testPanels(t), discardLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	for _, fc := range files {
		for _, col := range fc.Columns {
			if col == "Method_clean" || col == "Country_clean" {
				t.Fatalf("%s: derived column %q should be excluded", fc.Name, col)
			}
		}
	}
}

func TestComputeRoundsPercentages(t *testing.T) {
	files, err := Compute(testPanels(t), discardLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var class *FileCompleteness
	for _, fc := range files {
		if fc.Name == PanelClassification {
			class = fc
		}
	}
	if class == nil {
		t.Fatal("classification panel missing")
	}
	if got := class.Get("ID"); got != 100 {
		t.Fatalf("ID completeness = %d, want 100", got)
	}
	// 1 of 4 filled rounds to 25.
	if got := class.Get("Study region"); got != 25 {
		t.Fatalf("Study region completeness = %d, want 25", got)
	}
	if got := class.Get("Nope"); got != 0 {
		t.Fatalf("missing column should yield 0, got %d", got)
	}
}

func TestComputeMissingPanel(t *testing.T) {
	panels := testPanels(t)
	delete(panels, PanelWaterValue)
	if _, err := Compute(panels, discardLog()); err == nil {
		t.Fatal("expected error for missing panel")
	}
}

func TestCaptionQuotesStudyRegion(t *testing.T) {
	files, err := Compute(testPanels(t), discardLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	caption := Caption(files)
	if !strings.Contains(caption, "25% completeness") {
		t.Fatalf("caption should quote the study region share: %q", caption)
	}
	if !strings.Contains(caption, "derived variables") {
		t.Fatalf("caption should mention derived variables: %q", caption)
	}
}

func TestSummarizeCountsBands(t *testing.T) {
	log := report.NewWriter("test", io.Discard)
	files, err := Compute(testPanels(t), log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Summarize(files, log)

	joined := strings.Join(log.Lines(), "\n")
	if !strings.Contains(joined, "Average completeness") {
		t.Fatal("summary should report average completeness")
	}
}

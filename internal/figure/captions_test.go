package figure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCaptionsWrite(t *testing.T) {
	dir := t.TempDir()
	c := &Captions{}
	c.Add("fig_year_method_stacked", "Figure 1. Papers per year.")
	c.Add("fig_geographic_distribution", "Figure 2. Papers per region.")
	if c.Len() != 2 {
		t.Fatalf("got %d captions, want 2", c.Len())
	}

	path, err := c.Write(dir, "captions.txt", "Chart Captions",
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "captions.txt" {
		t.Fatalf("unexpected path %q", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read captions: %v", err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "Chart Captions\n") {
		t.Fatalf("file should start with the title:\n%s", s)
	}
	if !strings.Contains(s, "[fig_year_method_stacked]") {
		t.Fatal("caption blocks should be tagged with the figure name")
	}
	// Generation order is preserved.
	if strings.Index(s, "Figure 1.") > strings.Index(s, "Figure 2.") {
		t.Fatal("captions should appear in generation order")
	}
}

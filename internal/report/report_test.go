package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPrintfCapturesLines(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWriter("Test Report", buf)
	l.Printf("loaded %d rows", 42)
	l.Println("done")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "loaded 42 rows" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
	if !strings.Contains(buf.String(), "loaded 42 rows") {
		t.Fatal("output writer should receive the lines")
	}
}

func TestSectionRules(t *testing.T) {
	l := NewWriter("Test Report", &bytes.Buffer{})
	l.Section("MAJOR")
	l.Subsection("minor")

	joined := strings.Join(l.Lines(), "\n")
	if !strings.Contains(joined, strings.Repeat("═", 72)) {
		t.Fatal("section should print the 72-char rule")
	}
	if !strings.Contains(joined, strings.Repeat("─", 60)) {
		t.Fatal("subsection should print the 60-char rule")
	}
	if !strings.Contains(joined, "MAJOR") || !strings.Contains(joined, "minor") {
		t.Fatal("titles should be captured")
	}
}

func TestSaveWritesHeaderAndBody(t *testing.T) {
	l := NewWriter("Test Report", &bytes.Buffer{})
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	l.Println("body line")

	path := filepath.Join(t.TempDir(), "sub", "report.txt")
	if err := l.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "Test Report\n") {
		t.Fatalf("report should start with the title:\n%s", s)
	}
	if !strings.Contains(s, "Generated: 2026-01-02 03:04:05") {
		t.Fatal("report should carry the generation timestamp")
	}
	if !strings.Contains(s, "Run ID: "+l.RunID()) {
		t.Fatal("report should carry the run id")
	}
	if !strings.Contains(s, "body line") {
		t.Fatal("report should contain the captured lines")
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	a := NewWriter("a", &bytes.Buffer{})
	b := NewWriter("b", &bytes.Buffer{})
	if a.RunID() == b.RunID() {
		t.Fatal("run ids should differ between logs")
	}
}

package tables

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/energy-modelling-hub/water-value-database/internal/report"
	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// utf8BOM is prepended to every CSV so spreadsheet tools detect UTF-8,
// matching the utf-8-sig convention of the published dataset.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the table as a BOM-prefixed CSV file under dir and
// returns the file path. Output is byte-deterministic for fixed input.
func (t *Table) WriteCSV(dir string) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure tables dir: %w", err)
	}
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range t.Records {
		if err := w.Write(rec); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	path := filepath.Join(dir, t.FileName)
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// ExportCSVs writes every table as an individual CSV file.
func ExportCSVs(tabs []*Table, dir string, log *report.Log) error {
	log.Subsection("CSV Export")
	for _, t := range tabs {
		path, err := t.WriteCSV(dir)
		if err != nil {
			return fmt.Errorf("export %s: %w", t.Key, err)
		}
		log.Printf("  ✓ %-35s  (%.1f KB)", t.FileName, utils.FileSizeKB(path))
	}
	return nil
}

// WriteFormatted writes the combined formatted text file with one caption
// and fixed-width rendition per table, and returns the file path.
func WriteFormatted(tabs []*Table, dir string, now time.Time) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure tables dir: %w", err)
	}
	var b strings.Builder
	b.WriteString("Water Value Database — Summary Tables\n")
	b.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(strings.Repeat("=", 72) + "\n\n")
	for _, t := range tabs {
		b.WriteString(t.Caption + "\n\n")
		t.Render(&b)
		b.WriteString("\n" + strings.Repeat("─", 72) + "\n\n")
	}
	path := filepath.Join(dir, "all_tables_formatted.txt")
	if err := utils.SafeWriteFile(path, []byte(b.String())); err != nil {
		return "", err
	}
	return path, nil
}

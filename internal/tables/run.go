package tables

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
	"github.com/energy-modelling-hub/water-value-database/internal/store"
	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Run executes the summary tables generator end to end: load the store,
// build the six tables, export CSVs and the formatted text file, and save
// the run report.
func Run(ctx context.Context, cfg *config.Global) error {
	log := report.New("Water Value Database — Summary Tables Report")
	log.Section("Summary Statistics Tables")

	log.Subsection("Loading data")
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	dfClass, err := db.Frame(ctx, store.TableClassification)
	if err != nil {
		return err
	}
	dfWV, err := db.Frame(ctx, store.TableWaterValues)
	if err != nil {
		return err
	}
	log.Printf("  ✓ Loaded classification:  %d rows × %d cols", dfClass.Len(), dfClass.Width())
	log.Printf("  ✓ Loaded water_values:    %d rows × %d cols", dfWV.Len(), dfWV.Width())

	log.Section("Generating Summary Tables")

	t1, err := Classification(dfClass, log)
	if err != nil {
		return err
	}
	t2, err := Methods(dfClass, log)
	if err != nil {
		return err
	}
	t3, err := Regions(dfClass, log)
	if err != nil {
		return err
	}
	t4, err := Years(dfClass, log)
	if err != nil {
		return err
	}
	t5, err := Summary(dfWV, log)
	if err != nil {
		return err
	}
	t6, err := Purposes(dfWV, log)
	if err != nil {
		return err
	}
	tabs := []*Table{t1, t2, t3, t4, t5, t6}

	log.Section("Exporting Tables")
	if err := ExportCSVs(tabs, cfg.TablesDir, log); err != nil {
		return err
	}

	log.Subsection("Formatted Text Export")
	txtPath, err := WriteFormatted(tabs, cfg.TablesDir, time.Now())
	if err != nil {
		return fmt.Errorf("write formatted tables: %w", err)
	}
	log.Printf("  ✓ %s  (%.1f KB)", filepath.Base(txtPath), utils.FileSizeKB(txtPath))
	log.Printf("\n  All tables exported to: %s", cfg.TablesDir)

	log.Section("SUMMARY TABLES COMPLETE")
	log.Println("  6 summary tables generated and exported.")
	log.Printf("  CSV files:       %s/table_*.csv", cfg.TablesDir)
	log.Printf("  Formatted text:  %s", txtPath)

	return log.Save(filepath.Join(cfg.FiguresDir, "summary_tables_report.txt"))
}

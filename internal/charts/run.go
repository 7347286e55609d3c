package charts

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/energy-modelling-hub/water-value-database/internal/figure"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
	"github.com/energy-modelling-hub/water-value-database/internal/store"
	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Run executes the analytical chart generator: load the store, render the
// five figures as PNG and PDF, write the caption file, and save the run
// report.
func Run(ctx context.Context, cfg *config.Global) error {
	log := report.New("Water Value Database — Analytical Charts Report")
	log.Section("Analytical Charts")

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

	log.Section("Generating Analytical Charts")
	caps := &figure.Captions{}

	if err := yearMethodStacked(dfClass, cfg, log, caps); err != nil {
		return fmt.Errorf("chart 1: %w", err)
	}
	if err := geographicDistribution(dfClass, cfg, log, caps); err != nil {
		return fmt.Errorf("chart 2: %w", err)
	}
	if err := datapointsByYear(dfWV, cfg, log, caps); err != nil {
		return fmt.Errorf("chart 3: %w", err)
	}
	if err := continentPurposeHeatmap(dfWV, cfg, log, caps); err != nil {
		return fmt.Errorf("chart 4: %w", err)
	}
	if err := categoryMethodHeatmap(dfClass, cfg, log, caps); err != nil {
		return fmt.Errorf("chart 5: %w", err)
	}

	log.Section("Captions")
	capPath, err := caps.Write(cfg.FiguresDir, "fig_analytical_charts_captions.txt",
		"Water Value Database — Analytical Chart Captions", time.Now())
	if err != nil {
		return fmt.Errorf("write captions: %w", err)
	}
	log.Printf("  ✓ %s  (%.1f KB)", filepath.Base(capPath), utils.FileSizeKB(capPath))
	log.Printf("  %d captions saved.", caps.Len())

	log.Section("ANALYTICAL CHARTS COMPLETE")
	log.Println("  5 analytical charts generated.")
	log.Printf("  Figures: %s/fig_*.png and fig_*.pdf", cfg.FiguresDir)
	log.Printf("  Captions: %s", capPath)

	return log.Save(filepath.Join(cfg.FiguresDir, "analytical_charts_report.txt"))
}

// save renders a figure to PNG and PDF under the configured figures
// directory and logs both files.
func save(p *plot.Plot, w, h vg.Length, cfg *config.Global, log *report.Log, name string) error {
	pngPath, pdfPath, err := figure.Save(p, w, h, cfg.FigureDPI, cfg.FiguresDir, name)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	log.Printf("  ✓ %-45s  (%.1f KB)", filepath.Base(pngPath), utils.FileSizeKB(pngPath))
	log.Printf("  ✓ %-45s  (%.1f KB)", filepath.Base(pdfPath), utils.FileSizeKB(pdfPath))
	return nil
}

package completeness

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
	"github.com/energy-modelling-hub/water-value-database/internal/store"
	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Run executes the completeness analyzer: load all three tables, compute
// per-column completeness, render the heatmap, and write caption, summary,
// and run report.
func Run(ctx context.Context, cfg *config.Global) error {
	log := report.New("Water Value Database — Completeness Heatmap Report")
	log.Section("Data Completeness Heatmap")

	log.Subsection("Loading data")
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tablesByPanel := map[string]string{
		PanelScreening:      store.TableScreening,
		PanelClassification: store.TableClassification,
		PanelWaterValue:     store.TableWaterValues,
	}
	panels := map[string]*frame.Frame{}
	for _, name := range []string{PanelScreening, PanelClassification, PanelWaterValue} {
		df, err := db.Frame(ctx, tablesByPanel[name])
		if err != nil {
			return err
		}
		panels[name] = df
		log.Printf("  ✓ Loaded %-20s  (%d rows × %d cols)", name, df.Len(), df.Width())
	}

	files, err := Compute(panels, log)
	if err != nil {
		return err
	}

	log.Section("Creating Heatmap Figure")
	png, pdf, err := renderHeatmap(files, cfg)
	if err != nil {
		return err
	}
	log.Printf("  ✓ %s  (%.1f KB)", filepath.Base(png), utils.FileSizeKB(png))
	log.Printf("  ✓ %s  (%.1f KB)", filepath.Base(pdf), utils.FileSizeKB(pdf))

	log.Subsection("Generating Caption")
	caption := Caption(files)
	capPath := filepath.Join(cfg.FiguresDir, figName+"_caption.txt")
	if err := utils.SafeWriteFile(capPath, []byte(caption)); err != nil {
		return fmt.Errorf("write caption: %w", err)
	}
	log.Printf("  ✓ Caption saved: %s", filepath.Base(capPath))
	log.Println("\n  Caption text:")
	log.Println("  " + caption)

	Summarize(files, log)

	log.Section("COMPLETENESS HEATMAP COMPLETE")
	log.Printf("  Figure: %s", png)
	log.Printf("  Figure: %s", pdf)
	log.Printf("  Caption: %s", capPath)

	return log.Save(filepath.Join(cfg.FiguresDir, "completeness_heatmap_report.txt"))
}

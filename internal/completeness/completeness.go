// Package completeness computes per-column data completeness for the
// three dataset tables and renders it as a tri-panel annotated heatmap.
package completeness

import (
	"fmt"
	"math"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
)

// Derived columns are excluded from the heatmap: they are complete by
// construction and would clutter the figure. Only original data columns
// are shown.
var derivedClassificationCols = map[string]bool{
	"Year_numeric": true, "Decade": true, "Has_water_value": true,
	"Method_clean": true, "Method_category": true, "Method_detail": true,
	"Study_region_clean": true, "Study_region_continent": true,
}

var derivedWaterValueCols = map[string]bool{
	"Country_clean": true, "Purpose_clean": true, "Continent": true,
	"Method_clean": true, "Method_category": true, "Method_detail": true,
	"units_clean": true,
}

// Panel display names, one per dataset file.
const (
	PanelScreening      = "01_Screening"
	PanelClassification = "02_Classification"
	PanelWaterValue     = "03_WaterValue"
)

// FileCompleteness is the per-column completeness of one dataset file.
type FileCompleteness struct {
	Name    string
	Columns []string
	Pct     []int // integer-rounded % non-null, aligned with Columns
}

// Get returns the completeness of one column, or 0 if absent.
func (fc *FileCompleteness) Get(col string) int {
	for i, c := range fc.Columns {
		if c == col {
			return fc.Pct[i]
		}
	}
	return 0
}

// Compute calculates column-level completeness for each frame, excluding
// the derived columns of its panel.
func Compute(panels map[string]*frame.Frame, log *report.Log) ([]*FileCompleteness, error) {
	log.Subsection("Calculating Completeness")

	exclude := map[string]map[string]bool{
		PanelScreening:      {},
		PanelClassification: derivedClassificationCols,
		PanelWaterValue:     derivedWaterValueCols,
	}

	var out []*FileCompleteness
	for _, name := range []string{PanelScreening, PanelClassification, PanelWaterValue} {
		df, ok := panels[name]
		if !ok {
			return nil, fmt.Errorf("missing panel frame %s", name)
		}
		fc := &FileCompleteness{Name: name}
		for _, col := range df.Columns() {
			if exclude[name][col] {
				continue
			}
			pct, err := df.Completeness(col)
			if err != nil {
				return nil, err
			}
			fc.Columns = append(fc.Columns, col)
			fc.Pct = append(fc.Pct, int(math.Round(pct)))
		}
		out = append(out, fc)

		log.Printf("\n  %s (%d original columns):", name, len(fc.Columns))
		for i, col := range fc.Columns {
			icon := "✗"
			switch {
			case fc.Pct[i] == 100:
				icon = "✓"
			case fc.Pct[i] >= 50:
				icon = "⚠"
			}
			log.Printf("    %s %-40s  %3d%%", icon, col, fc.Pct[i])
		}
	}
	return out, nil
}

// Summarize logs the per-file completeness summary statistics.
func Summarize(files []*FileCompleteness, log *report.Log) {
	log.Subsection("Completeness Summary")

	for _, fc := range files {
		nCols := len(fc.Columns)
		if nCols == 0 {
			continue
		}
		nComplete, nPartial, nEmpty, sum := 0, 0, 0, 0
		for _, p := range fc.Pct {
			sum += p
			switch {
			case p == 100:
				nComplete++
			case p == 0:
				nEmpty++
			default:
				nPartial++
			}
		}
		log.Printf("  %s:", fc.Name)
		log.Printf("    Columns: %d", nCols)
		log.Printf("    100%% complete:  %3d (%.0f%%)", nComplete, float64(nComplete)/float64(nCols)*100)
		log.Printf("    Partial (1-99%%): %2d (%.0f%%)", nPartial, float64(nPartial)/float64(nCols)*100)
		log.Printf("    Empty (0%%):     %3d (%.0f%%)", nEmpty, float64(nEmpty)/float64(nCols)*100)
		log.Printf("    Average completeness: %.1f%%", float64(sum)/float64(nCols))
		log.Blank()
	}
}

// Caption builds the figure caption, quoting the study region
// completeness observed in the classification panel.
func Caption(files []*FileCompleteness) string {
	studyRegion := 0
	for _, fc := range files {
		if fc.Name == PanelClassification {
			studyRegion = fc.Get("Study region")
		}
	}
	return fmt.Sprintf(
		"Figure X. Data completeness heatmap showing the percentage of "+
			"non-null values for each original data column across the three "+
			"dataset files. Green indicates complete or near-complete data "+
			"(≥90%%), yellow indicates partial completeness (50–89%%), and red "+
			"indicates significant gaps (<50%%). Only original data columns are "+
			"shown; derived variables (e.g., Country_clean, Method_clean, "+
			"Continent) created during standardization are excluded as they "+
			"are 100%% complete by construction. The 'Study region' column in "+
			"02_Classification shows %d%% completeness, reflecting that many "+
			"papers do not explicitly specify a geographic study area. Columns "+
			"such as 'Notes' and 'Sub_state' have intentionally low "+
			"completeness as they are optional fields. The WV_min, WV_median, "+
			"and WV_max columns in 03_WaterValue show 0%% completeness as the "+
			"unit conversion pipeline is pending completion by a collaborator.",
		studyRegion)
}

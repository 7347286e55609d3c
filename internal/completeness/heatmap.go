package completeness

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/energy-modelling-hub/water-value-database/internal/figure"
)

const figName = "fig_completeness_heatmap"

// renderHeatmap draws one single-row annotated heatmap per dataset file,
// stacked vertically with a shared color scale strip at the bottom, and
// saves PNG + PDF.
func renderHeatmap(files []*FileCompleteness, cfg *config.Global) (string, string, error) {
	var plots []*plot.Plot
	maxCols := 0
	for _, fc := range files {
		if len(fc.Columns) > maxCols {
			maxCols = len(fc.Columns)
		}
	}

	for i, fc := range files {
		p := plot.New()
		figure.Style(p)
		if i == 0 {
			p.Title.Text = "Data Completeness Across Dataset Files (% non-null per original column)"
		}

		z := [][]float64{make([]float64, len(fc.Pct))}
		for j, v := range fc.Pct {
			z[0][j] = float64(v)
		}
		p.Add(&figure.Grid{
			Z:    z,
			Fill: figure.CompletenessScale.At,
			Label: func(v float64) string {
				return strconv.Itoa(int(v))
			},
			TextColor: func(v float64) color.Color {
				if v < 40 {
					return color.White
				}
				return color.Black
			},
			LabelSize: vg.Points(9),
			Divider:   color.White,
		})
		p.NominalX(fc.Columns...)
		p.NominalY(fc.Name)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
		p.X.Tick.Label.Font.Size = vg.Points(8)
		plots = append(plots, p)
	}

	plots = append(plots, scaleStrip())

	width := vg.Length(math.Max(12, float64(maxCols)*0.55)) * vg.Inch
	height := 9 * vg.Inch
	png, pdf, err := figure.SavePanels(plots, width, height, cfg.FigureDPI, cfg.FiguresDir, figName)
	if err != nil {
		return "", "", fmt.Errorf("render completeness heatmap: %w", err)
	}
	return png, pdf, nil
}

// scaleStrip renders the shared color scale as a labeled band of the
// boundary colors.
func scaleStrip() *plot.Plot {
	scale := figure.CompletenessScale
	p := plot.New()
	figure.Style(p)
	p.Title.Text = "Completeness (%)"

	z := [][]float64{make([]float64, len(scale.Colors))}
	for i := range scale.Colors {
		// Sample the middle of each band.
		z[0][i] = (scale.Bounds[i] + scale.Bounds[i+1]) / 2
	}
	p.Add(&figure.Grid{
		Z:       z,
		Fill:    scale.At,
		Divider: color.White,
	})
	p.NominalX(scale.Bands()...)
	p.HideY()
	return p
}

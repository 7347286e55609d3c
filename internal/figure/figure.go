// Package figure holds the rendering helpers shared by the chart and
// completeness generators: publication styling, PNG/PDF export at a fixed
// DPI, color scales, an annotated cell-grid plotter, and the caption
// collector.
package figure

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Style applies the shared publication styling to a plot.
func Style(p *plot.Plot) {
	p.BackgroundColor = color.White
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.TextStyle.Font.Size = vg.Points(10)
	p.Y.Label.TextStyle.Font.Size = vg.Points(10)
	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	p.Legend.TextStyle.Font.Size = vg.Points(8)
}

// Save renders the plot as <name>.png at the given DPI and <name>.pdf
// under dir, returning both paths.
func Save(p *plot.Plot, w, h vg.Length, dpi int, dir, name string) (string, string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", "", fmt.Errorf("ensure figures dir: %w", err)
	}
	pngPath := filepath.Join(dir, name+".png")
	pdfPath := filepath.Join(dir, name+".pdf")

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(img))
	if err := writePNG(img, pngPath); err != nil {
		return "", "", err
	}

	pdf := vgpdf.New(w, h)
	p.Draw(draw.New(pdf))
	if err := writePDF(pdf, pdfPath); err != nil {
		return "", "", err
	}
	return pngPath, pdfPath, nil
}

// SavePanels renders a vertical stack of plots into a single figure,
// exporting PNG and PDF like Save.
func SavePanels(plots []*plot.Plot, w, h vg.Length, dpi int, dir, name string) (string, string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", "", fmt.Errorf("ensure figures dir: %w", err)
	}
	pngPath := filepath.Join(dir, name+".png")
	pdfPath := filepath.Join(dir, name+".pdf")

	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows: len(plots), Cols: 1,
		PadX: vg.Points(4), PadY: vg.Points(10),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	drawPanels(rows, tiles, draw.New(img))
	if err := writePNG(img, pngPath); err != nil {
		return "", "", err
	}

	pdf := vgpdf.New(w, h)
	drawPanels(rows, tiles, draw.New(pdf))
	if err := writePDF(pdf, pdfPath); err != nil {
		return "", "", err
	}
	return pngPath, pdfPath, nil
}

func drawPanels(rows [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(rows, tiles, dc)
	for i, row := range rows {
		if row[0] != nil {
			row[0].Draw(canvases[i][0])
		}
	}
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writePDF(pdf *vgpdf.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if _, err := pdf.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grid is an annotated heatmap-style plotter: a matrix of filled cells
// with an optional value label centered in each cell. Row 0 is drawn at
// the top, matching the row order of the source cross-tabulation. Cells
// sit at integer plot coordinates, so NominalX/NominalY tick labels line
// up with them.
type Grid struct {
	Z [][]float64 // Z[row][col]

	// Fill maps a cell value to its background color.
	Fill func(v float64) color.Color
	// Label formats the annotation for a cell; "" draws none.
	Label func(v float64) string
	// TextColor picks the annotation color; nil uses the tick label color.
	TextColor func(v float64) color.Color

	LabelSize vg.Length
	Divider   color.Color
}

func (g *Grid) dims() (rows, cols int) {
	rows = len(g.Z)
	if rows > 0 {
		cols = len(g.Z[0])
	}
	return rows, cols
}

// DataRange implements plot.DataRanger so the axes cover all cells.
func (g *Grid) DataRange() (xmin, xmax, ymin, ymax float64) {
	nr, nc := g.dims()
	return -0.5, float64(nc) - 0.5, -0.5, float64(nr) - 0.5
}

// Plot implements plot.Plotter.
func (g *Grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	nr, nc := g.dims()

	sty := plt.X.Tick.Label
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter
	if g.LabelSize > 0 {
		sty.Font.Size = g.LabelSize
	}

	for i, rowVals := range g.Z {
		y := float64(nr - 1 - i)
		y0, y1 := trY(y-0.5), trY(y+0.5)
		for j, v := range rowVals {
			x0, x1 := trX(float64(j)-0.5), trX(float64(j)+0.5)
			var pa vg.Path
			pa.Move(vg.Point{X: x0, Y: y0})
			pa.Line(vg.Point{X: x1, Y: y0})
			pa.Line(vg.Point{X: x1, Y: y1})
			pa.Line(vg.Point{X: x0, Y: y1})
			pa.Close()
			c.SetColor(g.Fill(v))
			c.Fill(pa)

			if g.Label == nil {
				continue
			}
			lbl := g.Label(v)
			if lbl == "" {
				continue
			}
			s := sty
			if g.TextColor != nil {
				s.Color = g.TextColor(v)
			}
			c.FillText(s, vg.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}, lbl)
		}
	}

	if g.Divider == nil {
		return
	}
	ls := draw.LineStyle{Color: g.Divider, Width: vg.Points(0.5)}
	for j := 0; j <= nc; j++ {
		x := trX(float64(j) - 0.5)
		c.StrokeLine2(ls, x, trY(-0.5), x, trY(float64(nr)-0.5))
	}
	for i := 0; i <= nr; i++ {
		y := trY(float64(i) - 0.5)
		c.StrokeLine2(ls, trX(-0.5), y, trX(float64(nc)-0.5), y)
	}
}

package charts

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/energy-modelling-hub/water-value-database/internal/figure"
	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
)

// geographicTopN is how many individually named regions Chart 2 shows.
const geographicTopN = 15

// yearMethodStacked builds Chart 1: papers per year stacked by method,
// with 3-year and 5-year centered moving averages overlaid.
func yearMethodStacked(df *frame.Frame, cfg *config.Global, log *report.Log, caps *figure.Captions) error {
	log.Subsection("Chart 1: Year × Method Stacked Bar + Trendlines")

	ct, err := df.Crosstab("Year_numeric", "Method_clean")
	if err != nil {
		return err
	}
	start, err := displayStartYear(ct)
	if err != nil {
		return err
	}
	order := withExtras(MethodOrder, ct.Cols())
	s, err := buildYearStack(ct, order, start)
	if err != nil {
		return err
	}

	ma3 := frame.RollingMean(s.Totals, 3, 2)
	ma5 := frame.RollingMean(s.Totals, 5, 3)

	lastYear := s.Years[len(s.Years)-1]
	log.Printf("  Year range displayed: %d–%d", s.Years[0], lastYear)
	log.Printf("  Total papers: %.0f", sum(s.Totals))
	log.Println("  Method breakdown:")
	for _, m := range order {
		log.Printf("    %-20s  %4.0f", m, sum(s.Values[m]))
	}
	peakIdx, peakVal := argmax(ma5)
	log.Printf("  5-year MA peak:  %d (%.1f papers/yr)", s.Years[peakIdx], peakVal)

	p := plot.New()
	figure.Style(p)
	p.X.Label.Text = "Publication Year"
	p.Y.Label.Text = "Number of Papers"

	var prev *plotter.BarChart
	for _, m := range order {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values[m]), vg.Points(9))
		if err != nil {
			return fmt.Errorf("chart 1 bars %s: %w", m, err)
		}
		bars.Color = colorFor(MethodColors, m)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(m, bars)
		prev = bars
	}

	l3, err := trendlineFor(ma3, nil)
	if err != nil {
		return err
	}
	p.Add(l3)
	p.Legend.Add("3-year moving avg.", l3)
	l5, err := trendlineFor(ma5, []vg.Length{vg.Points(5), vg.Points(3)})
	if err != nil {
		return err
	}
	p.Add(l5)
	p.Legend.Add("5-year moving avg.", l5)

	p.NominalX(yearTickLabels(s.Years, 5)...)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := save(p, 12*vg.Inch, 5*vg.Inch, cfg, log, "fig_year_method_stacked"); err != nil {
		return err
	}

	caps.Add("fig_year_method_stacked", fmt.Sprintf(
		"Figure X. Distribution of the %d classified papers by publication "+
			"year (%d–%d), stacked by optimization/analysis method "+
			"(Method_clean). Solid and dashed black lines show 3-year and "+
			"5-year centered moving averages of total annual publications, "+
			"respectively. The 5-year moving average peaks at %.1f papers per "+
			"year around %d. Method abbreviations: LP = Linear Programming, "+
			"MILP = Mixed-Integer Linear Programming, SDP = Stochastic Dynamic "+
			"Programming, SDDP = Stochastic Dual Dynamic Programming, "+
			"Econ-Engi = Economic-Engineering approach.",
		df.Len(), s.Years[0], lastYear, peakVal, s.Years[peakIdx]))
	return nil
}

// geographicDistribution builds Chart 2: horizontal bars of papers per
// study region, top regions plus an Other bucket, sentinels at the bottom.
func geographicDistribution(df *frame.Frame, cfg *config.Global, log *report.Log, caps *figure.Captions) error {
	log.Subsection("Chart 2: Geographic Distribution")

	regions, err := df.Strings("Study_region_clean")
	if err != nil {
		return err
	}
	nTotal := df.Len()
	bars := buildGeographic(frame.ValueCounts(regions), geographicTopN)

	notSpec := 0
	for i, l := range bars.Labels {
		if l == "Not specified" {
			notSpec = bars.Counts[i]
		}
	}
	log.Printf("  Showing top %d regions + Other + special categories", geographicTopN)
	log.Printf("  'Not specified': %d (%.1f%%)", notSpec, float64(notSpec)/float64(nTotal)*100)

	p := plot.New()
	figure.Style(p)
	p.X.Label.Text = "Number of Papers"

	regular := make(plotter.Values, len(bars.Labels))
	special := make(plotter.Values, len(bars.Labels))
	maxCount := 0
	for i, n := range bars.Counts {
		if bars.Special[i] {
			special[i] = float64(n)
		} else {
			regular[i] = float64(n)
		}
		if n > maxCount {
			maxCount = n
		}
	}
	for _, pair := range []struct {
		vals plotter.Values
		col  color.RGBA
	}{{regular, steelBlue}, {special, grayBar}} {
		bc, err := plotter.NewBarChart(pair.vals, vg.Points(8))
		if err != nil {
			return fmt.Errorf("chart 2 bars: %w", err)
		}
		bc.Horizontal = true
		bc.Color = pair.col
		bc.LineStyle.Width = 0
		p.Add(bc)
	}

	// Count and percentage labels at the bar ends.
	lbls := plotter.XYLabels{}
	for i, n := range bars.Counts {
		lbls.XYs = append(lbls.XYs, plotter.XY{X: float64(n) + float64(maxCount)*0.01, Y: float64(i)})
		lbls.Labels = append(lbls.Labels, fmt.Sprintf("%d (%.1f%%)", n, float64(n)/float64(nTotal)*100))
	}
	labels, err := plotter.NewLabels(lbls)
	if err != nil {
		return fmt.Errorf("chart 2 labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(7)
		labels.TextStyle[i].XAlign = text.XLeft
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	p.NominalY(bars.Labels...)
	p.X.Min = 0
	p.X.Max = float64(maxCount) * 1.3

	height := vg.Length(math.Max(5, float64(len(bars.Labels))*0.3)) * vg.Inch
	if err := save(p, 12*vg.Inch, height, cfg, log, "fig_geographic_distribution"); err != nil {
		return err
	}

	caps.Add("fig_geographic_distribution", fmt.Sprintf(
		"Figure X. Geographic distribution of study regions across the %d "+
			"classified papers (top %d countries/regions shown). Approximately "+
			"%.1f%% of papers did not specify a study region and are "+
			"categorized as 'Not specified'. Country names follow ISO 3166-1 "+
			"conventions. Gray bars indicate non-geographic categories.",
		nTotal, geographicTopN, float64(notSpec)/float64(nTotal)*100))
	return nil
}

// datapointsByYear builds Chart 3: water value data points per year
// stacked by purpose, purposes ordered by total count.
func datapointsByYear(dfWV *frame.Frame, cfg *config.Global, log *report.Log, caps *figure.Captions) error {
	log.Subsection("Chart 3: WV Data Points by Year × Purpose")

	yearCol := "Paper_year"
	if !dfWV.HasColumn(yearCol) {
		yearCol = "Year"
	}
	ct, err := dfWV.Crosstab(yearCol, "Purpose_clean")
	if err != nil {
		return err
	}
	order := ct.ColsByTotal()
	s, err := buildYearStack(ct, order, 0)
	if err != nil {
		return err
	}

	ids, err := dfWV.Strings("ID")
	if err != nil {
		return err
	}
	nPoints := ct.Total()
	nPapers := frame.NUnique(ids)
	lastYear := s.Years[len(s.Years)-1]

	log.Printf("  Year range: %d–%d", s.Years[0], lastYear)
	log.Printf("  Total data points: %d", nPoints)
	log.Printf("  Unique papers: %d", nPapers)
	log.Println("  Purpose breakdown:")
	for _, pu := range order {
		n := sum(s.Values[pu])
		log.Printf("    %-20s  %4.0f  (%5.1f%%)", pu, n, n/float64(nPoints)*100)
	}

	p := plot.New()
	figure.Style(p)
	p.X.Label.Text = "Publication Year"
	p.Y.Label.Text = "Number of Water Value Data Points"

	var prev *plotter.BarChart
	for _, pu := range order {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values[pu]), vg.Points(9))
		if err != nil {
			return fmt.Errorf("chart 3 bars %s: %w", pu, err)
		}
		bars.Color = colorFor(PurposeColors, pu)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(pu, bars)
		prev = bars
	}
	p.NominalX(yearTickLabels(s.Years, 2)...)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := save(p, 12*vg.Inch, 5*vg.Inch, cfg, log, "fig_wv_datapoints_by_year"); err != nil {
		return err
	}

	caps.Add("fig_wv_datapoints_by_year", fmt.Sprintf(
		"Figure X. Distribution of %d water value data points by publication "+
			"year (%d–%d), stacked by water use purpose. This figure shows the "+
			"number of individual water value observations extracted from each "+
			"paper, revealing the data extraction density across time. A single "+
			"paper may contribute multiple data points (average %.1f per paper). "+
			"The %d data points were extracted from %d papers reporting "+
			"numerical water values.",
		nPoints, s.Years[0], lastYear, float64(nPoints)/float64(nPapers), nPoints, nPapers))
	return nil
}

// continentPurposeHeatmap builds Chart 4: annotated continent × purpose
// heatmap, rows and columns ordered by descending totals.
func continentPurposeHeatmap(dfWV *frame.Frame, cfg *config.Global, log *report.Log, caps *figure.Captions) error {
	log.Subsection("Chart 4: Continent × Purpose Heatmap")

	ct, err := dfWV.Crosstab("Continent", "Purpose_clean")
	if err != nil {
		return err
	}
	rows := ct.RowsByTotal()
	cols := ct.ColsByTotal()
	log.Printf("  Cross-tabulation shape: %d×%d", len(rows), len(cols))
	log.Printf("  Continents: %v", rows)
	log.Printf("  Purposes: %v", cols)

	p, err := heatmapPlot(ct, rows, cols, figure.YlOrRd)
	if err != nil {
		return err
	}
	p.X.Label.Text = "Water Use Purpose"
	p.Y.Label.Text = "Continent"

	if err := save(p, 12*vg.Inch, 5*vg.Inch, cfg, log, "fig_continent_purpose_heatmap"); err != nil {
		return err
	}

	caps.Add("fig_continent_purpose_heatmap", fmt.Sprintf(
		"Figure X. Cross-tabulation of water value data points by continent "+
			"and water use purpose. Cell values indicate the number of data "+
			"points for each combination; darker colors indicate higher "+
			"concentrations. The %d data points span %d continents and %d "+
			"purpose categories. Continental assignments follow UN M49 "+
			"macro-geographical regions. Empty or low-value cells highlight "+
			"geographic and thematic coverage gaps in the water value "+
			"literature.",
		ct.Total(), len(rows), len(cols)))
	return nil
}

// categoryMethodHeatmap builds Chart 5: annotated classification category
// × method heatmap in the fixed manuscript order.
func categoryMethodHeatmap(df *frame.Frame, cfg *config.Global, log *report.Log, caps *figure.Captions) error {
	log.Subsection("Chart 5: Classification Category × Method Heatmap")

	ct, err := df.Crosstab("Classification", "Method_clean")
	if err != nil {
		return err
	}
	rows := orderedCategories(CategoryOrder, ct.Rows())
	cols := orderedCategories(MethodOrder, ct.Cols())
	log.Printf("  Cross-tabulation shape: %d×%d", len(rows), len(cols))
	log.Printf("  Row categories: %v", rows)
	log.Printf("  Column methods: %v", cols)

	p, err := heatmapPlot(ct, rows, cols, figure.Blues)
	if err != nil {
		return err
	}
	p.X.Label.Text = "Method"
	p.Y.Label.Text = "Classification Category"

	if err := save(p, 12*vg.Inch, 5*vg.Inch, cfg, log, "fig_category_method_heatmap"); err != nil {
		return err
	}

	caps.Add("fig_category_method_heatmap", fmt.Sprintf(
		"Figure X. Cross-tabulation of classification categories and "+
			"optimization/analysis methods across the %d classified papers. "+
			"Cell values indicate the number of papers using each method "+
			"within each category; darker colors indicate higher "+
			"concentrations. LP = Linear Programming, MILP = Mixed-Integer "+
			"Linear Programming, SDP = Stochastic Dynamic Programming, SDDP = "+
			"Stochastic Dual Dynamic Programming, Econ-Engi = "+
			"Economic-Engineering approach.",
		df.Len()))
	return nil
}

// heatmapPlot renders an annotated count heatmap over the given row and
// column order.
func heatmapPlot(ct *frame.Crosstab, rows, cols []string, ramp figure.Ramp) (*plot.Plot, error) {
	z := make([][]float64, len(rows))
	maxV := 0.0
	for i, r := range rows {
		z[i] = make([]float64, len(cols))
		for j, c := range cols {
			v := float64(ct.Count(r, c))
			z[i][j] = v
			if v > maxV {
				maxV = v
			}
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	p := plot.New()
	figure.Style(p)
	grid := &figure.Grid{
		Z:    z,
		Fill: func(v float64) color.Color { return ramp.At(v / maxV) },
		Label: func(v float64) string {
			return strconv.Itoa(int(v))
		},
		TextColor: func(v float64) color.Color {
			if v > 0.55*maxV {
				return color.White
			}
			return color.Black
		},
		LabelSize: vg.Points(10),
		Divider:   color.White,
	}
	p.Add(grid)
	p.NominalX(cols...)
	p.NominalY(reverse(rows)...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}

// trendlineFor converts a moving average series into a line plot, skipping
// undefined (NaN) positions.
func trendlineFor(ma []float64, dashes []vg.Length) (*plotter.Line, error) {
	var xys plotter.XYs
	for i, v := range ma {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("trendline: %w", err)
	}
	l.LineStyle.Color = trendLine
	l.LineStyle.Width = vg.Points(1.4)
	l.LineStyle.Dashes = dashes
	return l, nil
}

// yearTickLabels labels every step-th year and blanks the rest so the
// nominal axis stays readable.
func yearTickLabels(years []int, step int) []string {
	out := make([]string, len(years))
	for i, y := range years {
		if y%step == 0 || i == 0 || i == len(years)-1 {
			out[i] = strconv.Itoa(y)
		}
	}
	return out
}

func reverse(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// argmax returns the index and value of the series maximum, ignoring NaN.
func argmax(xs []float64) (int, float64) {
	idx, best := 0, math.Inf(-1)
	for i, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x > best {
			idx, best = i, x
		}
	}
	return idx, best
}

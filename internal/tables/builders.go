package tables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
	"github.com/energy-modelling-hub/water-value-database/internal/report"
)

// Classification builds Table 1: papers by classification category,
// sorted by category code, with a Total row.
func Classification(df *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 1: Papers by Classification Category")

	cats, err := df.Strings("Classification")
	if err != nil {
		return nil, err
	}
	nTotal := df.Len()

	counts := frame.ValueCounts(cats)
	sort.Slice(counts, func(i, j int) bool { return counts[i].Value < counts[j].Value })

	t := &Table{
		Key:      "table_1",
		FileName: "table_1_classification.csv",
		Columns:  []string{"Category", "Category_Name", "Count", "Percentage"},
	}
	for _, c := range counts {
		name, ok := CategoryNames[c.Value]
		if !ok {
			name = "[Category name — see companion article]"
		}
		t.Records = append(t.Records, []string{
			c.Value, name, itoa(c.Count), fmtPct(pct(c.Count, nTotal)),
		})
	}
	t.Records = append(t.Records, []string{"Total", "", itoa(nTotal), "100.0"})
	t.Caption = fmt.Sprintf(
		"Table 1. Distribution of %d classified papers across nine "+
			"classification categories. Category definitions are provided "+
			"in the companion article [REF-companion].", nTotal)

	logTable(log, t)
	return t, nil
}

// Methods builds Table 2: papers by manuscript-level method category,
// sorted by descending count, with a Total row.
func Methods(df *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 2: Papers by Method Type")

	methods, err := df.Strings("Method_clean")
	if err != nil {
		return nil, err
	}
	nTotal := df.Len()

	t := &Table{
		Key:      "table_2",
		FileName: "table_2_methods.csv",
		Columns:  []string{"Method", "Count", "Percentage"},
	}
	for _, c := range frame.ValueCounts(methods) {
		t.Records = append(t.Records, []string{
			c.Value, itoa(c.Count), fmtPct(pct(c.Count, nTotal)),
		})
	}
	t.Records = append(t.Records, []string{"Total", itoa(nTotal), "100.0"})
	t.Caption = fmt.Sprintf(
		"Table 2. Distribution of optimization and analysis methods used "+
			"across the %d classified papers, grouped by manuscript-level "+
			"method categories (Method_clean).", nTotal)

	logTable(log, t)
	return t, nil
}

// Regions builds Table 3: papers by study region. Regions below the
// bucketing threshold are merged into an Other row, except the sentinel
// categories which are always listed. Rows are sorted by descending count
// with the Total row appended last.
func Regions(df *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 3: Papers by Study Region / Country")

	regions, err := df.Strings("Study_region_clean")
	if err != nil {
		return nil, err
	}
	nTotal := df.Len()

	type row struct {
		label string
		count int
	}
	var rows []row
	otherCount, otherEntries := 0, 0
	notSpecified := 0
	for _, c := range frame.ValueCounts(regions) {
		switch {
		case c.Value == SentinelNotSpecified || c.Value == SentinelSynthetic:
			rows = append(rows, row{c.Value, c.Count})
			if c.Value == SentinelNotSpecified {
				notSpecified = c.Count
			}
		case c.Count >= regionBucketThreshold:
			rows = append(rows, row{c.Value, c.Count})
		default:
			otherCount += c.Count
			otherEntries++
		}
	}
	if otherCount > 0 {
		rows = append(rows, row{
			fmt.Sprintf("Other (%d countries/regions)", otherEntries), otherCount,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].label < rows[j].label
	})

	t := &Table{
		Key:      "table_3",
		FileName: "table_3_regions.csv",
		Columns:  []string{"Country_or_Region", "Count", "Percentage"},
	}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			r.label, itoa(r.count), fmtPct(pct(r.count, nTotal)),
		})
	}
	t.Records = append(t.Records, []string{"Total", itoa(nTotal), "100.0"})

	notSpecPct := pct(notSpecified, nTotal)
	t.Caption = fmt.Sprintf(
		"Table 3. Geographic distribution of study regions across the %d "+
			"classified papers. Countries or regions with fewer than %d papers "+
			"are grouped under 'Other'. Approximately %s%% of papers did not "+
			"specify a study region.", nTotal, regionBucketThreshold, fmtPct(notSpecPct))

	logTable(log, t)
	log.Printf("\n  Note: %s%% of papers did not specify a study region.", fmtPct(notSpecPct))
	return t, nil
}

// Years builds Table 4: papers by publication year range over the fixed
// bucket order, zero-filling empty buckets, with a Total row. Year
// statistics go to the report only.
func Years(df *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 4: Papers by Publication Year Range")

	decades, err := df.Strings("Decade")
	if err != nil {
		return nil, err
	}
	nTotal := df.Len()

	counts := map[string]int{}
	for _, c := range frame.ValueCounts(decades) {
		counts[c.Value] = c.Count
	}

	t := &Table{
		Key:      "table_4",
		FileName: "table_4_years.csv",
		Columns:  []string{"Year_Range", "Count", "Percentage"},
	}
	for _, d := range YearRangeOrder {
		n := counts[d]
		t.Records = append(t.Records, []string{d, itoa(n), fmtPct(pct(n, nTotal))})
	}
	t.Records = append(t.Records, []string{"Total", itoa(nTotal), "100.0"})
	t.Caption = fmt.Sprintf(
		"Table 4. Temporal distribution of the %d classified papers by "+
			"publication year range.", nTotal)

	logTable(log, t)

	years, err := df.Floats("Year_numeric")
	if err != nil {
		return nil, err
	}
	if len(years) > 0 {
		log.Printf("\n  Earliest year: %.0f", frame.Min(years))
		log.Printf("  Latest year:   %.0f", frame.Max(years))
		log.Printf("  Median year:   %.0f", frame.Median(years))
	}
	return t, nil
}

// Summary builds Table 5: key statistics of the water value dataset as
// Statistic/Value pairs.
func Summary(dfWV *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 5: Water Value Summary Statistics")

	ids, err := dfWV.Strings("ID")
	if err != nil {
		return nil, err
	}
	countries, err := dfWV.Strings("Country_clean")
	if err != nil {
		return nil, err
	}
	continents, err := dfWV.Strings("Continent")
	if err != nil {
		return nil, err
	}
	methods, err := dfWV.Strings("Method_clean")
	if err != nil {
		return nil, err
	}
	methodDetail, err := dfWV.Strings("Method_detail")
	if err != nil {
		return nil, err
	}
	purposes, err := dfWV.Strings("Purpose_clean")
	if err != nil {
		return nil, err
	}
	units, err := dfWV.Strings("units_clean")
	if err != nil {
		return nil, err
	}

	yearCol := "Paper_year"
	if !dfWV.HasColumn(yearCol) {
		yearCol = "Year"
	}
	years, err := dfWV.Floats(yearCol)
	if err != nil {
		return nil, err
	}

	nPoints := dfWV.Len()
	nPapers := frame.NUnique(ids)

	// Data points per paper: the top ValueCounts entry is the maximum.
	perPaper := frame.ValueCounts(ids)
	maxPoints, maxPaperID := 0, ""
	if len(perPaper) > 0 {
		maxPoints, maxPaperID = perPaper[0].Count, perPaper[0].Value
	}
	avgPoints := 0.0
	if nPapers > 0 {
		avgPoints = float64(nPoints) / float64(nPapers)
	}

	medianPct, err := dfWV.Completeness("WV_median_raw")
	if err != nil {
		return nil, err
	}
	nMedianFilled := int(medianPct/100*float64(nPoints) + 0.5)

	stats := [][2]string{
		{"Total papers reporting numerical water values", itoa(nPapers)},
		{"Total water value data points", itoa(nPoints)},
		{"Countries represented", itoa(frame.NUnique(countries))},
		{"Continents represented", itoa(frame.NUnique(continents))},
		{"Method categories (manuscript-level)", itoa(frame.NUnique(methods))},
		{"Method types (detailed)", itoa(frame.NUnique(methodDetail))},
		{"Purpose categories", itoa(frame.NUnique(purposes))},
		{"Unique unit types", itoa(frame.NUnique(units))},
		{"Publication year range", fmt.Sprintf("%.0f–%.0f", frame.Min(years), frame.Max(years))},
		{"Most common purpose", frame.Mode(purposes)},
		{"Most common unit", frame.Mode(units)},
		{"Most common country", frame.Mode(countries)},
		{"Most common method", frame.Mode(methods)},
		{"Average data points per paper", fmt.Sprintf("%.1f", avgPoints)},
		{"Maximum data points (single paper)", fmt.Sprintf("%d (ID: %s)", maxPoints, maxPaperID)},
		{"WV_median_raw completeness", fmt.Sprintf("%d/%d (%s%%)", nMedianFilled, nPoints, fmtPct(medianPct))},
	}

	t := &Table{
		Key:      "table_5",
		FileName: "table_5_wv_summary.csv",
		Columns:  []string{"Statistic", "Value"},
		Caption: "Table 5. Summary statistics of the water value dataset " +
			"extracted from papers reporting numerical water values.",
	}
	for _, s := range stats {
		t.Records = append(t.Records, []string{s[0], s[1]})
	}

	logTable(log, t)
	return t, nil
}

// Purposes builds Table 6: water value data points grouped by purpose with
// per-group distinct paper, country, and continent counts, sorted by
// descending data point count, with a Total row.
func Purposes(dfWV *frame.Frame, log *report.Log) (*Table, error) {
	log.Subsection("Table 6: Water Values by Purpose")

	purposeCol, err := dfWV.Column("Purpose_clean")
	if err != nil {
		return nil, err
	}
	idCol, err := dfWV.Column("ID")
	if err != nil {
		return nil, err
	}
	countryCol, err := dfWV.Column("Country_clean")
	if err != nil {
		return nil, err
	}
	continentCol, err := dfWV.Column("Continent")
	if err != nil {
		return nil, err
	}

	type group struct {
		points     int
		papers     map[string]struct{}
		countries  map[string]struct{}
		continents map[string]struct{}
	}
	groups := map[string]*group{}
	allPapers := map[string]struct{}{}
	allCountries := map[string]struct{}{}
	allContinents := map[string]struct{}{}

	for i := range purposeCol {
		if !purposeCol[i].Valid {
			continue
		}
		g := groups[purposeCol[i].Str]
		if g == nil {
			g = &group{
				papers:     map[string]struct{}{},
				countries:  map[string]struct{}{},
				continents: map[string]struct{}{},
			}
			groups[purposeCol[i].Str] = g
		}
		g.points++
		if idCol[i].Valid {
			g.papers[idCol[i].Str] = struct{}{}
			allPapers[idCol[i].Str] = struct{}{}
		}
		if countryCol[i].Valid {
			g.countries[countryCol[i].Str] = struct{}{}
			allCountries[countryCol[i].Str] = struct{}{}
		}
		if continentCol[i].Valid {
			g.continents[continentCol[i].Str] = struct{}{}
			allContinents[continentCol[i].Str] = struct{}{}
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		gi, gj := groups[names[i]], groups[names[j]]
		if gi.points != gj.points {
			return gi.points > gj.points
		}
		return names[i] < names[j]
	})

	nTotal := dfWV.Len()
	t := &Table{
		Key:      "table_6",
		FileName: "table_6_wv_purpose.csv",
		Columns: []string{
			"Purpose", "Data_Points_Count", "Papers_Count",
			"Countries_Count", "Continents_Count", "Pct_of_Data_Points",
		},
	}
	for _, name := range names {
		g := groups[name]
		t.Records = append(t.Records, []string{
			name, itoa(g.points), itoa(len(g.papers)),
			itoa(len(g.countries)), itoa(len(g.continents)),
			fmtPct(pct(g.points, nTotal)),
		})
	}
	t.Records = append(t.Records, []string{
		"Total", itoa(nTotal), itoa(len(allPapers)),
		itoa(len(allCountries)), itoa(len(allContinents)), "100.0",
	})
	t.Caption = "Table 6. Distribution of water value data points by water use " +
		"purpose, showing the number of data points, papers, countries, and " +
		"continents represented for each purpose category."

	logTable(log, t)
	return t, nil
}

// logTable mirrors the fixed-width rendition of a table into the run log.
func logTable(log *report.Log, t *Table) {
	var b strings.Builder
	t.Render(&b)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		log.Println("  " + line)
	}
}

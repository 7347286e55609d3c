// Package charts builds the five analytical figures of the dataset
// article from the classification and water value tables.
package charts

import (
	"image/color"

	"github.com/energy-modelling-hub/water-value-database/internal/figure"
)

// Shared accent colors.
var (
	steelBlue = figure.Hex("#4682B4")
	grayBar   = figure.Hex("#999999")
	trendLine = figure.Hex("#222222")
)

// MethodOrder is the manuscript display order of the method categories.
var MethodOrder = []string{"LP", "MILP", "SDP", "SDDP", "Econ-Engi", "Other", "Not available"}

// MethodColors is the qualitative palette aligned with MethodOrder.
var MethodColors = map[string]color.RGBA{
	"LP":            figure.Hex("#1f77b4"),
	"MILP":          figure.Hex("#ff7f0e"),
	"SDP":           figure.Hex("#2ca02c"),
	"SDDP":          figure.Hex("#d62728"),
	"Econ-Engi":     figure.Hex("#9467bd"),
	"Other":         figure.Hex("#8c564b"),
	"Not available": figure.Hex("#c7c7c7"),
}

// PurposeColors maps the water use purposes to their fixed colors.
var PurposeColors = map[string]color.RGBA{
	"Hydropower":      figure.Hex("#1f77b4"),
	"Agriculture":     figure.Hex("#2ca02c"),
	"Urban/Municipal": figure.Hex("#ff7f0e"),
	"Environmental":   figure.Hex("#17becf"),
	"Mixed":           figure.Hex("#9467bd"),
	"Industrial":      figure.Hex("#8c564b"),
	"Social/Economic": figure.Hex("#e377c2"),
}

// CategoryOrder is the fixed row order of the classification categories.
var CategoryOrder = []string{"A", "B", "C", "D", "E", "F", "G", "H", "R"}

func colorFor(m map[string]color.RGBA, key string) color.RGBA {
	if c, ok := m[key]; ok {
		return c
	}
	return grayBar
}

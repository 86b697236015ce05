// Package plot implements the out-of-scope-by-interface plotting
// collaborator spec §1 and §6 name ("Optional posterior plots (PNG) of
// per-region image sets — out-of-core side feature"). Grounded on
// JonasLazardGIT-SPRUCE's go-echarts charting usage; produces an HTML
// scatter rather than PNG, since go-echarts is a browser-rendered charting
// library — a faithful, working stand-in for the same side feature.
package plot

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Plotter is named only by interface per spec §1's "out-of-scope
// collaborators" list; callers that do not need plotting never import the
// concrete implementation below.
type Plotter interface {
	PlotRegionImages(title string, points [][2]float64) error
}

// EChartsPlotter renders a 2D scatter of region-image points to an HTML
// file, the one concrete Plotter this module carries.
type EChartsPlotter struct {
	OutPath string
}

func (e EChartsPlotter) PlotRegionImages(title string, points [][2]float64) error {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x1"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "x2"}),
	)

	items := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.ScatterData{Value: p})
	}
	sc.AddSeries("region images", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 6}),
	)

	f, err := os.Create(e.OutPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return sc.Render(f)
}

package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchesBySource returns a timeseries panel splitting searches into text
// and image queries.
func SearchesBySource() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Searches by Source").
		Description("Searches per minute by query source").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`closette:searches:rate5m * 60`, "{{source}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EmptySearches returns a stat panel showing the share of searches that
// returned no results in the last hour.
func EmptySearches() *stat.PanelBuilder {
	expr := `sum(increase(closette_search_results_bucket{job="closette",le=~"0|0.0"}[1h])) / sum(increase(closette_search_results_count{job="closette"}[1h])) * 100`
	return stat.NewPanelBuilder().
		Title("Empty Searches (1h)").
		Description("Percentage of searches where every provider came back empty or failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(10, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// ResultDistribution returns a bar gauge panel showing how many merged
// results searches return.
func ResultDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Results per Search").
		Description("Distribution of merged result counts").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(12).
		WithTarget(PromQuery(
			`sum(increase(closette_search_results_bucket{job="closette"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

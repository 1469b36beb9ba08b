package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ExtractionDuration returns a timeseries panel showing p50 and p95 vision
// extraction latencies.
func ExtractionDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Extraction Duration").
		Description("Vision attribute extraction duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(closette_extraction_duration_seconds_bucket{job="closette"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(closette_extraction_duration_seconds_bucket{job="closette"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ExtractionFallbacks returns a timeseries panel showing how often image
// analysis fell back to the default attributes.
func ExtractionFallbacks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Extraction Fallbacks").
		Description("Image analyses answered with the fallback attribute set, per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`closette:extraction_fallbacks:rate5m`, "fallbacks/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ProviderLatency returns a timeseries panel showing p95 call duration per
// marketplace.
func ProviderLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Provider Latency (p95)").
		Description("95th percentile marketplace call duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(closette_provider_duration_seconds_bucket{job="closette"}[5m])) by (le, platform))`,
			"{{platform}}",
			"A",
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

// ProviderErrorRate returns a timeseries panel showing the failing share
// of calls per marketplace.
func ProviderErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Provider Error Rate %").
		Description("Failed marketplace calls as percentage of all calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`closette:provider_errors:rate5m / closette:provider_requests:rate5m * 100`,
			"{{platform}}", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(5, 25)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProviderResults returns a timeseries panel showing results contributed
// per minute by each marketplace.
func ProviderResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Results / min").
		Description("Results contributed per minute by each marketplace").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(closette_provider_results_total{job="closette"}[5m])) by (platform) * 60`,
			"{{platform}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QuotaRemaining returns a timeseries panel showing eBay calls left in the
// current daily window with a threshold line near exhaustion.
func QuotaRemaining() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("eBay Quota Remaining").
		Description(fmt.Sprintf("Finding API calls left today (allowance: %d)", EbayDailyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`closette_provider_quota_remaining{job="closette",platform="eBay"}`, "remaining", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsRedGreen(float64(EbayDailyLimit) * 0.2)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

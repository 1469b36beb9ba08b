package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthStat returns a stat panel showing the health probe status.
func HealthStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Health").
		Description("Health probe status (1 = ok, 0 = failing)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`closette_health_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// SearchesStat returns a stat panel showing searches per minute.
func SearchesStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Searches / min").
		Description("Searches served per minute across text and image sources").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(closette:searches:rate5m) * 60`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// QuotaGauge returns a gauge panel showing how much of the eBay daily
// allowance has been used.
func QuotaGauge() *gauge.PanelBuilder {
	expr := fmt.Sprintf(
		`(1 - closette_provider_quota_remaining{job="closette",platform="eBay"} / %d) * 100`,
		EbayDailyLimit,
	)
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description("Daily eBay Finding API usage as percentage of the allowance").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - process_start_time_seconds{job="closette"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/closette/tools/dashgen/panels"
)

// BuildOverview constructs the Closette Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Closette Overview").
		Uid("closette-overview").
		Tags([]string{"closette"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthStat()).
		WithPanel(panels.SearchesStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Search.
	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.SearchesBySource()).
		WithPanel(panels.EmptySearches()).
		WithPanel(panels.ResultDistribution()))

	// Row 4: Providers.
	b.WithRow(dashboard.NewRowBuilder("Providers").
		WithPanel(panels.ProviderLatency()).
		WithPanel(panels.ProviderErrorRate()).
		WithPanel(panels.ProviderResults()).
		WithPanel(panels.QuotaRemaining()))

	// Row 5: Extraction.
	b.WithRow(dashboard.NewRowBuilder("Extraction").
		WithPanel(panels.ExtractionDuration()).
		WithPanel(panels.ExtractionFallbacks()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

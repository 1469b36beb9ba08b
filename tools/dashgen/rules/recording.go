package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "closette-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "closette-recording",
					Rules: []Rule{
						{
							Record: "closette:http_requests:rate5m",
							Expr:   `sum(rate(closette_http_requests_total[5m]))`,
						},
						{
							Record: "closette:http_errors:rate5m",
							Expr:   `sum(rate(closette_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "closette:searches:rate5m",
							Expr:   `sum(rate(closette_searches_total[5m])) by (source)`,
						},
						{
							Record: "closette:provider_requests:rate5m",
							Expr:   `sum(rate(closette_provider_requests_total[5m])) by (platform)`,
						},
						{
							Record: "closette:provider_errors:rate5m",
							Expr:   `sum(rate(closette_provider_requests_total{outcome="error"}[5m])) by (platform)`,
						},
						{
							Record: "closette:extraction_fallbacks:rate5m",
							Expr:   `rate(closette_extraction_fallbacks_total[5m])`,
						},
					},
				},
			},
		},
	}
}

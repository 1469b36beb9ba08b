package rules

import (
	"fmt"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// ebayQuotaLow is 20% of the default eBay daily allowance.
const ebayQuotaLow = domain.EbayDailyCalls / 5

// AlertRules returns a PrometheusRule CR containing alert rules for
// closette operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "closette-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "closette-alerts",
					Rules: []Rule{
						{
							Alert: "ClosetteDown",
							Expr:  `absent(up{job="closette"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Closette is down",
								"description": "The closette job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "ClosetteHealthDown",
							Expr:  `closette_health_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Closette health probe is failing",
								"description": "The health endpoint has been reporting failure for more than 2 minutes.",
							},
						},
						{
							Alert: "ClosetteHighErrorRate",
							Expr:  `closette:http_errors:rate5m / closette:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on closette",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "ClosetteProviderFailing",
							Expr:  `closette:provider_errors:rate5m / closette:provider_requests:rate5m > 0.5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "A marketplace provider is mostly failing",
								"description": "More than half of calls to {{ $labels.platform }} have failed for 10 minutes. Searches still succeed without its results.",
							},
						},
						{
							Alert: "ClosetteExtractionFallbacks",
							Expr:  `closette:extraction_fallbacks:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Vision extraction is falling back",
								"description": "Image searches are using the fallback attribute set at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "ClosetteEbayQuotaLow",
							Expr:  fmt.Sprintf(`closette_provider_quota_remaining{platform="eBay"} < %d`, ebayQuotaLow),
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay daily quota is below 20%",
								"description": fmt.Sprintf("Fewer than %d Finding API calls remain in the current daily window.", ebayQuotaLow),
							},
						},
						{
							Alert: "ClosetteEbayQuotaExhausted",
							Expr:  `closette_provider_quota_remaining{platform="eBay"} == 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay daily quota is exhausted",
								"description": "The eBay Finding API allowance is used up. Searches return no eBay results until the window resets.",
							},
						},
					},
				},
			},
		},
	}
}

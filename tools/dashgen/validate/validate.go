// Package validate checks generated dashboards and rules for PromQL that
// does not parse or that references metrics closette does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/closette/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// panelJSON is the subset of a serialized panel the validator reads. Rows
// carry their children under Panels.
type panelJSON struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Targets []targetRef `json:"targets"`
	Panels  []panelJSON `json:"panels"`
}

type targetRef struct {
	Expr  string `json:"expr"`
	RefID string `json:"refId"`
}

// Dashboard validates every panel query in dash against known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}

	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	for _, p := range doc.Panels {
		walkPanel(&res, p, known)
	}
	return res
}

func walkPanel(res *Result, p panelJSON, known map[string]bool) {
	for _, child := range p.Panels {
		walkPanel(res, child, known)
	}
	if p.Type == "row" {
		return
	}

	if len(p.Targets) == 0 {
		res.warnf("panel %q has no queries", p.Title)
		return
	}
	for _, t := range p.Targets {
		where := fmt.Sprintf("panel %q query %s", p.Title, t.RefID)
		checkExpr(res, where, t.Expr, known)
	}
}

// Rules validates every rule expression in cr against known. Recording
// rule names count as known for the rules that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	merged := make(map[string]bool, len(known))
	for k, v := range known {
		merged[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %q has a rule with neither record nor alert", g.Name)
				continue
			}
			checkExpr(&res, fmt.Sprintf("rule %q", name), r.Expr, merged)
			if r.Record != "" {
				merged[r.Record] = true
			}
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %v", where, err)
		return
	}

	for _, name := range metricNames(node) {
		if !known[baseMetric(name)] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

func metricNames(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

// baseMetric strips the series suffixes a histogram exposes.
func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}

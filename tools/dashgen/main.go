package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/closette/tools/dashgen/dashboards"
	"github.com/donaldgifford/closette/tools/dashgen/rules"
	"github.com/donaldgifford/closette/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one rendered file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, err := render(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		dst := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Printf("dashgen: wrote %s\n", dst)
	}
	return nil
}

// render builds and validates every enabled artifact.
func render(cfg Config) ([]artifact, error) {
	var out []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building overview dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
			return nil, fmt.Errorf("overview dashboard: %w", joinErrors(res.Errors))
		}

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		out = append(out, artifact{
			path: filepath.Join("grafana", "data", "closette-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for name, cr := range map[string]rules.PrometheusRule{
			"closette-recording-rules.yaml": rules.RecordingRules(),
			"closette-alerts.yaml":          rules.AlertRules(),
		} {
			data, err := ruleYAML(cr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out = append(out, artifact{path: filepath.Join("prometheus", name), data: data})
		}
	}

	return out, nil
}

// ruleYAML validates cr and renders it with the generated-file header.
// Alert rules may reference recording rules, so both sets are known.
func ruleYAML(cr rules.PrometheusRule) ([]byte, error) {
	known := make(map[string]bool, len(KnownMetrics))
	for k, v := range KnownMetrics {
		known[k] = v
	}
	if res := validate.Rules(cr, known); !res.Ok() {
		return nil, joinErrors(res.Errors)
	}

	data, err := yaml.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}
	return append([]byte(generatedHeader), data...), nil
}

func joinErrors(msgs []string) error {
	errs := make([]error, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, errors.New(m))
	}
	return errors.Join(errs...)
}

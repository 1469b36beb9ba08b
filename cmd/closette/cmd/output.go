package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/closette/internal/api/client"
	domain "github.com/donaldgifford/closette/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSearchResponse(w io.Writer, resp *domain.SearchResponse) error {
	tw := newTabWriter(w)
	tw.writef("Query:\t%s\n", resp.Query)
	if a := resp.Attributes; a != nil {
		tw.writef("Attributes:\tcolor=%s pattern=%s material=%s occasion=%s era=%s vibe=%s\n",
			a.Color, a.Pattern, a.Material, a.Occasion, a.Era, a.Vibe)
	}
	tw.writef("Results:\t%d\n\n", resp.Count)

	tw.writef("PLATFORM\tTITLE\tPRICE\tCONDITION\tURL\n")
	for i := range resp.Results {
		r := &resp.Results[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.Platform,
			truncate(r.Title, 40),
			orDash(r.Price),
			orDash(r.Condition),
			r.ListingURL,
		)
	}
	return tw.finish()
}

func printAttributes(w io.Writer, a domain.AttributeSet) error {
	tw := newTabWriter(w)
	tw.writef("Color:\t%s\n", a.Color)
	tw.writef("Pattern:\t%s\n", a.Pattern)
	tw.writef("Material:\t%s\n", a.Material)
	tw.writef("Occasion:\t%s\n", a.Occasion)
	tw.writef("Era:\t%s\n", a.Era)
	tw.writef("Vibe:\t%s\n", a.Vibe)
	tw.writef("Query:\t%s\n", a.Query())
	return tw.finish()
}

func printProvidersTable(w io.Writer, providers []apiclient.Provider) error {
	tw := newTabWriter(w)
	tw.writef("PLATFORM\tENABLED\tSTUBBED\tCAP\tTIMEOUT\tPRICE FORMAT\n")
	for i := range providers {
		p := &providers[i]
		tw.writef("%s\t%v\t%v\t%s\t%ds\t%s\n",
			p.Platform,
			p.Enabled,
			p.Stubbed,
			capString(p.ResultCap),
			p.TimeoutSeconds,
			p.PriceFormat,
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func capString(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

package search

import (
	"time"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// Outcome is the tagged result of one provider call: either the items it
// returned or the error that stopped it.
type Outcome struct {
	Platform domain.Platform
	Duration time.Duration

	items []domain.ResultItem
	err   error
	ok    bool
}

// Succeeded builds a successful Outcome.
func Succeeded(p domain.Platform, items []domain.ResultItem) Outcome {
	return Outcome{Platform: p, items: items, ok: true}
}

// Failed builds a failed Outcome.
func Failed(p domain.Platform, err error) Outcome {
	return Outcome{Platform: p, err: err}
}

// IsOk reports whether the provider call succeeded.
func (o Outcome) IsOk() bool { return o.ok }

// Unwrap returns the items and error.
func (o Outcome) Unwrap() ([]domain.ResultItem, error) { return o.items, o.err }

// UnwrapOr returns the items, or fallback when the call failed.
func (o Outcome) UnwrapOr(fallback []domain.ResultItem) []domain.ResultItem {
	if !o.ok {
		return fallback
	}
	return o.items
}

// Err returns the failure, or nil.
func (o Outcome) Err() error { return o.err }

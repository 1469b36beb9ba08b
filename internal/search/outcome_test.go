package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/closette/internal/search"
	domain "github.com/donaldgifford/closette/pkg/types"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	items := []domain.ResultItem{{Title: "a", Platform: domain.PlatformVinted}}
	fallback := []domain.ResultItem{}

	ok := search.Succeeded(domain.PlatformVinted, items)
	assert.True(t, ok.IsOk())
	assert.NoError(t, ok.Err())
	assert.Equal(t, items, ok.UnwrapOr(fallback))
	got, err := ok.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, items, got)

	boom := errors.New("boom")
	failed := search.Failed(domain.PlatformDepop, boom)
	assert.False(t, failed.IsOk())
	assert.ErrorIs(t, failed.Err(), boom)
	assert.Equal(t, fallback, failed.UnwrapOr(fallback))
	assert.Equal(t, domain.PlatformDepop, failed.Platform)
}

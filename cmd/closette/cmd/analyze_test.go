package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/pkg/extract/mocks"
	domain "github.com/donaldgifford/closette/pkg/types"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	attrs := domain.AttributeSet{
		Color: "red", Pattern: "floral", Material: "silk",
		Occasion: "party", Era: "90s", Vibe: "romantic",
	}

	tests := []struct {
		name       string
		asJSON     bool
		err        error
		wantErr    string
		wantOutput []string
	}{
		{
			name:       "table output",
			wantOutput: []string{"Color:", "red", "Query:", "red floral silk romantic"},
		},
		{
			name:       "json output",
			asJSON:     true,
			wantOutput: []string{`"color": "red"`, `"vibe": "romantic"`},
		},
		{
			name:    "extraction failure names the backend",
			err:     errors.New("status 401"),
			wantErr: "analyzing image with openai_compat: status 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ex := mocks.NewMockExtractor(t)
			ex.EXPECT().
				Extract(mock.Anything, "https://example.com/dress.jpg").
				Return(attrs, tt.err)

			var buf bytes.Buffer
			err := analyze(context.Background(), &buf, ex, "openai_compat", "https://example.com/dress.jpg", tt.asJSON)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

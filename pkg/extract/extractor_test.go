package extract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/internal/metrics"
	"github.com/donaldgifford/closette/pkg/extract"
	extractMocks "github.com/donaldgifford/closette/pkg/extract/mocks"
	domain "github.com/donaldgifford/closette/pkg/types"
)

const validReply = `{"color":"red","pattern":"floral","material":"cotton","occasion":"party","era":"1970s","vibe":"boho"}`

func TestVisionExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*extractMocks.MockVisionBackend)
		want       domain.AttributeSet
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "parses reply",
			setupMock: func(m *extractMocks.MockVisionBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.MatchedBy(func(req extract.VisionRequest) bool {
						return req.ImageURL == "https://img/1.jpg" &&
							req.Prompt == extract.AttributePrompt &&
							req.Format == extract.FormatJSON &&
							req.MaxTokens == 500
					})).
					Return(extract.GenerateResponse{Content: validReply}, nil).
					Once()
			},
			want: domain.AttributeSet{
				Color: "red", Pattern: "floral", Material: "cotton",
				Occasion: "party", Era: "1970s", Vibe: "boho",
			},
		},
		{
			name: "backend error",
			setupMock: func(m *extractMocks.MockVisionBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(extract.GenerateResponse{}, errors.New("connection refused")).
					Once()
			},
			wantErr:    true,
			wantErrMsg: "calling vision backend",
		},
		{
			name: "non-JSON reply",
			setupMock: func(m *extractMocks.MockVisionBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(extract.GenerateResponse{Content: "a lovely red dress"}, nil).
					Once()
			},
			wantErr:    true,
			wantErrMsg: "parsing vision reply",
		},
		{
			name: "missing field",
			setupMock: func(m *extractMocks.MockVisionBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(extract.GenerateResponse{Content: `{"color":"red"}`}, nil).
					Once()
			},
			wantErr:    true,
			wantErrMsg: "missing field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := extractMocks.NewMockVisionBackend(t)
			backend.EXPECT().Name().Return("mock").Maybe()
			tt.setupMock(backend)

			ex := extract.NewVisionExtractor(backend)
			got, err := ex.Extract(context.Background(), "https://img/1.jpg")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisionExtractor_Extract_Timeout(t *testing.T) {
	t.Parallel()

	backend := extractMocks.NewMockVisionBackend(t)
	backend.EXPECT().Name().Return("mock").Maybe()
	backend.EXPECT().
		Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ extract.VisionRequest) (extract.GenerateResponse, error) {
			<-ctx.Done()
			return extract.GenerateResponse{}, ctx.Err()
		}).
		Once()

	ex := extract.NewVisionExtractor(backend, extract.WithTimeout(20*time.Millisecond))
	_, err := ex.Extract(context.Background(), "https://img/1.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestVisionExtractor_ExtractAttributes(t *testing.T) {
	t.Parallel()

	t.Run("success passes attributes through", func(t *testing.T) {
		t.Parallel()

		backend := extractMocks.NewMockVisionBackend(t)
		backend.EXPECT().Name().Return("mock").Maybe()
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{Content: "```json\n" + validReply + "\n```"}, nil).
			Once()

		got := extract.NewVisionExtractor(backend).
			ExtractAttributes(context.Background(), "https://img/1.jpg")
		assert.Equal(t, "red floral cotton boho", got.Query())
	})

	t.Run("failure yields fallback", func(t *testing.T) {
		t.Parallel()

		backend := extractMocks.NewMockVisionBackend(t)
		backend.EXPECT().Name().Return("mock").Maybe()
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{}, errors.New("unreachable")).
			Once()

		got := extract.NewVisionExtractor(backend).
			ExtractAttributes(context.Background(), "https://img/1.jpg")
		assert.Equal(t, domain.FallbackAttributes(), got)
		assert.Equal(t, "unknown unknown unknown vintage", got.Query())
	})
}

// Not parallel: reads process-wide counters.
func TestVisionExtractor_Metrics(t *testing.T) {
	backend := extractMocks.NewMockVisionBackend(t)
	backend.EXPECT().Name().Return("mock").Maybe()
	backend.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(extract.GenerateResponse{}, errors.New("boom")).
		Once()

	fallbacksBefore := ptestutil.ToFloat64(metrics.ExtractionFallbacksTotal)
	observedBefore := extractionSampleCount()

	extract.NewVisionExtractor(backend).ExtractAttributes(context.Background(), "https://img/1.jpg")

	assert.InDelta(t, fallbacksBefore+1, ptestutil.ToFloat64(metrics.ExtractionFallbacksTotal), 0.001)
	assert.Equal(t, observedBefore+1, extractionSampleCount())
}

func extractionSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.ExtractionDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestVisionExtractor_Backend(t *testing.T) {
	t.Parallel()

	backend := extractMocks.NewMockVisionBackend(t)
	backend.EXPECT().Name().Return("gemini").Once()
	assert.Equal(t, "gemini", extract.NewVisionExtractor(backend).Backend())
}

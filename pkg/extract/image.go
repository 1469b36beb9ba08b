package extract

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultMaxImageBytes = 20 << 20

// ErrUnsupportedImageRef is returned for references that are neither
// http(s) URLs nor base64 data URIs.
var ErrUnsupportedImageRef = errors.New("unsupported image reference")

// Image is a fetched image ready to be inlined into a vision request.
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageLoader resolves image references into bytes for backends that need
// the image inline.
type ImageLoader struct {
	client   *http.Client
	maxBytes int64
}

// ImageLoaderOption configures the ImageLoader.
type ImageLoaderOption func(*ImageLoader)

// WithImageHTTPClient overrides the default HTTP client.
func WithImageHTTPClient(c *http.Client) ImageLoaderOption {
	return func(l *ImageLoader) {
		l.client = c
	}
}

// WithMaxImageBytes caps the number of bytes read from a remote image.
func WithMaxImageBytes(n int64) ImageLoaderOption {
	return func(l *ImageLoader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// NewImageLoader creates a new ImageLoader.
func NewImageLoader(opts ...ImageLoaderOption) *ImageLoader {
	l := &ImageLoader{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: defaultMaxImageBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches or decodes the image behind ref.
func (l *ImageLoader) Load(ctx context.Context, ref string) (Image, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "data:"):
		return ParseDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)
	default:
		return Image{}, fmt.Errorf("%w: %q", ErrUnsupportedImageRef, truncate(ref, 32))
	}
}

func (l *ImageLoader) fetch(ctx context.Context, url string) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Image{}, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode)
	}

	// Read one byte past the cap so oversize images are detected.
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return Image{}, fmt.Errorf("image exceeds %d bytes", l.maxBytes)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("image is empty")
	}

	mimeType := resp.Header.Get("Content-Type")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}

	return Image{Data: data, MIMEType: mimeType}, nil
}

// ParseDataURI decodes a base64 data URI of the form
// data:<mime>;base64,<payload>.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing data: prefix", ErrUnsupportedImageRef)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: malformed data URI", ErrUnsupportedImageRef)
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return Image{}, fmt.Errorf("%w: data URI is not base64", ErrUnsupportedImageRef)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decoding data URI: %w", err)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return Image{Data: data, MIMEType: mimeType}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-200 reply from a vision API.
type APIError struct {
	API    string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.API, e.Status, e.Detail)
}

// postJSON sends payload to url and decodes a 200 reply into dst. Other
// statuses become an *APIError whose detail is produced from the body by
// detail, or is the raw body when detail is nil or returns "".
func postJSON(
	ctx context.Context,
	client *http.Client,
	api, url string,
	header http.Header,
	payload, dst any,
	detail func(body []byte) string,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", api, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := ""
		if detail != nil {
			msg = detail(respBody)
		}
		if msg == "" {
			msg = string(respBody)
		}
		return &APIError{API: api, Status: resp.StatusCode, Detail: msg}
	}

	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("parsing %s response: %w", api, err)
	}
	return nil
}

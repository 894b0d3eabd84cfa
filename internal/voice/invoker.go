package voice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Invoker is a synchronous request/response call to the query service
// carrying a JSON payload. headlines.Service satisfies it in-process.
type Invoker interface {
	Invoke(ctx context.Context, payload []byte) ([]byte, error)
}

// ParsePayloadError reports a query response that is not a list of threads.
type ParsePayloadError struct {
	Payload []byte
	Err     error
}

func (e *ParsePayloadError) Error() string {
	return fmt.Sprintf("voice: parse query response: %v", e.Err)
}

func (e *ParsePayloadError) Unwrap() error { return e.Err }

// HTTPInvoker posts query payloads to a remote query endpoint.
type HTTPInvoker struct {
	url    string
	client *http.Client
}

func NewHTTPInvoker(url string, timeout time.Duration) *HTTPInvoker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPInvoker{url: url, client: &http.Client{Timeout: timeout}}
}

func (h *HTTPInvoker) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("voice: query endpoint status=%d body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

package vireo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/vireo-ai/vireo-go/core"
)

// requestSpec describes one API call. Every endpoint method builds a spec
// and hands it to do(); the omission policy for request bodies is applied by
// the request types themselves, so the transport marshals bodies as-is.
type requestSpec struct {
	op     string     // operation identifier for telemetry, e.g. "threads.create"
	method string
	path   string     // path below the base URL, e.g. "/threads"
	query  url.Values // optional query parameters
	body   any        // JSON-marshaled when non-nil
	beta   bool       // set the assistants beta header
}

func (s requestSpec) url(base string) string {
	u := base + s.path
	if len(s.query) > 0 {
		u += "?" + s.query.Encode()
	}
	return u
}

// do executes a request and decodes the JSON response into out (which may be
// nil for calls whose body the caller discards). Transient failures retry
// per the configured policy; the request body is re-marshaled bytes, so
// retries are safe.
func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	var body []byte
	if spec.body != nil {
		var err error
		body, err = json.Marshal(spec.body)
		if err != nil {
			return newDecodeError(err)
		}
	}

	headers := c.buildHeaders()
	if spec.beta {
		headers = c.buildHeadersWithBeta()
	}

	respBody, err := c.send(ctx, spec, headers, func() io.Reader {
		if body == nil {
			return nil
		}
		return bytes.NewReader(body)
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// doMultipart executes a multipart/form-data request. build writes the form
// fields and file parts. Multipart bodies are buffered so the write happens
// once; uploads do not retry.
func (c *Client) doMultipart(ctx context.Context, spec requestSpec, build func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	headers := c.buildHeaders()
	if spec.beta {
		headers = c.buildHeadersWithBeta()
	}
	headers.Set("Content-Type", w.FormDataContentType())

	respBody, err := c.sendOnce(ctx, spec, headers, &buf, 0)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// doRaw executes a request and returns the raw response bytes. Used for
// file-content downloads.
func (c *Client) doRaw(ctx context.Context, spec requestSpec) ([]byte, error) {
	return c.send(ctx, spec, c.buildHeaders(), func() io.Reader { return nil })
}

// send runs the request with retries. newBody is called per attempt so each
// retry gets a fresh reader.
func (c *Client) send(ctx context.Context, spec requestSpec, headers http.Header, newBody func() io.Reader) ([]byte, error) {
	attempt := 0
	for {
		respBody, err := c.sendOnce(ctx, spec, headers, newBody(), attempt)
		if err == nil {
			return respBody, nil
		}

		delay, retry := c.config.Retry.NextDelay(attempt, err)
		if !retry {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		attempt++
	}
}

// sendOnce performs a single HTTP round trip and normalizes failures.
func (c *Client) sendOnce(ctx context.Context, spec requestSpec, headers http.Header, body io.Reader, attempt int) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, spec.method, spec.url(c.config.BaseURL), body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	for key, values := range headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	clientID := uuid.NewString()
	httpReq.Header.Set("X-Client-Request-Id", clientID)

	start := time.Now()
	c.config.Telemetry.OnRequestStart(core.RequestStartEvent{
		Operation: spec.op,
		Method:    spec.method,
		Path:      spec.path,
		ClientID:  clientID,
		Attempt:   attempt,
		Start:     start,
	})

	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		err = newNetworkError(err)
		c.emitEnd(spec, clientID, "", attempt, 0, start, err)
		return nil, err
	}
	defer resp.Body.Close()

	requestID := resp.Header.Get("x-request-id")

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = newNetworkError(err)
		c.emitEnd(spec, clientID, requestID, attempt, resp.StatusCode, start, err)
		return nil, err
	}

	if resp.StatusCode >= 400 {
		err = normalizeError(resp.StatusCode, respBody, requestID)
		c.emitEnd(spec, clientID, requestID, attempt, resp.StatusCode, start, err)
		return nil, err
	}

	c.emitEnd(spec, clientID, requestID, attempt, resp.StatusCode, start, nil)
	return respBody, nil
}

func (c *Client) emitEnd(spec requestSpec, clientID, requestID string, attempt, status int, start time.Time, err error) {
	c.config.Telemetry.OnRequestEnd(core.RequestEndEvent{
		Operation: spec.op,
		Method:    spec.method,
		Path:      spec.path,
		ClientID:  clientID,
		RequestID: requestID,
		Attempt:   attempt,
		Status:    status,
		Duration:  time.Since(start),
		Err:       err,
	})
}

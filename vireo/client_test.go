package vireo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-ai/vireo-go/core"
)

func TestNewDefaults(t *testing.T) {
	c := New("test-key")

	assert.Equal(t, DefaultBaseURL, c.config.BaseURL)
	assert.Equal(t, http.DefaultClient, c.config.HTTPClient)
	assert.Equal(t, "test-key", c.config.APIKey.Expose())
	assert.NotNil(t, c.config.Retry)
	assert.NotNil(t, c.config.Telemetry)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnvVar, "")
	t.Setenv(FallbackAPIKeyEnvVar, "")

	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrAPIKeyNotFound)

	t.Setenv(FallbackAPIKeyEnvVar, "fallback-key")
	c, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", c.config.APIKey.Expose())

	t.Setenv(DefaultAPIKeyEnvVar, "primary-key")
	c, err = NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", c.config.APIKey.Expose())
}

func TestBuildHeaders(t *testing.T) {
	c := New("test-key",
		WithOrgID("org-1"),
		WithProjectID("proj-1"),
		WithHeader("X-Custom", "yes"),
	)

	headers := c.buildHeaders()
	assert.Equal(t, "Bearer test-key", headers.Get("Authorization"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "org-1", headers.Get("OpenAI-Organization"))
	assert.Equal(t, "proj-1", headers.Get("OpenAI-Project"))
	assert.Equal(t, "yes", headers.Get("X-Custom"))
	assert.Empty(t, headers.Get("OpenAI-Beta"))

	beta := c.buildHeadersWithBeta()
	assert.Equal(t, "assistants=v2", beta.Get("OpenAI-Beta"))
}

func TestCreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Client-Request-Id"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)

		w.Header().Set("x-request-id", "req-abc123")
		json.NewEncoder(w).Encode(ChatCompletion{
			ID:    "chatcmpl-123",
			Model: "gpt-4o",
			Choices: []ChatCompletionChoice{{
				Message:      ChatMessage{Role: ChatRoleAssistant, Content: "Hello!"},
				FinishReason: "stop",
			}},
			Usage: Usage{PromptTokens: 10, CompletionTokens: 8, TotalTokens: 18},
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	resp, err := c.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "Hello"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-123", resp.ID)
	require.NotNil(t, resp.FirstChoice())
	assert.Equal(t, "Hello!", resp.FirstChoice().Content)
	assert.False(t, resp.HasToolCalls())
	assert.Equal(t, 18, resp.Usage.TotalTokens)
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error","code":"invalid_api_key"}}`, core.ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit_error"}}`, core.ErrRateLimited},
		{"not found", http.StatusNotFound, `{"error":{"message":"no such thread"}}`, core.ErrNotFound},
		{"bad request", http.StatusBadRequest, `{"error":{"message":"invalid model"}}`, core.ErrBadRequest},
		{"server error", http.StatusInternalServerError, `not even json`, core.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("x-request-id", "req-err")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(core.NoRetryPolicy()))
			_, err := c.GetThread(context.Background(), "thread_123")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *core.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "req-err", apiErr.RequestID)
		})
	}
}

func TestRetryOnServerError(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"temporary"}}`))
			return
		}
		json.NewEncoder(w).Encode(Thread{ID: "thread_123", Object: "thread"})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(core.NewRetryPolicy(core.RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Jitter:     0.01,
	})))

	thread, err := c.GetThread(context.Background(), "thread_123")
	require.NoError(t, err)
	assert.Equal(t, "thread_123", thread.ID)

	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()
}

func TestNoRetryOnBadRequest(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid"}}`))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.GetThread(context.Background(), "thread_123")
	assert.ErrorIs(t, err, core.ErrBadRequest)

	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}

func TestDecodeErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.GetThread(context.Background(), "thread_123")
	assert.ErrorIs(t, err, core.ErrDecode)
}

// recordingHook captures telemetry events for assertions.
type recordingHook struct {
	mu     sync.Mutex
	starts []core.RequestStartEvent
	ends   []core.RequestEndEvent
}

func (h *recordingHook) OnRequestStart(e core.RequestStartEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, e)
}

func (h *recordingHook) OnRequestEnd(e core.RequestEndEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ends = append(h.ends, e)
}

func TestTelemetryEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-request-id", "req-telemetry")
		json.NewEncoder(w).Encode(Thread{ID: "thread_123"})
	}))
	defer server.Close()

	hook := &recordingHook{}
	c := New("test-key", WithBaseURL(server.URL), WithTelemetry(hook))

	_, err := c.GetThread(context.Background(), "thread_123")
	require.NoError(t, err)

	require.Len(t, hook.starts, 1)
	assert.Equal(t, "threads.get", hook.starts[0].Operation)
	assert.NotEmpty(t, hook.starts[0].ClientID)

	require.Len(t, hook.ends, 1)
	end := hook.ends[0]
	assert.Equal(t, "threads.get", end.Operation)
	assert.Equal(t, http.StatusOK, end.Status)
	assert.Equal(t, "req-telemetry", end.RequestID)
	assert.NoError(t, end.Err)
}

func TestListParamsQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(List[Message]{Object: "list", HasMore: false})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.ListMessages(context.Background(), "thread_123", &MessageListParams{
		ListParams: ListParams{
			Limit: Ptr(20),
			After: Ptr("msg_100"),
			Order: Ptr(SortOrderDesc),
		},
		RunID: Ptr("run_9"),
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "limit=20")
	assert.Contains(t, gotQuery, "after=msg_100")
	assert.Contains(t, gotQuery, "order=desc")
	assert.Contains(t, gotQuery, "run_id=run_9")
}

func TestListParamsNilIsEmpty(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(List[Assistant]{Object: "list"})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.ListAssistants(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

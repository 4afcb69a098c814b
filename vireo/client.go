package vireo

import (
	"errors"
	"net/http"
	"os"

	"github.com/vireo-ai/vireo-go/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the API key.
// FallbackAPIKeyEnvVar is consulted when the primary variable is unset,
// which keeps existing OpenAI environments working unchanged.
const (
	DefaultAPIKeyEnvVar  = "VIREO_API_KEY"
	FallbackAPIKeyEnvVar = "OPENAI_API_KEY"
)

// ErrAPIKeyNotFound is returned when no API key environment variable is set.
var ErrAPIKeyNotFound = errors.New("vireo: neither VIREO_API_KEY nor OPENAI_API_KEY environment variable is set")

// Client is a typed client for OpenAI-compatible generative-AI platform
// APIs. All endpoint methods serialize their request values to JSON, issue
// the HTTP call through the configured http.Client, and decode the response
// into typed models.
//
// Client is stateless and safe for concurrent use.
type Client struct {
	config Config
}

// New creates a new client with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	cfg := Config{
		APIKey:     core.NewSecret(apiKey),
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		Telemetry:  core.NoopTelemetryHook{},
		Retry:      core.DefaultRetryPolicy(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{config: cfg}
}

// NewFromEnv creates a client from the VIREO_API_KEY environment variable,
// falling back to OPENAI_API_KEY:
//
//	client, err := vireo.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...Option) (*Client, error) {
	apiKey := os.Getenv(DefaultAPIKeyEnvVar)
	if apiKey == "" {
		apiKey = os.Getenv(FallbackAPIKeyEnvVar)
	}
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}
	return New(apiKey, opts...), nil
}

// buildHeaders constructs the HTTP headers for an API request.
func (c *Client) buildHeaders() http.Header {
	headers := make(http.Header)

	headers.Set("Authorization", "Bearer "+c.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")

	if c.config.OrgID != "" {
		headers.Set("OpenAI-Organization", c.config.OrgID)
	}
	if c.config.ProjectID != "" {
		headers.Set("OpenAI-Project", c.config.ProjectID)
	}

	for key, values := range c.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

// buildHeadersWithBeta returns headers with the assistants beta header set.
// The threads, runs, messages, and assistants endpoint groups require it.
func (c *Client) buildHeadersWithBeta() http.Header {
	headers := c.buildHeaders()
	headers.Set("OpenAI-Beta", "assistants=v2")
	return headers
}

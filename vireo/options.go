package vireo

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vireo-ai/vireo-go/core"
)

// DefaultBaseURL is the default API base URL.
const DefaultBaseURL = "https://api.openai.com/v1"

// Config holds configuration for the client.
type Config struct {
	// APIKey is the API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to DefaultBaseURL. Any
	// OpenAI-compatible endpoint works here.
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to http.DefaultClient.
	// Timeouts and transport-level concerns belong to this client.
	HTTPClient *http.Client

	// OrgID is the optional organization ID header value.
	OrgID string

	// ProjectID is the optional project ID header value.
	ProjectID string

	// Headers contains optional extra headers to include in requests.
	Headers http.Header

	// Telemetry receives request lifecycle events. Defaults to a no-op hook.
	Telemetry core.TelemetryHook

	// Retry controls retry behavior for transient transport errors.
	// Defaults to core.DefaultRetryPolicy(). Codec errors never retry.
	Retry core.RetryPolicy
}

// Option configures the client.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithOrgID sets the organization ID header.
func WithOrgID(org string) Option {
	return func(c *Config) {
		c.OrgID = org
	}
}

// WithProjectID sets the project ID header.
func WithProjectID(project string) Option {
	return func(c *Config) {
		c.ProjectID = project
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithTelemetry sets the telemetry hook.
func WithTelemetry(h core.TelemetryHook) Option {
	return func(c *Config) {
		if h != nil {
			c.Telemetry = h
		}
	}
}

// WithLogger sets a zerolog-backed telemetry hook.
func WithLogger(logger zerolog.Logger) Option {
	return WithTelemetry(core.NewLogHook(logger))
}

// WithRetryPolicy sets the retry policy for transient transport errors.
func WithRetryPolicy(r core.RetryPolicy) Option {
	return func(c *Config) {
		if r != nil {
			c.Retry = r
		}
	}
}

package helix

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Helix API root
	DefaultBaseURL = "https://api.twitch.tv/helix"
	// DefaultAuthURL is the OAuth2 API root
	DefaultAuthURL = "https://id.twitch.tv/oauth2"

	defaultTimeout          = 30 * time.Second
	defaultBatchConcurrency = 4
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL          string
	authURL          string
	timeout          time.Duration
	httpClient       *http.Client
	tokenSource      oauth2.TokenSource
	userAgent        string
	batchConcurrency int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:          DefaultBaseURL,
		authURL:          DefaultAuthURL,
		timeout:          defaultTimeout,
		batchConcurrency: defaultBatchConcurrency,
	}
}

// WithBaseURL overrides the Helix API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithAuthURL overrides the OAuth2 API root.
func WithAuthURL(authURL string) Option {
	return func(o *clientOptions) {
		o.authURL = authURL
	}
}

// WithTimeout sets the HTTP client timeout.
// Ignored when a custom HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTokenSource sets the source of bearer tokens.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *clientOptions) {
		o.tokenSource = ts
	}
}

// WithAccessToken uses a fixed bearer token.
func WithAccessToken(token string) Option {
	return func(o *clientOptions) {
		o.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithBatchConcurrency limits how many chunks of an oversized lookup are
// fetched at once.
func WithBatchConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.batchConcurrency = n
		}
	}
}

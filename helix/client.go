package helix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Client represents a Helix API client
type Client struct {
	clientID    string
	baseURL     string
	authURL     string
	userAgent   string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	batchLimit  int
	logger      zerolog.Logger

	games   *GameAPI
	users   *UserAPI
	streams *StreamAPI
}

// NewClient creates a new Helix client. No network call is made.
func NewClient(clientID string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		clientID:    clientID,
		baseURL:     strings.TrimRight(o.baseURL, "/"),
		authURL:     strings.TrimRight(o.authURL, "/"),
		userAgent:   o.userAgent,
		httpClient:  httpClient,
		tokenSource: o.tokenSource,
		batchLimit:  o.batchConcurrency,
		logger:      logger,
	}
	c.games = &GameAPI{client: c, caller: c}
	c.users = &UserAPI{client: c, caller: c}
	c.streams = &StreamAPI{client: c, caller: c}

	return c, nil
}

// Games returns the game API group
func (c *Client) Games() *GameAPI { return c.games }

// Users returns the user API group
func (c *Client) Users() *UserAPI { return c.users }

// Streams returns the stream API group
func (c *Client) Streams() *StreamAPI { return c.streams }

// ClientID returns the application client ID sent with every call
func (c *Client) ClientID() string { return c.clientID }

func (c *Client) rootFor(t APICallType) (string, error) {
	switch t {
	case APICallTypeHelix:
		return c.baseURL, nil
	case APICallTypeAuth:
		return c.authURL, nil
	default:
		return "", fmt.Errorf("unknown API call type %d", t)
	}
}

// CallAPI performs a single call and decodes the JSON response into out.
// out may be nil when the response body is not needed.
func (c *Client) CallAPI(ctx context.Context, opts CallOptions, out any) error {
	root, err := c.rootFor(opts.Type)
	if err != nil {
		return err
	}

	requestURL := root + "/" + strings.TrimLeft(opts.URL, "/")
	if len(opts.Query) > 0 {
		requestURL += "?" + opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, opts.method(), requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.tokenSource != nil && opts.Type == APICallTypeHelix {
		token, err := c.tokenSource.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("api", opts.Type.String()).
		Str("method", req.Method).
		Str("url", opts.URL).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("Helix API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// newAPIError builds an APIError, preferring the message from the error body
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}

	return apiErr
}

// TestConnection verifies the credentials by requesting a single top game
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.games.GetTopGames(ctx, Pagination{Limit: 1})
	if err != nil {
		return err
	}

	c.logger.Debug().Msg("Successfully connected to Helix")
	return nil
}

package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

const (
	// DefaultLimit is the number of recommendations requested when no limit is given.
	DefaultLimit = 10

	// previewLength is the number of characters of a body kept in error previews.
	previewLength = 100

	// maxBodyRead bounds how much of an unexpected body is kept for previews.
	maxBodyRead = 64 * 1024

	// maxTunnelScan bounds how much of a non-JSON body is searched for tunnel
	// signatures. A signature past this offset is reported as an invalid format.
	maxTunnelScan = 4 << 20

	// scanChunk is the read size used while searching for tunnel signatures.
	scanChunk = 32 * 1024
)

// Fetcher retrieves per-user analytics payloads.
type Fetcher interface {
	// GetRecommendations fetches up to limit recommendations for userID.
	GetRecommendations(ctx context.Context, userID string, limit int) (*model.RecommendationsResponse, error)

	// GetDislikes fetches the foods userID tends to leave uneaten.
	GetDislikes(ctx context.Context, userID string) (*model.DislikesResponse, error)
}

// Client talks to the analytics backend over HTTP.
// Each call is an independent round trip: no retries, no caching.
type Client struct {
	origin           string
	httpClient       *http.Client
	tunnelSignatures []string
	logger           zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTunnelSignatures sets the substrings that identify a tunnel gate page.
func WithTunnelSignatures(signatures ...string) Option {
	return func(c *Client) {
		c.tunnelSignatures = c.tunnelSignatures[:0]
		for _, s := range signatures {
			if s = strings.TrimSpace(s); s != "" {
				c.tunnelSignatures = append(c.tunnelSignatures, strings.ToLower(s))
			}
		}
	}
}

// NewClient creates a client for the backend at origin (scheme://host[:port]).
func NewClient(origin string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")

	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid backend origin %q: %w", origin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend origin %q: must be an absolute http(s) URL", origin)
	}

	c := &Client{
		origin:           origin,
		httpClient:       &http.Client{},
		tunnelSignatures: []string{"serveo"},
		logger:           logger.With().Str("component", "analytics-client").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Origin returns the backend origin the client was configured with.
func (c *Client) Origin() string {
	return c.origin
}

// GetRecommendations fetches personalised recommendations for a user.
// A limit of zero or less requests DefaultLimit items. The success flag of
// the payload is returned as-is.
func (c *Client) GetRecommendations(ctx context.Context, userID string, limit int) (*model.RecommendationsResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	u := c.userURL(userID, "recommendations") + "?limit=" + strconv.Itoa(limit)

	var out model.RecommendationsResponse
	if err := c.get(ctx, "recommendations", u, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetDislikes fetches the foods a user dislikes based on waste patterns.
// The success flag of the payload is returned as-is.
func (c *Client) GetDislikes(ctx context.Context, userID string) (*model.DislikesResponse, error) {
	u := c.userURL(userID, "dislikes")

	var out model.DislikesResponse
	if err := c.get(ctx, "dislikes", u, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) userURL(userID, resource string) string {
	return c.origin + "/api/user/" + url.PathEscape(userID) + "/" + resource
}

// get performs a GET and decodes a JSON body into out, classifying every
// failure into the package error taxonomy.
func (c *Client) get(ctx context.Context, resource, u string, out any) error {
	logger := c.logger.With().Str("resource", resource).Str("url", u).Logger()
	logger.Debug().Msg("fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("fetch error")
		return &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
		logger.Error().
			Int("status", resp.StatusCode).
			Str("body", preview(body)).
			Msg("error response")
		return &HTTPStatusError{StatusCode: resp.StatusCode, Preview: preview(body)}
	}

	if !isJSONMediaType(contentType) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
		logger.Error().Str("content_type", contentType).Msg("expected JSON but received another content type")

		rest := io.LimitReader(resp.Body, maxTunnelScan-int64(len(body)))
		if c.isTunnelInterstitial(contentType, io.MultiReader(bytes.NewReader(body), rest)) {
			return &TunnelInterstitialError{Origin: c.origin, ContentType: contentType}
		}
		return &InvalidResponseFormatError{ContentType: contentType, Preview: preview(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &TransportError{URL: u, Err: ctxErr}
		}
		logger.Error().Err(err).Msg("failed to decode response")
		return &InvalidResponseFormatError{ContentType: contentType, Err: err}
	}

	return nil
}

// isTunnelInterstitial reports whether a non-JSON response is a tunnel gate page.
func (c *Client) isTunnelInterstitial(contentType string, body io.Reader) bool {
	lowerType := strings.ToLower(contentType)
	for _, sig := range c.tunnelSignatures {
		if strings.Contains(lowerType, sig) {
			return true
		}
	}
	return containsSignature(body, c.tunnelSignatures)
}

// containsSignature searches r chunk by chunk for any of the lower-case
// signatures, carrying the tail of each chunk over so that a match spanning
// two reads is still found.
func containsSignature(r io.Reader, signatures []string) bool {
	longest := 0
	for _, sig := range signatures {
		longest = max(longest, len(sig))
	}
	if longest == 0 {
		return false
	}

	buf := make([]byte, scanChunk)
	var carry []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			window := append(carry, buf[:n]...)
			lower := strings.ToLower(string(window))
			for _, sig := range signatures {
				if strings.Contains(lower, sig) {
					return true
				}
			}
			keep := min(longest-1, len(window))
			carry = append(carry[:0:0], window[len(window)-keep:]...)
		}
		if err != nil {
			return false
		}
	}
}

// isJSONMediaType reports whether a Content-Type header names a JSON media type
// (application/json or any +json structured syntax suffix).
func isJSONMediaType(contentType string) bool {
	if contentType == "" {
		return false
	}

	// A malformed parameter still yields the declared media type.
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// preview returns at most previewLength characters of body without splitting a rune.
func preview(body []byte) string {
	if utf8.RuneCount(body) <= previewLength {
		return string(body)
	}

	n := 0
	for i := range string(body) {
		if n == previewLength {
			return string(body[:i])
		}
		n++
	}
	return string(body)
}

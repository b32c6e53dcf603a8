package analytics

import (
	"context"
	"errors"
	"fmt"
)

// ErrApplicationFailure is reported when the backend answers with well-formed
// JSON whose success flag is false.
var ErrApplicationFailure = errors.New("backend reported success=false")

// TransportError is returned when no HTTP response was received
// (DNS failure, connection refused, timeout).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned when the backend answers with a non-2xx status.
// Preview holds the first characters of the response body.
type HTTPStatusError struct {
	StatusCode int
	Preview    string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Preview)
}

// TunnelInterstitialError is returned when a development tunnel served its
// HTML gate page instead of the backend response. A one-time visit to the
// backend origin in a browser clears it.
type TunnelInterstitialError struct {
	Origin      string
	ContentType string
}

func (e *TunnelInterstitialError) Error() string {
	return fmt.Sprintf("Tunnel Interstitial: Please visit %s in a browser first.", e.Origin)
}

// InvalidResponseFormatError is returned when a successful response is not JSON,
// or declares JSON but cannot be decoded.
type InvalidResponseFormatError struct {
	ContentType string
	Preview     string
	Err         error
}

func (e *InvalidResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Invalid response format from server: %v", e.Err)
	}
	return fmt.Sprintf("Invalid response format from server (content-type %q)", e.ContentType)
}

func (e *InvalidResponseFormatError) Unwrap() error {
	return e.Err
}

// Kind classifies the outcome of a fetch.
type Kind string

const (
	KindOK                 Kind = "ok"
	KindApplicationFailure Kind = "application_failure"
	KindTransport          Kind = "transport"
	KindHTTPStatus         Kind = "http_status"
	KindTunnelInterstitial Kind = "tunnel_interstitial"
	KindInvalidFormat      Kind = "invalid_format"
	KindCanceled           Kind = "canceled"
)

// Classify maps an error returned by the client onto a Kind.
// A nil error is KindOK. Errors outside the taxonomy are treated as transport
// failures so that callers never see an unclassified outcome.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}

	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	var (
		statusErr *HTTPStatusError
		tunnelErr *TunnelInterstitialError
		formatErr *InvalidResponseFormatError
		transErr  *TransportError
	)

	switch {
	case errors.Is(err, ErrApplicationFailure):
		return KindApplicationFailure
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.As(err, &tunnelErr):
		return KindTunnelInterstitial
	case errors.As(err, &formatErr):
		return KindInvalidFormat
	case errors.As(err, &transErr):
		return KindTransport
	default:
		return KindTransport
	}
}

package analytics

import "errors"

// Message returns the text shown to a user for an outcome.
func Message(kind Kind, err error) string {
	switch kind {
	case KindOK:
		return ""
	case KindTransport:
		return "Unable to connect to the server. Check your connection and pull to refresh."
	case KindHTTPStatus:
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			return statusErr.Error()
		}
		return "The server returned an error."
	case KindTunnelInterstitial:
		return "Tunnel Interstitial: Please visit the backend URL in a browser first, then pull to refresh."
	case KindInvalidFormat:
		return "Invalid response format from server."
	case KindApplicationFailure:
		return "Failed to retrieve data."
	case KindCanceled:
		return "Request cancelled."
	default:
		return "Something went wrong."
	}
}

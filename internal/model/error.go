package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidQuery            = "INVALID_QUERY"
	ErrCodeInvalidDietaryTag       = "INVALID_DIETARY_TAG"
	ErrCodeLocationNotFound        = "LOCATION_NOT_FOUND"
	ErrCodeUserRequired            = "USER_REQUIRED"
	ErrCodeInvalidUserID           = "INVALID_USER_ID"
	ErrCodeInvalidCatalog          = "INVALID_CATALOG"
	ErrCodeApplicationFailure      = "APPLICATION_FAILURE"
	ErrCodeUpstreamUnavailable     = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamStatus          = "UPSTREAM_STATUS"
	ErrCodeTunnelInterstitial      = "TUNNEL_INTERSTITIAL"
	ErrCodeInvalidUpstreamResponse = "INVALID_UPSTREAM_RESPONSE"
	ErrCodeUnauthorised            = "UNAUTHORIZED"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrLocationNotFound  = NewDomainError(ErrCodeLocationNotFound, "Location not found")
	ErrInvalidDietaryTag = NewDomainError(ErrCodeInvalidDietaryTag, "Dietary tag must be one of Vegan, Vegetarian, Gluten-Free or Halal")
	ErrUserRequired      = NewDomainError(ErrCodeUserRequired, "A user identifier is required")
	ErrInvalidCatalog    = NewDomainError(ErrCodeInvalidCatalog, "Catalogue data is invalid")
)

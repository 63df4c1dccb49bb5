// Package i18n provides internationalization support for the pallet service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationOrderLines indicates an invalid order lines payload.
	ErrKeyValidationOrderLines = "error.validation.order_lines"
	// ErrKeyOrderEmpty indicates an order with no packable items.
	ErrKeyOrderEmpty = "error.order_empty"
	// ErrKeyOrderNotFound indicates the referenced order does not exist.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyValidationExists indicates the order was already validated.
	ErrKeyValidationExists = "error.validation_exists"
	// ErrKeyOrderSystemUnavailable indicates the upstream order system failed.
	ErrKeyOrderSystemUnavailable = "error.order_system_unavailable"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPacked indicates a successful pallet configuration.
	SuccessKeyOrderPacked = "success.order_packed"
	// SuccessKeyOrderValidated indicates a successful shipment validation.
	SuccessKeyOrderValidated = "success.order_validated"
)

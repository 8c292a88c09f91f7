package defs

const (
	// ErrNotFound returned when the application is unable to find the record it is looking for.
	ErrNotFound = "not-found"

	// ErrBadFrameData returned when a connection sends a frame that cannot be unmarshaled.
	ErrBadFrameData = "frame-error"

	// ErrBadRouteConfig returned when a mounted route's pattern fails to compile.
	ErrBadRouteConfig = "invalid-route-config"

	// ErrBadRedisResponse returned when unable to parse data from redis response.
	ErrBadRedisResponse = "storage-error"

	// ErrInvalidDeadLetterChannel returned when publishing to a channel that does not exist.
	ErrInvalidDeadLetterChannel = "invalid-channel"

	// ErrEmptyPayload returned by handlers that require a request payload.
	ErrEmptyPayload = "empty-payload"

	// ErrServerError returned when the application fails for reasons it will not elaborate on.
	ErrServerError = "server-error"
)

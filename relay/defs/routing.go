package defs

const (
	// PingRoute is the pattern for the builtin ping route.
	PingRoute = "^/ping$"

	// SystemRoute is the pattern for the builtin system info route.
	SystemRoute = "^/system$"

	// EchoRoute is the pattern for the builtin echo route; the tag is returned with the echoed payload.
	EchoRoute = "^/echo/(?P<tag>[\\d\\w\\-]+)$"
)

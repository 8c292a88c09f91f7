package defs

const (
	// DefaultPort is the port that the application will listen on unless otherwise specified.
	DefaultPort = "8080"

	// DefaultRedisURI is the default redis connection string.
	DefaultRedisURI = "redis://0.0.0.0:6379"

	// DefaultHostname is the default hostname that will be bound to.
	DefaultHostname = "0.0.0.0"

	// DefaultFrameReadBufferSize is the read buffer size used when upgrading connections.
	DefaultFrameReadBufferSize = 1024

	// DefaultFrameWriteBufferSize is the write buffer size used when upgrading connections.
	DefaultFrameWriteBufferSize = 1024

	// DefaultRegistrationBacklog is the buffer size of the connection registration stream.
	DefaultRegistrationBacklog = 100
)

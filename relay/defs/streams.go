package defs

const (
	// DeadLetterChannelName is the name of the stream that unmatched request frames are published to
	DeadLetterChannelName = "chan:dead-letter"
)

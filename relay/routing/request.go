package routing

import "io"
import "context"
import "net/url"

import "github.com/relaysh/relay.api/relay/defs"

// Request is the pre-parsed request value handed to route handlers. It packages the url parameters
// extracted during matching, the duplex streamer the request arrived on and the per-connection state
// handle shared by every request dispatched on the same connection.
type Request[S any] struct {
	url.Values
	defs.Streamer

	Context   context.Context
	State     *S
	RequestID string
	Method    string
	Path      string
	Body      io.Reader
}

// Write opens the next writer on the underlying streamer and sends the provided data as a single frame.
func (request *Request[S]) Write(data []byte) error {
	writer, e := request.NextWriter(defs.TextWriter)

	if e != nil {
		return e
	}

	defer writer.Close()

	_, e = writer.Write(data)
	return e
}

package routes

import "fmt"
import "time"
import "io/ioutil"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/routing"

// SessionState is the per-connection state shared by the builtin route handlers.
type SessionState struct {
	Served int
}

// Ping writes a small text frame back so clients can verify their connection end to end.
func Ping(runtime *routing.Request[SessionState]) error {
	runtime.State.Served++
	return runtime.Write([]byte("pong"))
}

// SystemInfo writes the current time and the count of requests served on this connection.
func SystemInfo(runtime *routing.Request[SessionState]) error {
	runtime.State.Served++
	payload := fmt.Sprintf("time[%s] served[%d]", time.Now().Format(time.RFC3339), runtime.State.Served)
	return runtime.Write([]byte(payload))
}

// Echo writes the request payload back prefixed with the tag captured from the path; payloads are
// required here, an empty one is a handler error.
func Echo(runtime *routing.Request[SessionState]) error {
	data, e := ioutil.ReadAll(runtime.Body)

	if e != nil {
		return e
	}

	if len(data) == 0 {
		return fmt.Errorf(defs.ErrEmptyPayload)
	}

	runtime.State.Served++
	response := fmt.Sprintf("%s: %s", runtime.Get("tag"), data)
	return runtime.Write([]byte(response))
}

package app

import "net/http"
import "github.com/satori/go.uuid"
import "github.com/gorilla/websocket"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/logging"
import "github.com/relaysh/relay.api/relay/security"
import "github.com/relaysh/relay.api/relay/socket"

// NewServerRuntime returns a runtime whose registrations will be sent into the provided stream.
func NewServerRuntime(registrations chan<- *socket.Connection) *ServerRuntime {
	logger := logging.New(defs.ServerRuntimeLogPrefix, logging.Cyan)

	upgrader := GorillaUpgrader{websocket.Upgrader{
		ReadBufferSize:  defs.DefaultFrameReadBufferSize,
		WriteBufferSize: defs.DefaultFrameWriteBufferSize,
		CheckOrigin:     security.AnyOrigin,
	}}

	return &ServerRuntime{&upgrader, logger, registrations}
}

// ServerRuntime implements the http.Handler interface used during application startup to open the
// http server. Every inbound request is upgraded to a websocket and handed off to the dispatch
// layer over the registration stream; request handling itself happens there, not here.
type ServerRuntime struct {
	WebsocketUpgrader
	*logging.Logger

	Registrations chan<- *socket.Connection
}

// ServeHTTP implementation of the http.Handler interface method
func (runtime *ServerRuntime) ServeHTTP(responseWriter http.ResponseWriter, request *http.Request) {
	runtime.Infof("%s %s %s", request.Method, request.URL.Path, request.RemoteAddr)

	streamer, e := runtime.UpgradeWebsocket(responseWriter, request, nil)

	if e != nil {
		runtime.Warnf("unable to upgrade inbound connection: %s", e.Error())
		return
	}

	runtime.Registrations <- socket.NewConnection(streamer, uuid.NewV4())
}

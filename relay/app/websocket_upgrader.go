package app

import "net/http"
import "github.com/gorilla/websocket"
import "github.com/relaysh/relay.api/relay/defs"

// WebsocketUpgrader defines an interface that upgrades an http request to a streamer interface.
type WebsocketUpgrader interface {
	UpgradeWebsocket(http.ResponseWriter, *http.Request, http.Header) (defs.Streamer, error)
}

// GorillaUpgrader adapts the gorilla websocket upgrader to the WebsocketUpgrader interface.
type GorillaUpgrader struct {
	websocket.Upgrader
}

// UpgradeWebsocket is the WebsocketUpgrader implementation.
func (upgrader *GorillaUpgrader) UpgradeWebsocket(responseWriter http.ResponseWriter, request *http.Request, headers http.Header) (defs.Streamer, error) {
	return upgrader.Upgrade(responseWriter, request, headers)
}

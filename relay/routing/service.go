package routing

import "github.com/relaysh/relay.api/relay/logging"

// RouteService is the per-connection dispatcher for a single route: it accepts one request at a
// time and folds whatever the handler returns into a uniform "handled" completion. A handler error
// is surfaced through the logger and deliberately not propagated - a bad handler invocation must
// never tear down the connection it arrived on.
type RouteService[S any] struct {
	logging.LeveledLogger

	methods methodSet
	handler Handler[S]
}

// Ready always reports true; the service applies no admission control of its own.
func (service *RouteService[S]) Ready() bool {
	return true
}

// Accepts reports whether the route behind this service accepts the provided method. The method
// set is carried as metadata only; Call trusts its caller to have matched the request already.
func (service *RouteService[S]) Accepts(method string) bool {
	return service.methods.accepts(method)
}

// Call invokes the handler with the request. Handler errors are logged at error severity and
// swallowed; the return value is reserved for infrastructural failures and is always nil here.
func (service *RouteService[S]) Call(request *Request[S]) error {
	if e := service.handler(request); e != nil {
		service.Errorf("error in request handler: %s", e.Error())
	}

	return nil
}

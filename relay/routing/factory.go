package routing

import "github.com/relaysh/relay.api/relay/logging"

// RouteFactory is the cold, reusable template created from a Route; the application holds one per
// mounted route for its whole lifetime and activates it once per connection. Nothing on the factory
// is mutated after Create, so activations may happen concurrently.
type RouteFactory[S any] struct {
	logging.LeveledLogger

	methods methodSet
	handler Handler[S]
}

// Accepts reports whether the mounted route accepts the provided method; an empty method set
// accepts everything. This is consulted by the route table during matching, never during dispatch.
func (factory *RouteFactory[S]) Accepts(method string) bool {
	return factory.methods.accepts(method)
}

// NewService activates a service for a single connection. The returned service carries independent
// copies of the factory's dispatch state; the error return exists to satisfy the activation
// contract and is always nil here.
func (factory *RouteFactory[S]) NewService() (*RouteService[S], error) {
	service := &RouteService[S]{
		LeveledLogger: factory.LeveledLogger,
		methods:       factory.methods.clone(),
		handler:       factory.handler,
	}

	return service, nil
}

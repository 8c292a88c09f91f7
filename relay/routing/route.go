package routing

import "net/http"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/logging"

// methodSet is the ordered list of verbs a route declares itself willing to accept; an empty set
// accepts every method.
type methodSet []string

func (set methodSet) accepts(method string) bool {
	if len(set) == 0 {
		return true
	}

	for _, candidate := range set {
		if candidate == method {
			return true
		}
	}

	return false
}

func (set methodSet) clone() methodSet {
	out := make(methodSet, len(set))
	copy(out, set)
	return out
}

// RouteBuilder accumulates a path pattern and accepted methods before a handler is attached.
type RouteBuilder[S any] struct {
	pattern string
	methods methodSet
}

// Build starts a builder for the provided pattern with no method filter.
func Build[S any](path string) *RouteBuilder[S] {
	return &RouteBuilder[S]{pattern: path}
}

// Get starts a builder pre-seeded to accept GET requests.
func Get[S any](path string) *RouteBuilder[S] {
	return Build[S](path).Method(http.MethodGet)
}

// Post starts a builder pre-seeded to accept POST requests.
func Post[S any](path string) *RouteBuilder[S] {
	return Build[S](path).Method(http.MethodPost)
}

// Put starts a builder pre-seeded to accept PUT requests.
func Put[S any](path string) *RouteBuilder[S] {
	return Build[S](path).Method(http.MethodPut)
}

// Delete starts a builder pre-seeded to accept DELETE requests.
func Delete[S any](path string) *RouteBuilder[S] {
	return Build[S](path).Method(http.MethodDelete)
}

// Method appends another accepted verb; it may be repeated, ordering only matters for membership.
func (builder *RouteBuilder[S]) Method(verb string) *RouteBuilder[S] {
	builder.methods = append(builder.methods, verb)
	return builder
}

// To finishes the builder, binding the accumulated pattern and methods to the provided handler.
func (builder *RouteBuilder[S]) To(handler Handler[S]) *Route[S] {
	return &Route[S]{pattern: builder.pattern, methods: builder.methods, handler: handler}
}

// Route is the frozen record of pattern + methods + handler produced by a builder. It exists only
// long enough to be registered; Create converts it into the factory the application holds on to.
type Route[S any] struct {
	pattern string
	methods methodSet
	handler Handler[S]
}

// Path returns the registered pattern. Matching against it is the application route table's job,
// the route only stores the string.
func (route *Route[S]) Path() string {
	return route.pattern
}

// Create converts the route into a RouteFactory carrying its own copies of the method set and handler.
func (route *Route[S]) Create() *RouteFactory[S] {
	return &RouteFactory[S]{
		LeveledLogger: logging.New(defs.RouteServiceLogPrefix, logging.Magenta),
		methods:       route.methods.clone(),
		handler:       route.handler,
	}
}

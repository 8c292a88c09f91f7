package routing

// Handler much like http.HandlerFunc, these are the user-supplied functions dispatched by a RouteService;
// a nil return marks the request handled, anything else is logged and swallowed by the service.
type Handler[S any] func(*Request[S]) error

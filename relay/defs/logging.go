package defs

import "log"

const (
	// DebugLogLevelTag is used for debugf logger calls
	DebugLogLevelTag = "debug"

	// InfoLogLevelTag is used for infof logger calls
	InfoLogLevelTag = "info"

	// WarnLogLevelTag is used for warnf logger calls
	WarnLogLevelTag = "warn"

	// ErrorLogLevelTag is used for errorf logger calls
	ErrorLogLevelTag = "error"

	// MainLogPrefix is the log prefix for the main go routine
	MainLogPrefix = "[relay api] "

	// ServerRuntimeLogPrefix is the log prefix for the http server runtime
	ServerRuntimeLogPrefix = "[server runtime] "

	// RouteServiceLogPrefix is the log prefix used by per-connection route services
	RouteServiceLogPrefix = "[route service] "

	// ConnDispatcherLogPrefix is the log prefix for the connection dispatcher
	ConnDispatcherLogPrefix = "[conn dispatcher] "

	// DeadLetterLogPrefix is the log prefix for the dead letter processor
	DeadLetterLogPrefix = "[dead letter] "

	// SocketConnectionLogPrefix is the log prefix for socket connections
	SocketConnectionLogPrefix = "[socket connection] "

	// RegistryLogPrefix is the log prefix for the connection registry
	RegistryLogPrefix = "[connection registry] "

	// DefaultLoggerFlags is the bitmask used to create default logging
	DefaultLoggerFlags = log.Ldate | log.Ltime
)

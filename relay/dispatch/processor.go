package dispatch

import "io"
import "sync"

// KillSwitch is closed by the main goroutine to stop every running processor.
type KillSwitch chan struct{}

// WriteStream defines a send-only channel for io.Reader types
type WriteStream chan<- io.Reader

// ReadStream defines a receive-only channel for io.Reader types
type ReadStream <-chan io.Reader

// Processor defines the background workers started by the main goroutine.
type Processor interface {
	Start(*sync.WaitGroup, KillSwitch)
}

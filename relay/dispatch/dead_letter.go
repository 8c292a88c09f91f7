package dispatch

import "sync"
import "io/ioutil"

import "github.com/golang/protobuf/proto"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/interchange"
import "github.com/relaysh/relay.api/relay/logging"

// NewDeadLetterProcessor is responsible for draining the stream of unroutable frames
func NewDeadLetterProcessor(letters ReadStream) *DeadLetterProcessor {
	logger := logging.New(defs.DeadLetterLogPrefix, logging.Blue)
	return &DeadLetterProcessor{logger, letters}
}

// DeadLetterProcessor receives frames that matched no mounted route and logs what it sees so
// misbehaving clients are visible without ever disturbing their connections.
type DeadLetterProcessor struct {
	*logging.Logger
	letters ReadStream
}

// Start is the Processor#Start implementation
func (processor *DeadLetterProcessor) Start(wg *sync.WaitGroup, stop KillSwitch) {
	defer wg.Done()
	running := true

	processor.Infof("dead letter processor starting")

	for running {
		select {
		case message, ok := <-processor.letters:
			if ok != true {
				return
			}

			data, e := ioutil.ReadAll(message)

			if e != nil {
				processor.Warnf("unable to read dead letter: %s", e.Error())
				continue
			}

			frame := interchange.RequestFrame{}

			if e := proto.Unmarshal(data, &frame); e != nil {
				processor.Warnf("unable to unmarshal dead letter: %s", e.Error())
				continue
			}

			processor.Infof("unroutable frame %s '%s' (request[%s])", frame.GetMethod(), frame.GetPath(), frame.GetRequestID())
		case <-stop:
			processor.Warnf("received kill signal, breaking")
			running = false
		}
	}
}

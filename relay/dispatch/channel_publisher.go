package dispatch

import "io"
import "fmt"
import "github.com/relaysh/relay.api/relay/defs"

// ChannelPublisher defines an interface that sends an io.Reader interface to a consumer
type ChannelPublisher interface {
	PublishReader(string, io.Reader) error
}

// ChannelStore defines a map of channel names to the channel that will send/receive readers
type ChannelStore map[string]chan io.Reader

// PublishReader publishes an instance of an io.Reader to a channel it owns.
func (store *ChannelStore) PublishReader(name string, reader io.Reader) error {
	if store == nil {
		return fmt.Errorf(defs.ErrInvalidDeadLetterChannel)
	}

	c, ok := (*store)[name]

	if ok != true {
		return fmt.Errorf(defs.ErrInvalidDeadLetterChannel)
	}

	c <- reader

	return nil
}

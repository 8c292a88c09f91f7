package socket

import "io"
import "github.com/satori/go.uuid"
import "github.com/golang/protobuf/proto"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/logging"

// RegistrationStream is the channel freshly upgraded connections are delivered on, from the server
// runtime to the dispatch layer.
type RegistrationStream chan *Connection

// NewConnection returns a connection whose underlying io is managed through a streamer interface
func NewConnection(stream defs.Streamer, id uuid.UUID) *Connection {
	logger := logging.New(defs.SocketConnectionLogPrefix, logging.Red)
	return &Connection{logger, stream, id}
}

// Connection pairs the duplex streamer a client is attached on with the unique id allocated for it
type Connection struct {
	logging.LeveledLogger
	defs.Streamer

	id uuid.UUID
}

// Send serializes the provided message and writes it into the next available writer as one frame
func (connection *Connection) Send(message proto.Message) error {
	data, e := proto.Marshal(message)

	if e != nil {
		return e
	}

	writer, e := connection.NextWriter(defs.TextWriter)

	if e != nil {
		return e
	}

	defer writer.Close()

	if _, e := writer.Write(data); e != nil {
		connection.Warnf("unable to write frame to connection[%s]: %s", connection.GetID(), e.Error())
		return e
	}

	return nil
}

// Receive returns the next available reader from the underlying streamer interface
func (connection *Connection) Receive() (io.Reader, error) {
	_, reader, e := connection.NextReader()
	return reader, e
}

// GetID returns the unique identifier created for this connection as a string
func (connection *Connection) GetID() string {
	return connection.id.String()
}

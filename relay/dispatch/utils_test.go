package dispatch

import "io"
import "log"
import "bytes"
import "testing"

import "github.com/golang/protobuf/proto"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/interchange"
import "github.com/relaysh/relay.api/relay/logging"

func newTestLogger() *logging.Logger {
	out := log.New(bytes.NewBuffer([]byte{}), "", 0)
	return &logging.Logger{Logger: out}
}

type testWriteCloser struct {
	*bytes.Buffer
	closes int
}

func (writer *testWriteCloser) Close() error {
	writer.closes++
	return nil
}

type testStreamer struct {
	writers []*testWriteCloser
	readers []io.Reader
	closes  int
}

func (streamer *testStreamer) NextWriter(int) (io.WriteCloser, error) {
	writer := &testWriteCloser{Buffer: bytes.NewBuffer([]byte{})}
	streamer.writers = append(streamer.writers, writer)
	return writer, nil
}

func (streamer *testStreamer) Close() error {
	streamer.closes++
	return nil
}

func (streamer *testStreamer) NextReader() (int, io.Reader, error) {
	if len(streamer.readers) == 0 {
		return 0, nil, io.EOF
	}

	reader := streamer.readers[0]
	streamer.readers = streamer.readers[1:]
	return defs.TextWriter, reader, nil
}

type testIndex struct {
	inserted     []string
	removed      []string
	insertErrors []error
}

func (index *testIndex) Insert(id string) error {
	if len(index.insertErrors) >= 1 {
		return index.insertErrors[0]
	}

	index.inserted = append(index.inserted, id)
	return nil
}

func (index *testIndex) Remove(id string) error {
	index.removed = append(index.removed, id)
	return nil
}

func (index *testIndex) Exists(id string) bool {
	for _, candidate := range index.inserted {
		if candidate == id {
			return true
		}
	}

	return false
}

func (index *testIndex) List() ([]string, error) {
	return index.inserted, nil
}

func frameReader(t *testing.T, requestID string, method string, path string, payload []byte) io.Reader {
	frame := interchange.RequestFrame{
		RequestID: requestID,
		Method:    method,
		Path:      path,
		Payload:   payload,
	}

	data, e := proto.Marshal(&frame)

	if e != nil {
		t.Fatalf("unable to marshal test frame: %s", e.Error())
	}

	return bytes.NewReader(data)
}

package routing

import "io"
import "log"
import "bytes"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/logging"

func newTestLogger() (*logging.Logger, *bytes.Buffer) {
	out := bytes.NewBuffer([]byte{})
	logger := log.New(out, "", 0)
	return &logging.Logger{Logger: logger}, out
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
	writers      []*testWriteCloser
	writerErrors []error
	readers      []io.Reader
	closes       int
}

func (streamer *testStreamer) NextWriter(int) (io.WriteCloser, error) {
	if len(streamer.writerErrors) >= 1 {
		e := streamer.writerErrors[0]
		streamer.writerErrors = streamer.writerErrors[1:]
		return nil, e
	}

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

package routes

import "io"
import "bytes"
import "context"
import "net/url"
import "testing"
import "strings"
import "net/http"

import "github.com/franela/goblin"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/routing"

type routeWriteCloser struct {
	*bytes.Buffer
	closes int
}

func (writer *routeWriteCloser) Close() error {
	writer.closes++
	return nil
}

type routeStreamer struct {
	writers []*routeWriteCloser
}

func (streamer *routeStreamer) NextWriter(int) (io.WriteCloser, error) {
	writer := &routeWriteCloser{Buffer: bytes.NewBuffer([]byte{})}
	streamer.writers = append(streamer.writers, writer)
	return writer, nil
}

func (streamer *routeStreamer) Close() error {
	return nil
}

func (streamer *routeStreamer) NextReader() (int, io.Reader, error) {
	return 0, nil, io.EOF
}

type systemRouteScaffold struct {
	streamer *routeStreamer
	state    *SessionState
}

func (s *systemRouteScaffold) Reset() {
	s.streamer = &routeStreamer{}
	s.state = &SessionState{}
}

func (s *systemRouteScaffold) request(method string, path string, body []byte, params url.Values) *routing.Request[SessionState] {
	return &routing.Request[SessionState]{
		Values:    params,
		Streamer:  s.streamer,
		Context:   context.Background(),
		RequestID: "test-request",
		Method:    method,
		Path:      path,
		State:     s.state,
		Body:      bytes.NewReader(body),
	}
}

func Test_SystemRoutes(t *testing.T) {
	g := goblin.Goblin(t)

	s := &systemRouteScaffold{}

	g.Describe("system route handlers", func() {

		g.BeforeEach(s.Reset)

		g.Describe("Ping", func() {

			g.It("responds with a pong frame and counts the request", func() {
				e := Ping(s.request(http.MethodGet, "/ping", nil, url.Values{}))

				g.Assert(e == nil).Equal(true)
				g.Assert(len(s.streamer.writers)).Equal(1)
				g.Assert(s.streamer.writers[0].String()).Equal("pong")
				g.Assert(s.streamer.writers[0].closes).Equal(1)
				g.Assert(s.state.Served).Equal(1)
			})

		})

		g.Describe("SystemInfo", func() {

			g.It("responds with the current time and the served count", func() {
				s.state.Served = 2
				e := SystemInfo(s.request(http.MethodGet, "/system", nil, url.Values{}))

				g.Assert(e == nil).Equal(true)
				g.Assert(len(s.streamer.writers)).Equal(1)
				g.Assert(strings.HasPrefix(s.streamer.writers[0].String(), "time[")).Equal(true)
				g.Assert(strings.HasSuffix(s.streamer.writers[0].String(), "served[3]")).Equal(true)
			})

		})

		g.Describe("Echo", func() {

			g.It("errors without writing when the payload is empty", func() {
				e := Echo(s.request(http.MethodPost, "/echo/some-tag", nil, url.Values{"tag": []string{"some-tag"}}))

				g.Assert(e != nil).Equal(true)
				g.Assert(e.Error()).Equal(defs.ErrEmptyPayload)
				g.Assert(len(s.streamer.writers)).Equal(0)
				g.Assert(s.state.Served).Equal(0)
			})

			g.It("responds with the payload prefixed by the captured tag", func() {
				params := url.Values{"tag": []string{"loopback"}}
				e := Echo(s.request(http.MethodPost, "/echo/loopback", []byte("hello there"), params))

				g.Assert(e == nil).Equal(true)
				g.Assert(len(s.streamer.writers)).Equal(1)
				g.Assert(s.streamer.writers[0].String()).Equal("loopback: hello there")
				g.Assert(s.state.Served).Equal(1)
			})

		})

	})
}

package dispatch

import "io"
import "sync"
import "bytes"
import "context"
import "io/ioutil"

import "github.com/golang/protobuf/proto"

import "github.com/relaysh/relay.api/relay/app"
import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/interchange"
import "github.com/relaysh/relay.api/relay/logging"
import "github.com/relaysh/relay.api/relay/registry"
import "github.com/relaysh/relay.api/relay/routing"
import "github.com/relaysh/relay.api/relay/socket"

// NewConnDispatcher returns a new ConnDispatcher serving the routes mounted on the provided table.
func NewConnDispatcher[S any](registrations socket.RegistrationStream, table app.RouteTable[S], index registry.ConnectionIndex, publisher ChannelPublisher) *ConnDispatcher[S] {
	logger := logging.New(defs.ConnDispatcherLogPrefix, logging.Yellow)
	var pool []*socket.Connection
	return &ConnDispatcher[S]{logger, sync.Mutex{}, registrations, table, index, publisher, pool}
}

// The ConnDispatcher is used by the server to maintain the pool of websocket connections: it
// registers new connections with the index, activates one route service per mounted route for each
// of them and relays every frame a connection sends into the matching service.
type ConnDispatcher[S any] struct {
	*logging.Logger
	mutex         sync.Mutex
	registrations socket.RegistrationStream
	table         app.RouteTable[S]
	index         registry.ConnectionIndex
	publisher     ChannelPublisher
	pool          []*socket.Connection
}

func (dispatcher *ConnDispatcher[S]) track(connection *socket.Connection) {
	dispatcher.mutex.Lock()
	defer dispatcher.mutex.Unlock()
	dispatcher.pool = append(dispatcher.pool, connection)
}

func (dispatcher *ConnDispatcher[S]) unsubscribe(connection *socket.Connection) {
	defer connection.Close()
	dispatcher.mutex.Lock()
	defer dispatcher.mutex.Unlock()

	pool, targetID := make([]*socket.Connection, 0, len(dispatcher.pool)), connection.GetID()

	if e := dispatcher.index.Remove(targetID); e != nil {
		dispatcher.Errorf("unable to remove connection from index: %s", e.Error())
	}

	for _, candidate := range dispatcher.pool {
		if candidate.GetID() == targetID {
			continue
		}

		pool = append(pool, candidate)
	}

	dispatcher.pool = pool
}

func (dispatcher *ConnDispatcher[S]) welcome(connection *socket.Connection, wait *sync.WaitGroup) {
	defer wait.Done()

	welcome := interchange.Welcome{
		ConnectionID: connection.GetID(),
		Body:         defs.WelcomeMessageBody,
	}

	if e := connection.Send(&welcome); e != nil {
		dispatcher.Warnf("unable to send welcome message: %s", e.Error())
		return
	}

	dispatcher.Infof("welcomed connection[%s]", connection.GetID())
}

// activate runs the per-connection half of the factory protocol: one independent service per
// mounted route, keyed by the factory that produced it.
func (dispatcher *ConnDispatcher[S]) activate() (map[*routing.RouteFactory[S]]*routing.RouteService[S], error) {
	services := make(map[*routing.RouteFactory[S]]*routing.RouteService[S], len(dispatcher.table))

	for _, entry := range dispatcher.table {
		service, e := entry.Factory.NewService()

		if e != nil {
			return nil, e
		}

		services[entry.Factory] = service
	}

	return services, nil
}

func (dispatcher *ConnDispatcher[S]) dispatch(connection *socket.Connection, services map[*routing.RouteFactory[S]]*routing.RouteService[S], state *S, message io.Reader) {
	data, e := ioutil.ReadAll(message)

	if e != nil {
		dispatcher.Infof("unable to read frame from connection[%s]: %s", connection.GetID(), e.Error())
		return
	}

	frame := interchange.RequestFrame{}

	if e := proto.Unmarshal(data, &frame); e != nil {
		dispatcher.Warnf("unable to unmarshal frame from connection[%s]: %s", connection.GetID(), e.Error())
		return
	}

	found, params, factory := dispatcher.table.Match(frame.GetMethod(), frame.GetPath())

	if found != true {
		dispatcher.Warnf("no route for %s '%s', sending to dead letter channel", frame.GetMethod(), frame.GetPath())

		if e := dispatcher.publisher.PublishReader(defs.DeadLetterChannelName, bytes.NewReader(data)); e != nil {
			dispatcher.Errorf("unable to publish dead letter: %s", e.Error())
		}

		return
	}

	service := services[factory]

	if !service.Ready() {
		dispatcher.Warnf("service for '%s' not ready, dropping frame", frame.GetPath())
		return
	}

	request := routing.Request[S]{
		Values:    params,
		Streamer:  connection,
		Context:   context.Background(),
		State:     state,
		RequestID: frame.GetRequestID(),
		Method:    frame.GetMethod(),
		Path:      frame.GetPath(),
		Body:      bytes.NewReader(frame.GetPayload()),
	}

	if e := service.Call(&request); e != nil {
		dispatcher.Errorf("dispatch failure on connection[%s]: %s", connection.GetID(), e.Error())
	}
}

func (dispatcher *ConnDispatcher[S]) subscribe(connection *socket.Connection, wait *sync.WaitGroup) {
	defer wait.Done()
	defer dispatcher.unsubscribe(connection)

	if e := dispatcher.index.Insert(connection.GetID()); e != nil {
		dispatcher.Errorf("unable to add connection to index: %s", e.Error())
		return
	}

	services, e := dispatcher.activate()

	if e != nil {
		dispatcher.Errorf("unable to activate services for connection[%s]: %s", connection.GetID(), e.Error())
		return
	}

	dispatcher.Infof("subscribed connection[%s] w/ %d services", connection.GetID(), len(services))

	// State shared by every request dispatched on this connection; requests are relayed one at a
	// time so handlers never observe concurrent mutation.
	var state S

	for {
		reader, e := connection.Receive()

		if e != nil {
			dispatcher.Infof("unable to read from connection[%s]: %s", connection.GetID(), e.Error())
			break
		}

		dispatcher.dispatch(connection, services, &state, reader)
	}

	dispatcher.Infof("closing connection[%s]", connection.GetID())
}

// Start will continuously loop over the registration stream, delegating to private methods as necessary.
func (dispatcher *ConnDispatcher[S]) Start(wg *sync.WaitGroup, stop KillSwitch) {
	defer wg.Done()

	dispatcher.Infof("connection dispatcher starting w/ %d mounted routes", len(dispatcher.table))

	wait, running := sync.WaitGroup{}, true

	for running {
		select {
		case connection, ok := <-dispatcher.registrations:
			if ok != true {
				running = false
				break
			}

			dispatcher.track(connection)
			wait.Add(2)
			go dispatcher.welcome(connection, &wait)
			go dispatcher.subscribe(connection, &wait)
		case <-stop:
			dispatcher.Infof("received kill signal, breaking")
			running = false
		}
	}

	dispatcher.mutex.Lock()

	for _, connection := range dispatcher.pool {
		dispatcher.Infof("closing connection[%s]", connection.GetID())
		connection.Close()
	}

	dispatcher.mutex.Unlock()

	wait.Wait()
}

package main

import "io"
import "fmt"
import "flag"
import "sync"
import "os"
import "os/signal"
import "net/http"

import "github.com/garyburd/redigo/redis"

import "github.com/relaysh/relay.api/relay/app"
import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/dispatch"
import "github.com/relaysh/relay.api/relay/logging"
import "github.com/relaysh/relay.api/relay/registry"
import "github.com/relaysh/relay.api/relay/routes"
import "github.com/relaysh/relay.api/relay/routing"
import "github.com/relaysh/relay.api/relay/socket"

func main() {
	var port, hostname, redisURI string

	flag.StringVar(&port, "port", defs.DefaultPort, "the port to attach the http listener to")
	flag.StringVar(&hostname, "hostname", defs.DefaultHostname, "the hostname to bind the http listener to")
	flag.StringVar(&redisURI, "redis", defs.DefaultRedisURI, "the redis uri used for the connection index")
	flag.Parse()

	logger := logging.New(defs.MainLogPrefix, logging.Magenta)

	redisConnection, e := redis.DialURL(redisURI)

	if e != nil {
		logger.Errorf("unable to connect to redis (%s): %s", redisURI, e.Error())
		return
	}

	defer redisConnection.Close()

	index := registry.NewRedisRegistry(redisConnection)

	mounts := []*routing.Route[routes.SessionState]{
		routing.Get[routes.SessionState](defs.PingRoute).To(routes.Ping),
		routing.Build[routes.SessionState](defs.SystemRoute).To(routes.SystemInfo),
		routing.Post[routes.SessionState](defs.EchoRoute).Method(http.MethodPut).To(routes.Echo),
	}

	table := app.RouteTable[routes.SessionState]{}

	for _, route := range mounts {
		if e := table.Mount(route); e != nil {
			logger.Errorf("unable to mount route '%s': %s", route.Path(), e.Error())
			return
		}

		logger.Infof("mounted route '%s'", route.Path())
	}

	registrations := make(socket.RegistrationStream, defs.DefaultRegistrationBacklog)
	letters := make(chan io.Reader, defs.DefaultRegistrationBacklog)
	store := dispatch.ChannelStore{defs.DeadLetterChannelName: letters}

	processors := []dispatch.Processor{
		dispatch.NewConnDispatcher(registrations, table, index, &store),
		dispatch.NewDeadLetterProcessor(letters),
	}

	wg, stop := sync.WaitGroup{}, make(dispatch.KillSwitch)

	for _, processor := range processors {
		wg.Add(1)
		go processor.Start(&wg, stop)
	}

	kill := make(chan os.Signal, 1)
	signal.Notify(kill, os.Interrupt)

	go func() {
		<-kill
		logger.Infof("received interrupt, stopping processors")
		close(stop)
	}()

	runtime := app.NewServerRuntime(registrations)
	address := fmt.Sprintf("%s:%s", hostname, port)

	logger.Infof("starting server on %s", address)

	if e := http.ListenAndServe(address, runtime); e != nil {
		logger.Errorf("unable to start server: %s", e.Error())
	}

	wg.Wait()
}

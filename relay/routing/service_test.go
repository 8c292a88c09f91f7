package routing

import "fmt"
import "strings"
import "testing"
import "net/http"
import "github.com/franela/goblin"

func Test_RouteService(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("RouteService", func() {

		g.Describe("#Ready", func() {

			g.It("always reports ready, regardless of call history", func() {
				logger, _ := newTestLogger()

				service := &RouteService[struct{}]{
					LeveledLogger: logger,
					handler: func(*Request[struct{}]) error {
						return fmt.Errorf("boom")
					},
				}

				g.Assert(service.Ready()).Equal(true)
				service.Call(&Request[struct{}]{})
				g.Assert(service.Ready()).Equal(true)
			})

		})

		g.Describe("#Call", func() {

			g.It("resolves successfully and logs nothing when the handler succeeds", func() {
				logger, out := newTestLogger()
				called := 0

				service := &RouteService[struct{}]{
					LeveledLogger: logger,
					handler: func(*Request[struct{}]) error {
						called++
						return nil
					},
				}

				g.Assert(service.Call(&Request[struct{}]{}) == nil).Equal(true)
				g.Assert(called).Equal(1)
				g.Assert(out.Len()).Equal(0)
			})

			g.It("still resolves successfully when the handler errors, logging exactly once", func() {
				logger, out := newTestLogger()

				service := &RouteService[struct{}]{
					LeveledLogger: logger,
					handler: func(*Request[struct{}]) error {
						return fmt.Errorf("boom")
					},
				}

				g.Assert(service.Call(&Request[struct{}]{}) == nil).Equal(true)
				g.Assert(strings.Count(out.String(), "\n")).Equal(1)
				g.Assert(strings.Contains(out.String(), "boom")).Equal(true)
			})

		})

	})

	g.Describe("route lifecycle", func() {

		g.It("builds, creates and activates services that do not interfere", func() {
			type counter struct {
				total int
			}

			logger, out := newTestLogger()

			route := Build[counter]("/users").Method(http.MethodGet).Method(http.MethodPost).To(func(request *Request[counter]) error {
				request.State.total++
				return nil
			})

			g.Assert(route.Path()).Equal("/users")

			factory := route.Create()
			factory.LeveledLogger = logger

			first, e := factory.NewService()
			g.Assert(e == nil).Equal(true)

			second, e := factory.NewService()
			g.Assert(e == nil).Equal(true)

			firstState, secondState := counter{}, counter{}

			g.Assert(first.Call(&Request[counter]{State: &firstState}) == nil).Equal(true)
			g.Assert(second.Call(&Request[counter]{State: &secondState}) == nil).Equal(true)

			g.Assert(firstState.total).Equal(1)
			g.Assert(secondState.total).Equal(1)
			g.Assert(out.Len()).Equal(0)

			// Mutating one service's method set must never leak into its siblings or the factory.
			first.methods[0] = http.MethodDelete
			g.Assert(second.Accepts(http.MethodGet)).Equal(true)
			g.Assert(factory.Accepts(http.MethodGet)).Equal(true)
		})

		g.It("logs the handler error text when dispatching a failing handler", func() {
			logger, out := newTestLogger()

			route := Build[struct{}]("/users").Method(http.MethodGet).Method(http.MethodPost).To(func(*Request[struct{}]) error {
				return fmt.Errorf("boom")
			})

			factory := route.Create()
			factory.LeveledLogger = logger

			service, e := factory.NewService()
			g.Assert(e == nil).Equal(true)

			g.Assert(service.Call(&Request[struct{}]{}) == nil).Equal(true)
			g.Assert(strings.Count(out.String(), "\n")).Equal(1)
			g.Assert(strings.Contains(out.String(), "boom")).Equal(true)
		})

	})
}

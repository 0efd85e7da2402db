package routing_test

import (
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zalando/rudder/routing"
)

type countingMetrics struct {
	lookups, matched, failed int
}

func (m *countingMetrics) MeasureRouteLookup(time.Time) { m.lookups++ }
func (m *countingMetrics) IncRoutingMatched()           { m.matched++ }
func (m *countingMetrics) IncRoutingFailed()            { m.failed++ }

func TestRoutingDispatch(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	m := &countingMetrics{}
	rt := routing.New(routing.Options{
		Router:  routing.Route(pathPredicate(t, "/users/{id}"), handlerReturning("users")),
		Log:     log,
		Metrics: m,
	})

	h, req, ok := rt.Route(httptest.NewRequest("GET", "/users/42", nil))
	if !ok {
		t.Fatal("expected a match")
	}

	if result := mustInvoke(t, h, req); result != "users" {
		t.Errorf("unexpected handler result: %v", result)
	}

	if vars := routing.PathVariables(req.Attributes()); vars["id"] != "42" {
		t.Errorf("unexpected variables: %v", vars)
	}

	if _, _, ok := rt.Route(httptest.NewRequest("GET", "/missing", nil)); ok {
		t.Error("expected no match")
	}

	if m.lookups != 2 || m.matched != 1 || m.failed != 1 {
		t.Errorf("unexpected metrics: %+v", m)
	}
}

func TestRoutingRequiresRouter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a missing router")
		}
	}()

	routing.New(routing.Options{})
}

// The routing tree is immutable after construction; concurrent lookups
// need no synchronization, with each request owning its attribute map.
func TestConcurrentRouting(t *testing.T) {
	rt := routing.New(routing.Options{
		Router: routing.Route(pathPredicate(t, "/users/{id}"), handlerReturning("users")),
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := strconv.Itoa(i*1000 + j)
				_, req, ok := rt.Route(httptest.NewRequest("GET", "/users/"+id, nil))
				if !ok {
					t.Error("expected a match")
					return
				}

				if vars := routing.PathVariables(req.Attributes()); vars["id"] != id {
					t.Errorf("expected id %s, got %v", id, vars)
					return
				}
			}
		}(i)
	}

	wg.Wait()
}

package rnav

import (
	"fmt"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/serr"

	"github.com/rohanthewiz/rnav/consts"
)

// carsNavigator builds the standard fixture: /cars providing two items and
// a guarded /cars/:name child.
func carsNavigator(t *testing.T, providerCalls *int) *Navigator {
	t.Helper()

	n, err := NewNavigator(Config{Fallback: "/cars"})
	assert.Nil(t, err)

	cars := n.Route("/cars", WithProvider(func(ctx Context) (*Snapshot, error) {
		if providerCalls != nil {
			*providerCalls++
		}
		return NewSnapshot(Item{Name: "tesla"}, Item{Name: "arrinera"}), nil
	}))
	cars.Child("/:name", ResolveByParam("name"))

	assert.Nil(t, n.Ready())
	return n
}

func TestGuardedChildAdmitted(t *testing.T) {
	n := carsNavigator(t, nil)

	outcome := n.Navigate("/cars/tesla")
	assert.True(t, outcome.Admitted())

	item, ok := outcome.Item()
	assert.True(t, ok)
	assert.Equal(t, "tesla", item.Name)
	assert.Equal(t, "/cars/tesla", n.Location())
}

func TestParentRouteSettlesWithoutItem(t *testing.T) {
	n := carsNavigator(t, nil)

	outcome := n.Navigate("/cars")
	assert.True(t, outcome.Admitted())

	_, ok := outcome.Item()
	assert.False(t, ok)
	assert.Equal(t, "/cars", n.Location())
}

func TestRejectionRevertsToPrevious(t *testing.T) {
	n := carsNavigator(t, nil)

	outcome := n.Navigate("/cars")
	assert.True(t, outcome.Admitted())

	outcome = n.Navigate("/cars/ford")
	assert.False(t, outcome.Admitted())
	assert.Equal(t, ReasonNotFound, outcome.Why())
	assert.True(t, IsCanceled(outcome.Err()))

	// the user observes their previous location, unchanged
	assert.Equal(t, "/cars", n.Location())
}

func TestColdEntryRedirectsToFallback(t *testing.T) {
	n := carsNavigator(t, nil)

	assert.Equal(t, consts.RootPlaceholder, n.Location())

	outcome := n.Navigate("/cars/ford")
	assert.False(t, outcome.Admitted())
	assert.True(t, IsCanceled(outcome.Err()))

	// no previous settled route existed, so the fallback was navigated
	assert.Equal(t, "/cars", n.Location())
}

func TestUnmatchedPathRejected(t *testing.T) {
	n := carsNavigator(t, nil)
	n.Navigate("/cars")

	outcome := n.Navigate("/planes/boeing")
	assert.False(t, outcome.Admitted())
	assert.True(t, IsCanceled(outcome.Err()))
	assert.Equal(t, "/cars", n.Location())
}

func TestProviderRunsOncePerActivation(t *testing.T) {
	calls := 0
	n := carsNavigator(t, &calls)
	n.Route("/about")

	n.Navigate("/cars")
	n.Navigate("/cars/tesla")
	n.Navigate("/cars/arrinera")
	assert.Equal(t, 1, calls)

	// navigating away deactivates the parent; re-entry is a fresh
	// activation with a fresh snapshot
	n.Navigate("/about")
	n.Navigate("/cars/tesla")
	assert.Equal(t, 2, calls)
}

func TestSnapshotReusedAcrossRejections(t *testing.T) {
	calls := 0
	n := carsNavigator(t, &calls)

	n.Navigate("/cars/tesla")
	n.Navigate("/cars/ford") // rejected; parent stays active
	n.Navigate("/cars/arrinera")
	assert.Equal(t, 1, calls)
}

func TestProviderFailure(t *testing.T) {
	n, err := NewNavigator(Config{Fallback: "/home"})
	assert.Nil(t, err)

	n.Route("/home")
	broken := n.Route("/cars", WithProvider(func(ctx Context) (*Snapshot, error) {
		return nil, serr.New("upstream down")
	}))
	broken.Child("/:name", ResolveByParam("name"))
	assert.Nil(t, n.Ready())

	n.Navigate("/home")

	outcome := n.Navigate("/cars/tesla")
	assert.False(t, outcome.Admitted())
	assert.Equal(t, ReasonProviderFailed, outcome.Why())

	// a provider fault is a generic failure, not the cancellation signal
	assert.False(t, IsCanceled(outcome.Err()))
	assert.Equal(t, "/home", n.Location())
}

func TestResolveWithoutProviderFailsClosed(t *testing.T) {
	n, err := NewNavigator(Config{Fallback: "/orphans"})
	assert.Nil(t, err)

	// registration defect: a resolve step with no ancestor provider
	orphans := n.Route("/orphans")
	orphans.Child("/:name", ResolveByParam("name"))
	assert.Nil(t, n.Ready())

	n.Navigate("/orphans")

	outcome := n.Navigate("/orphans/anything")
	assert.False(t, outcome.Admitted())
	assert.Equal(t, ReasonNotFound, outcome.Why())
	assert.Equal(t, "/orphans", n.Location())
}

func TestGuardOrdering(t *testing.T) {
	var order []string

	n, err := NewNavigator(Config{Fallback: "/cars"})
	assert.Nil(t, err)

	cars := n.Route("/cars",
		WithProvider(func(ctx Context) (*Snapshot, error) {
			order = append(order, "provider")
			return NewSnapshot(Item{Name: "tesla"}), nil
		}),
		WithGuards(func(ctx Context) error {
			order = append(order, "parent guard")
			return nil
		}),
	)
	cars.Child("/:name", ResolveByParam("name"), WithGuards(func(ctx Context) error {
		order = append(order, "child guard")
		// the parent's snapshot is already readable here
		assert.Equal(t, 1, ctx.Parent().Len())
		return nil
	}))
	assert.Nil(t, n.Ready())

	outcome := n.Navigate("/cars/tesla")
	assert.True(t, outcome.Admitted())
	assert.Equal(t, 3, len(order))
	assert.Equal(t, "parent guard", order[0])
	assert.Equal(t, "provider", order[1])
	assert.Equal(t, "child guard", order[2])
}

func TestGuardCanCancel(t *testing.T) {
	n := carsNavigator(t, nil)
	n.Route("/locked", WithGuards(func(ctx Context) error {
		return fmt.Errorf("not allowed: %w", ErrNavigationCanceled)
	}))

	n.Navigate("/cars")

	outcome := n.Navigate("/locked")
	assert.False(t, outcome.Admitted())
	assert.True(t, IsCanceled(outcome.Err()))
	assert.Equal(t, "/cars", n.Location())
}

func TestUseMiddleware(t *testing.T) {
	n := carsNavigator(t, nil)

	var seen []string
	n.Use(func(ctx Context) error {
		seen = append(seen, ctx.Path())
		ctx.Set("traced", true)
		return ctx.Next()
	})

	outcome := n.Navigate("/cars/tesla")
	assert.True(t, outcome.Admitted())
	assert.Equal(t, 1, len(seen))
	assert.Equal(t, "/cars/tesla", seen[0])
}

func TestBack(t *testing.T) {
	n := carsNavigator(t, nil)

	n.Navigate("/cars")
	n.Navigate("/cars/tesla")
	n.Navigate("/cars/arrinera")

	outcome, ok := n.Back()
	assert.True(t, ok)
	assert.True(t, outcome.Admitted())
	assert.Equal(t, "/cars/tesla", n.Location())

	outcome, ok = n.Back()
	assert.True(t, ok)
	assert.Equal(t, "/cars", n.Location())

	_, ok = n.Back()
	assert.False(t, ok)
}

func TestEvents(t *testing.T) {
	n := carsNavigator(t, nil)

	events := n.Subscribe()
	defer n.Unsubscribe(events)

	n.Navigate("/cars")
	ev := <-events
	assert.Equal(t, consts.RootPlaceholder, ev.From)
	assert.Equal(t, "/cars", ev.To)
	assert.False(t, ev.Reverted)
	assert.False(t, ev.Fallback)

	n.Navigate("/cars/ford")
	ev = <-events
	assert.Equal(t, "/cars", ev.To)
	assert.True(t, ev.Reverted)
}

func TestColdEntryFallbackEvent(t *testing.T) {
	n := carsNavigator(t, nil)

	events := n.Subscribe()
	defer n.Unsubscribe(events)

	n.Navigate("/cars/ford")

	ev := <-events
	assert.Equal(t, "/cars", ev.To)
	assert.True(t, ev.Fallback)
}

func TestReady(t *testing.T) {
	n, err := NewNavigator(Config{Fallback: "/nowhere"})
	assert.Nil(t, err)
	n.Route("/cars")

	err = n.Ready()
	assert.True(t, IsConfigError(err))
}

func TestNewNavigatorRequiresFallback(t *testing.T) {
	_, err := NewNavigator(Config{})
	assert.True(t, IsConfigError(err))

	_, err = NewNavigator(Config{Fallback: "cars"})
	assert.True(t, IsConfigError(err))
}

func TestListRoutes(t *testing.T) {
	n := carsNavigator(t, nil)

	routes := n.ListRoutes()
	assert.Equal(t, 2, len(routes))
}

func TestContextData(t *testing.T) {
	ctx := &context{}

	ctx.Set("key1", "value1")
	ctx.Set("key2", 123)

	assert.Equal(t, "value1", ctx.Get("key1"))
	assert.Equal(t, 123, ctx.Get("key2"))
	assert.True(t, ctx.Has("key1"))
	assert.False(t, ctx.Has("nonexistent"))
	assert.Nil(t, ctx.Get("nonexistent"))

	ctx.Delete("key1")
	assert.False(t, ctx.Has("key1"))
}

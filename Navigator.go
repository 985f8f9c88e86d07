package rnav

import (
	"fmt"
	"log"
	"sync"

	"github.com/rohanthewiz/rnav/consts"
	"github.com/rohanthewiz/rnav/core/rtr"
	"github.com/rohanthewiz/serr"
)

// Handler is a guard or middleware step in the navigation chain.
type Handler func(ctx Context) error

// Provider produces a route's collection snapshot when the route activates.
// It may block (fetch, compute); the pipeline waits for it before any
// descendant guard or resolve step runs.
type Provider func(ctx Context) (*Snapshot, error)

// navMode distinguishes why a navigation is running.
type navMode int

const (
	modeNormal   navMode = iota
	modeFallback         // recovery redirect; must not recurse into another fallback
	modeBack             // history pop; settles without pushing history
)

// Navigator owns the route table and runs the navigation pipeline.
// One navigation request is evaluated at a time per instance; overlapping
// callers queue on the navigation lock. Supersession of an in-flight
// request is the host's concern, not the navigator's.
type Navigator struct {
	cfg      Config
	handlers []Handler
	router   *rtr.Router[*Route]
	location *location
	hub      *eventHub
	mu       sync.Mutex
	active   []*Route // activation chain of the last admitted navigation
}

// NewNavigator creates a navigator with the given configuration.
// A missing or malformed fallback route fails here, at startup, never at
// rejection time.
func NewNavigator(cfg Config) (*Navigator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = consts.DefaultHistoryLimit
	}

	n := &Navigator{
		cfg:      cfg,
		router:   rtr.New[*Route](),
		location: newLocation(cfg.HistoryLimit),
		hub:      newEventHub(),
	}

	n.handlers = []Handler{
		func(c Context) error { // default handler: match and activate
			ctx := c.(*context)
			return n.activate(ctx)
		},
	}

	return n, nil
}

// Route registers a top-level route.
func (n *Navigator) Route(pattern string, opts ...RouteOption) *Route {
	r := &Route{pattern: pattern, navigator: n}

	for _, opt := range opts {
		opt(r)
	}

	n.register(r)
	return r
}

// register adds the route to the routing table.
func (n *Navigator) register(r *Route) {
	n.router.Add(r.pattern, r)
}

// Use adds handlers to the navigation chain.
func (n *Navigator) Use(handlers ...Handler) {
	last := n.handlers[len(n.handlers)-1]
	// Re-slice to exclude last and append the incoming handlers
	n.handlers = append(n.handlers[:len(n.handlers)-1], handlers...)
	n.handlers = append(n.handlers, last) // add back the last
}

// Ready verifies post-registration startup requirements: the configured
// fallback must match a registered route. Call it once routes are in place;
// an unroutable fallback is a configuration error, reported here rather
// than on the first cold-entry rejection.
func (n *Navigator) Ready() error {
	if _, ok := n.router.LookupNoAlloc(n.cfg.Fallback, func(string, string) {}); !ok {
		return &ConfigError{
			Field: "fallback",
			Err:   serr.New("fallback matches no registered route", "fallback", n.cfg.Fallback),
		}
	}

	return nil
}

// Navigate evaluates one navigation request to completion and returns its
// outcome. A rejection is never fatal: the location reverts to the previous
// settled route, or redirects to the fallback when nothing has settled yet.
func (n *Navigator) Navigate(path string) Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.navigate(path, modeNormal)
}

// Back navigates to the most recently settled prior location.
// The second return is false when there is no history to pop.
func (n *Navigator) Back() (Outcome, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	route, ok := n.location.back()
	if !ok {
		return Outcome{}, false
	}

	return n.navigate(route, modeBack), true
}

// Location returns the current settled location without blocking on an
// in-flight navigation. Returns consts.RootPlaceholder before any settle.
func (n *Navigator) Location() string {
	return n.location.read()
}

// Subscribe registers a channel receiving settled-location events.
func (n *Navigator) Subscribe() chan LocationEvent {
	return n.hub.subscribe()
}

// Unsubscribe removes and closes a subscriber channel.
func (n *Navigator) Unsubscribe(ch chan LocationEvent) {
	n.hub.unsubscribe(ch)
}

// ListRoutes returns the registered routes for inspection.
func (n *Navigator) ListRoutes() []rtr.RouteList {
	return n.router.ListRoutes()
}

// navigate runs the pipeline for one request. Callers hold the lock.
func (n *Navigator) navigate(path string, mode navMode) Outcome {
	from := n.location.current
	n.location.begin()

	ctx := &context{navigator: n, path: path}

	err := n.handlers[0](ctx)
	if err == nil {
		n.commit(ctx)
		n.location.settle(path, mode != modeBack)
		n.hub.publish(LocationEvent{From: from, To: path, Fallback: mode == modeFallback})

		if item, ok := ctx.ResolvedItem(); ok {
			return Resolved(item)
		}
		return Settled()
	}

	// Rejected. Run the recovery policy.
	reason := ReasonNotFound
	if !IsCanceled(err) {
		reason = ReasonProviderFailed
	}

	if n.cfg.Verbose {
		log.Printf("rnav: navigation to %q rejected: %v", path, err)
	}

	if n.location.hasSettled() {
		stay := n.location.revert()
		n.hub.publish(LocationEvent{From: from, To: stay, Reverted: true})
		return Rejected(reason, err)
	}

	if mode == modeFallback {
		// The fallback itself rejected. Settle on the root placeholder
		// rather than recursing.
		log.Printf("rnav: fallback route %q rejected: %v", path, err)
		n.location.settle(consts.RootPlaceholder, false)
		return Rejected(reason, err)
	}

	// Cold entry into an invalid deep link: redirect to the fallback so the
	// user never lands on an uninitialized view.
	n.navigate(n.cfg.Fallback, modeFallback)
	return Rejected(reason, err)
}

// activate matches the path, then runs guards and providers along the
// activation chain root-first, finishing with the matched route's resolve
// step. A parent's provider always completes before any descendant guard or
// resolve step runs; the ordering is structural in this loop, not left to
// scheduling.
func (n *Navigator) activate(ctx *context) error {
	route, ok := n.router.LookupNoAlloc(ctx.path, ctx.addParameter)
	if !ok {
		return fmt.Errorf("no route matches %q: %w", ctx.path, ErrNavigationCanceled)
	}

	chain := route.chain()

	for _, r := range chain {
		for _, guard := range r.guards {
			if err := guard(ctx); err != nil {
				return err
			}
		}

		if r.provider != nil {
			// Reuse the live snapshot while the route remains in the active
			// chain; a fresh activation produces a fresh snapshot.
			if r.snapshot == nil || !r.inChain(n.active) {
				snap, err := r.provider(ctx)
				if err != nil {
					return serr.Wrap(err, "provider failed for "+r.pattern)
				}
				r.snapshot = snap
			}
			ctx.parent = r.snapshot
		}
	}

	if route.paramKey != "" {
		if ctx.parent == nil {
			// A resolve step with no ancestor snapshot is a sequencing
			// defect in route registration. Fail closed; operators get the
			// log line, the user just sees a rejection.
			log.Printf("rnav: resolve step for %q has no parent snapshot (ordering defect)", route.pattern)
		}

		outcome := Resolve(ctx.parent, ctx.Param(route.paramKey))
		item, found := outcome.Item()
		if !found {
			return outcome.Err()
		}

		ctx.item = item
		ctx.resolved = true
	}

	ctx.chain = chain
	return nil
}

// commit makes the admitted chain current and discards snapshots owned by
// routes that just deactivated.
func (n *Navigator) commit(ctx *context) {
	for _, r := range n.active {
		if r.provider != nil && !r.inChain(ctx.chain) {
			r.snapshot = nil
		}
	}

	n.active = ctx.chain
}

package rnav

import (
	"path"
)

// Route represents a registered navigation target.
// A route may own a Provider (it produces a collection snapshot when its
// subtree activates) and/or a resolve step keyed by one of its path
// parameters (admission is decided against the nearest ancestor snapshot).
// Routes nest: a child inherits its ancestors' guards and providers through
// the activation chain, executed root-first.
type Route struct {
	// pattern is the full path pattern for this route (e.g. /cars/:name)
	pattern string
	// navigator is a back-reference for registration
	navigator *Navigator
	// parent links toward the activation chain root
	parent *Route
	// provider produces this route's collection snapshot, if it has one
	provider Provider
	// paramKey names the path parameter holding the requested key for the
	// guarded resolve step; empty for routes without one
	paramKey string
	// guards run for this route during activation, after ancestors' guards
	guards []Handler
	// snapshot is the live collection while this route is in the active
	// chain; discarded when the route deactivates
	snapshot *Snapshot
}

// RouteOption configures a route at registration time.
type RouteOption func(*Route)

// WithProvider attaches an asynchronous collection provider to the route.
// The provider runs once per activation of the route, strictly before any
// descendant's guards or resolve step.
func WithProvider(p Provider) RouteOption {
	return func(r *Route) {
		r.provider = p
	}
}

// ResolveByParam attaches a guarded resolve step: the named path parameter
// is matched against the nearest ancestor snapshot, and the navigation is
// admitted only when a matching item exists.
func ResolveByParam(name string) RouteOption {
	return func(r *Route) {
		r.paramKey = name
	}
}

// WithGuards attaches guards that run when this route activates.
func WithGuards(handlers ...Handler) RouteOption {
	return func(r *Route) {
		r.guards = append(r.guards, handlers...)
	}
}

// Child registers a nested route under this one.
// The child's pattern is joined onto the parent's, and the parent becomes
// part of the child's activation chain.
// Example: cars.Child("/:name", rnav.ResolveByParam("name")) registers
// /cars/:name admitted against the snapshot provided by /cars.
func (r *Route) Child(pattern string, opts ...RouteOption) *Route {
	child := &Route{
		pattern:   path.Join(r.pattern, pattern),
		navigator: r.navigator,
		parent:    r,
	}

	for _, opt := range opts {
		opt(child)
	}

	r.navigator.register(child)
	return child
}

// Use adds guards to the route after registration.
func (r *Route) Use(handlers ...Handler) {
	r.guards = append(r.guards, handlers...)
}

// Pattern returns the route's full path pattern.
func (r *Route) Pattern() string {
	return r.pattern
}

// chain returns the activation chain for this route, root-first.
func (r *Route) chain() []*Route {
	var rev []*Route
	for cur := r; cur != nil; cur = cur.parent {
		rev = append(rev, cur)
	}

	chain := make([]*Route, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		chain = append(chain, rev[i])
	}
	return chain
}

// inChain reports whether r appears in the given activation chain.
func (r *Route) inChain(chain []*Route) bool {
	for _, c := range chain {
		if c == r {
			return true
		}
	}
	return false
}

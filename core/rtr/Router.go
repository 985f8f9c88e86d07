package rtr

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/rnav/consts"
)

// Router combines an exact-match hash router for static patterns with a
// segment tree for patterns containing parameters. Static paths take the
// fast path; everything else falls through to the tree.
type Router[T any] struct {
	hash *HashRouter[T]
	tree Tree[T]
}

// New creates a new router.
func New[T any]() *Router[T] {
	return &Router[T]{
		hash: NewHashRouter[T](),
	}
}

// Add registers a new handler for the given pattern.
func (router *Router[T]) Add(pattern string, handler T) {
	if strings.IndexByte(pattern, consts.RuneColon) < 0 {
		router.hash.Add(pattern, handler)
	} else {
		router.tree.Add(pattern, handler)
	}
}

// Lookup finds the handler and parameters for the given path.
func (router *Router[T]) Lookup(path string) (T, []Parameter, bool) {
	if handler, ok := router.hash.Lookup(path); ok {
		return handler, nil, true
	}
	return router.tree.Lookup(path)
}

// LookupNoAlloc finds the handler for the given path without allocating,
// delivering captured parameters through the callback.
func (router *Router[T]) LookupNoAlloc(path string, addParameter func(string, string)) (T, bool) {
	if handler, ok := router.hash.Lookup(path); ok {
		return handler, true
	}
	return router.tree.LookupNoAlloc(path, addParameter)
}

// ListRoutes returns every registered route for inspection.
func (router *Router[T]) ListRoutes() []RouteList {
	routes := router.hash.ListRoutes()
	router.tree.Walk(func(pattern string, data T) {
		routes = append(routes, RouteList{Pattern: pattern, HandlerRef: fmt.Sprintf("%v", data)})
	})
	return routes
}

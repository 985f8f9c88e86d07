package rtr

import (
	"fmt"

	"github.com/rohanthewiz/rnav/consts"
)

// HashRouter is a fast exact-match router for static patterns.
// Paths are normalized by dropping a trailing slash (except the root) so
// /cars and /cars/ resolve to the same entry.
type HashRouter[T any] struct {
	routes map[string]T
}

// NewHashRouter creates a new hash router with an initialized map.
// It is important to use this method when a new hash router is needed
func NewHashRouter[T any]() *HashRouter[T] {
	return &HashRouter[T]{
		routes: make(map[string]T, 16),
	}
}

// Add registers a new handler for the given static pattern.
func (hr *HashRouter[T]) Add(pattern string, handler T) {
	hr.routes[normalize(pattern)] = handler
}

// Lookup finds the handler for the given path.
func (hr *HashRouter[T]) Lookup(path string) (T, bool) {
	handler, ok := hr.routes[normalize(path)]
	return handler, ok
}

// ListRoutes returns the registered static routes for inspection.
func (hr *HashRouter[T]) ListRoutes() (routes []RouteList) {
	for k, h := range hr.routes {
		routes = append(routes, RouteList{Pattern: k, HandlerRef: fmt.Sprintf("%v", h)})
	}
	return
}

// normalize strips one trailing slash so registration and lookup agree.
func normalize(path string) string {
	if len(path) > 1 && path[len(path)-1] == consts.RuneFwdSlash {
		return path[:len(path)-1]
	}
	return path
}

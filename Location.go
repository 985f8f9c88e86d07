package rnav

import (
	"go.uber.org/atomic"

	"github.com/rohanthewiz/rnav/consts"
)

// navState is the per-instance navigation state.
type navState int

const (
	stateIdle navState = iota
	stateNavigating
	stateSettled
)

// location tracks the settled-location state machine and the history used
// for in-app back navigation. All transitions happen under the navigator's
// navigation lock; reading holds a lock-free mirror so Location() never
// contends with an in-flight navigation.
type location struct {
	state   navState
	current string   // last settled location; RootPlaceholder before any settle
	history []string // previously settled locations, oldest first
	limit   int
	reading *atomic.String
}

func newLocation(limit int) *location {
	return &location{
		current: consts.RootPlaceholder,
		limit:   limit,
		reading: atomic.NewString(consts.RootPlaceholder),
	}
}

// begin marks a navigation in flight.
func (l *location) begin() {
	l.state = stateNavigating
}

// settle records a successful transition to route.
// The prior settled location is pushed onto history unless pushHistory is
// false (back navigation) or nothing had settled yet.
func (l *location) settle(route string, pushHistory bool) {
	if pushHistory && l.current != consts.RootPlaceholder && l.current != route {
		l.history = append(l.history, l.current)
		if len(l.history) > l.limit {
			l.history = l.history[1:]
		}
	}

	l.current = route
	l.state = stateSettled
	l.reading.Store(route)
}

// revert ends a rejected navigation with the location unchanged, returning
// the route the user stays on.
func (l *location) revert() string {
	l.state = stateSettled
	return l.current
}

// hasSettled reports whether any route has ever settled in this instance.
// If not, a rejection has no previous route to revert to and must redirect
// to the fallback.
func (l *location) hasSettled() bool {
	return l.current != consts.RootPlaceholder
}

// back pops the most recently settled prior location.
func (l *location) back() (string, bool) {
	if len(l.history) == 0 {
		return "", false
	}

	route := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return route, true
}

// read returns the current settled location without taking the lock.
func (l *location) read() string {
	return l.reading.Load()
}

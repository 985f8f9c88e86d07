package rnav

import (
	"github.com/rohanthewiz/rnav/core/rtr"
)

// Context is the interface for a navigation request in flight.
type Context interface {
	Path() string
	Param(string) string
	Parent() *Snapshot
	ResolvedItem() (Item, bool)
	Set(string, any)
	Get(string) any
	Has(string) bool
	Delete(string)
	Next() error
}

// context carries the state of one navigation request through the pipeline.
type context struct {
	navigator    *Navigator
	path         string
	params       []rtr.Parameter
	parent       *Snapshot
	item         Item
	resolved     bool
	chain        []*Route
	data         map[string]any
	handlerCount uint8
}

// Path returns the requested navigation path.
func (ctx *context) Path() string {
	return ctx.path
}

// Param retrieves a captured path parameter.
func (ctx *context) Param(name string) string {
	for i := range ctx.params {
		if ctx.params[i].Key == name {
			return ctx.params[i].Value
		}
	}

	return ""
}

// addParameter collects a parameter captured during route matching.
func (ctx *context) addParameter(key string, value string) {
	ctx.params = append(ctx.params, rtr.Parameter{Key: key, Value: value})
}

// Parent returns the collection snapshot resolved by the nearest ancestor
// route with a provider. The snapshot is borrowed, read-only; the parent
// activation owns it. Nil when no ancestor has produced one.
func (ctx *context) Parent() *Snapshot {
	return ctx.parent
}

// ResolvedItem returns the item admitted by the guarded resolver, if any.
func (ctx *context) ResolvedItem() (Item, bool) {
	return ctx.item, ctx.resolved
}

// Set stores a value in the per-navigation data map.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any)
	}
	ctx.data[key] = value
}

// Get retrieves a value from the per-navigation data map.
func (ctx *context) Get(key string) any {
	return ctx.data[key]
}

// Has reports whether the key is present in the per-navigation data map.
func (ctx *context) Has(key string) bool {
	_, ok := ctx.data[key]
	return ok
}

// Delete removes a key from the per-navigation data map.
func (ctx *context) Delete(key string) {
	delete(ctx.data, key)
}

// Next executes the next handler in the navigation chain.
func (ctx *context) Next() error {
	ctx.handlerCount++
	return ctx.navigator.handlers[ctx.handlerCount](ctx)
}

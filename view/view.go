// Package view builds the HTML a host shows for an admitted navigation.
// It is the edge the navigator hands resolution outcomes to; nothing here
// participates in admission decisions.
package view

import (
	"fmt"
	"sort"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rnav"
)

// Detail is a component rendering one resolved item.
type Detail struct {
	Item rnav.Item
}

func (d Detail) Render(b *element.Builder) any {
	b.DivClass("detail").R(
		b.H2().T(d.Item.Name),
		b.Ul().R(
			d.renderFields(b),
		),
	)
	return nil
}

// renderFields lists the item's fields in key order so output is stable.
func (d Detail) renderFields(b *element.Builder) any {
	keys := make([]string, 0, len(d.Item.Fields))
	for k := range d.Item.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.Li().R(
			b.T(k, ": "),
			b.T(toString(d.Item.Fields[k])),
		)
	}
	return nil
}

// List is a component rendering a collection snapshot as links.
type List struct {
	Title    string
	Snapshot *rnav.Snapshot
	BasePath string
}

func (l List) Render(b *element.Builder) any {
	b.H1().T(l.Title)
	b.Ul().R(
		l.renderItems(b),
	)
	return nil
}

func (l List) renderItems(b *element.Builder) any {
	for _, item := range l.Snapshot.Items() {
		b.Li().R(
			b.A("href", l.BasePath+"/"+item.Name).T(item.Name),
		)
	}
	return nil
}

// DetailHTML renders a standalone detail page for the item.
func DetailHTML(item rnav.Item) string {
	b := element.NewBuilder()
	element.RenderComponents(b, Detail{Item: item})
	return b.String()
}

// ListHTML renders a standalone list page for the snapshot.
func ListHTML(title string, snap *rnav.Snapshot, basePath string) string {
	b := element.NewBuilder()
	element.RenderComponents(b, List{Title: title, Snapshot: snap, BasePath: basePath})
	return b.String()
}

// toString gives a plain rendering for common field value types.
func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

package rnav

// Item is one member of a collection snapshot.
// Identity for matching purposes is Name only; Fields ride along unexamined
// for whatever the admitted view wants to show.
type Item struct {
	Name   string
	Fields map[string]any
}

// Snapshot is an immutable ordered collection produced once per parent
// activation. The owning parent holds it for the lifetime of its activation;
// child navigations only borrow it for matching.
type Snapshot struct {
	items []Item
}

// NewSnapshot builds a snapshot from the given items.
// The slice is copied so later mutation by the caller cannot leak in.
func NewSnapshot(items ...Item) *Snapshot {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Snapshot{items: cp}
}

// Len returns the number of items. Safe on a nil snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the item at position i.
func (s *Snapshot) At(i int) Item {
	return s.items[i]
}

// Find returns the first item whose Name equals key, in sequence order.
// The match is exact and case-sensitive; no normalization is applied since
// keys arrive straight from user-controlled path segments.
// Safe on a nil snapshot (reports not found).
func (s *Snapshot) Find(key string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}

	for i := range s.items {
		if s.items[i].Name == key {
			return s.items[i], true
		}
	}

	return Item{}, false
}

// Items returns a copy of the backing slice.
func (s *Snapshot) Items() []Item {
	if s == nil {
		return nil
	}
	cp := make([]Item, len(s.items))
	copy(cp, s.items)
	return cp
}

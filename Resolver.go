package rnav

import (
	"fmt"
)

// Reason classifies why a navigation was rejected.
type Reason int

const (
	// ReasonNone is the zero value; admitted outcomes carry it.
	ReasonNone Reason = iota

	// ReasonNotFound means the requested key matched no item in the parent
	// snapshot. Premature invocation (absent snapshot) is folded into this
	// so it fails closed without surfacing a distinct user-visible error.
	ReasonNotFound

	// ReasonProviderFailed means a parent data provider returned an error,
	// so admission could not be evaluated at all.
	ReasonProviderFailed
)

// String returns the textual form of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotFound:
		return "not found"
	case ReasonProviderFailed:
		return "provider failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one navigation request: either admitted
// with a resolved item, or rejected with a reason. It is produced exactly
// once per request; a denied match is final until the user issues a new
// request.
type Outcome struct {
	item     Item
	hasItem  bool
	admitted bool
	reason   Reason
	err      error
}

// Resolved builds an admitted outcome carrying the matched item.
func Resolved(item Item) Outcome {
	return Outcome{item: item, hasItem: true, admitted: true}
}

// Settled builds an admitted outcome for a route without a resolve step
// (e.g. a parent list view): admission succeeded, no item attached.
func Settled() Outcome {
	return Outcome{admitted: true}
}

// Rejected builds a denied outcome.
func Rejected(reason Reason, err error) Outcome {
	return Outcome{reason: reason, err: err}
}

// Admitted reports whether the navigation settled on its target.
func (o Outcome) Admitted() bool {
	return o.admitted
}

// Item returns the resolved item, if the outcome carries one.
func (o Outcome) Item() (Item, bool) {
	return o.item, o.hasItem
}

// Why returns the rejection reason (ReasonNone when admitted).
func (o Outcome) Why() Reason {
	return o.reason
}

// Err returns the error attached to a rejection. For admission denials it
// satisfies IsCanceled; provider faults carry the wrapped provider error.
func (o Outcome) Err() error {
	return o.err
}

// Resolve is the guarded-resolver contract: a linear search over the parent
// snapshot for the first item whose Name equals requestedKey (exact,
// case-sensitive). A nil snapshot means the resolver was invoked before the
// parent's data existed; per the fail-closed rule that is a rejection, never
// a read of undefined state. Resolve never mutates the snapshot, so calling
// it twice with the same inputs yields the same outcome.
func Resolve(snap *Snapshot, requestedKey string) Outcome {
	if item, ok := snap.Find(requestedKey); ok {
		return Resolved(item)
	}

	return Rejected(ReasonNotFound,
		fmt.Errorf("no item matches key %q: %w", requestedKey, ErrNavigationCanceled))
}

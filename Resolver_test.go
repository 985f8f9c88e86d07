package rnav

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestResolveAdmits(t *testing.T) {
	snap := NewSnapshot(Item{Name: "tesla"}, Item{Name: "arrinera"})

	outcome := Resolve(snap, "tesla")
	assert.True(t, outcome.Admitted())
	assert.Equal(t, ReasonNone, outcome.Why())
	assert.Nil(t, outcome.Err())

	item, ok := outcome.Item()
	assert.True(t, ok)
	assert.Equal(t, "tesla", item.Name)
}

func TestResolveRejects(t *testing.T) {
	snap := NewSnapshot(Item{Name: "tesla"}, Item{Name: "arrinera"})

	outcome := Resolve(snap, "ford")
	assert.False(t, outcome.Admitted())
	assert.Equal(t, ReasonNotFound, outcome.Why())

	// the rejection carries the recognized cancellation signal, not a
	// generic fault
	assert.True(t, IsCanceled(outcome.Err()))

	_, ok := outcome.Item()
	assert.False(t, ok)
}

func TestResolveDuplicateKeysDeterministic(t *testing.T) {
	snap := NewSnapshot(
		Item{Name: "tesla", Fields: map[string]any{"pos": 1}},
		Item{Name: "tesla", Fields: map[string]any{"pos": 2}},
	)

	for range 3 {
		outcome := Resolve(snap, "tesla")
		item, _ := outcome.Item()
		assert.Equal(t, 1, item.Fields["pos"])
	}
}

func TestResolveIdempotent(t *testing.T) {
	snap := NewSnapshot(Item{Name: "tesla"})

	first := Resolve(snap, "tesla")
	second := Resolve(snap, "tesla")

	assert.Equal(t, first.Admitted(), second.Admitted())
	firstItem, _ := first.Item()
	secondItem, _ := second.Item()
	assert.Equal(t, firstItem.Name, secondItem.Name)

	// and the snapshot itself is untouched
	assert.Equal(t, 1, snap.Len())
}

func TestResolveFailsClosedOnNilSnapshot(t *testing.T) {
	outcome := Resolve(nil, "tesla")

	assert.False(t, outcome.Admitted())
	assert.Equal(t, ReasonNotFound, outcome.Why())
	assert.True(t, IsCanceled(outcome.Err()))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "none", ReasonNone.String())
	assert.Equal(t, "not found", ReasonNotFound.String())
	assert.Equal(t, "provider failed", ReasonProviderFailed.String())
}

package book

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderIndex_InsertLookup(t *testing.T) {
	idx := NewOrderIndex()
	o := &Order{ID: 1001}
	require.True(t, idx.Insert(1001, o))
	got, ok := idx.Lookup(1001)
	require.True(t, ok)
	require.Same(t, o, got)
}

func TestOrderIndex_DuplicateRejected(t *testing.T) {
	idx := NewOrderIndex()
	require.True(t, idx.Insert(1, &Order{ID: 1}))
	require.False(t, idx.Insert(1, &Order{ID: 1}))
	require.Equal(t, 1, idx.Len())
}

func TestOrderIndex_DeleteThenLookupMisses(t *testing.T) {
	idx := NewOrderIndex()
	idx.Insert(7, &Order{ID: 7})
	require.True(t, idx.Delete(7))
	_, ok := idx.Lookup(7)
	require.False(t, ok)
	require.False(t, idx.Delete(7))
}

func TestOrderIndex_ZeroIDRejected(t *testing.T) {
	idx := NewOrderIndex()
	require.False(t, idx.Insert(0, &Order{}))
	_, ok := idx.Lookup(0)
	require.False(t, ok)
}

func TestOrderIndex_GrowsAndPreservesEntries(t *testing.T) {
	idx := NewOrderIndex()
	n := initialIndexCapacity // forces at least one rehash at load factor 0.5
	ids := make([]OrderID, 0, n)
	for i := 1; i <= n; i++ {
		id := OrderID(i)
		ids = append(ids, id)
		idx.Insert(id, &Order{ID: id})
	}
	for _, id := range ids {
		got, ok := idx.Lookup(id)
		require.True(t, ok)
		require.Equal(t, id, got.ID)
	}
}

// TestOrderIndex_DeleteSkipsPinnedHomeEntry is the minimal repro for the
// back-shift bug where the cluster walk stopped (instead of continuing past)
// an entry already at its own ideal slot. At capacity 8, ids 3, 4, and 11
// all hash (mod 8) to slot 3 or 4; 11 probes past a home-positioned 4 into
// slot 5. Deleting 3 must not lose 11.
func TestOrderIndex_DeleteSkipsPinnedHomeEntry(t *testing.T) {
	idx := &OrderIndex{
		keys:   make([]OrderID, 8),
		values: make([]*Order, 8),
		mask:   7,
	}
	o3 := &Order{ID: 3}
	o4 := &Order{ID: 4}
	o11 := &Order{ID: 11}
	require.True(t, idx.Insert(3, o3))
	require.True(t, idx.Insert(4, o4))
	require.True(t, idx.Insert(11, o11))

	require.True(t, idx.Delete(3))

	got4, ok := idx.Lookup(4)
	require.True(t, ok)
	require.Same(t, o4, got4)

	got11, ok := idx.Lookup(11)
	require.True(t, ok, "id 11 must still resolve after deleting the home-positioned entry it probed past")
	require.Same(t, o11, got11)
}

// TestOrderIndex_AdversarialBackshift stresses backward-shift deletion: a
// large population of distinct, colliding ids is inserted, every other one deleted,
// and a fresh population re-inserted into the resulting holes. Every
// id that should still be live must resolve to the right slot afterward.
func TestOrderIndex_AdversarialBackshift(t *testing.T) {
	idx := NewOrderIndex()
	const n = 5000
	ids := make([]OrderID, 0, n)
	drawn := make(map[OrderID]bool, n)
	rng := rand.New(rand.NewSource(1))
	for len(ids) < n {
		id := OrderID(rng.Int63n(1 << 20))
		if id == 0 || drawn[id] {
			continue
		}
		drawn[id] = true
		ids = append(ids, id)
		idx.Insert(id, &Order{ID: id})
	}

	live := make(map[OrderID]bool)
	for _, id := range ids {
		live[id] = true
	}
	for i, id := range ids {
		if i%2 == 0 {
			require.True(t, idx.Delete(id))
			delete(live, id)
		}
	}

	fresh := make([]OrderID, 0, n/2)
	for len(fresh) < n/2 {
		id := OrderID(rng.Int63n(1<<20) + (1 << 21))
		if id == 0 {
			continue
		}
		fresh = append(fresh, id)
		idx.Insert(id, &Order{ID: id})
		live[id] = true
	}

	for id, shouldBeLive := range live {
		got, ok := idx.Lookup(id)
		require.Equal(t, shouldBeLive, ok, "id %d", id)
		if shouldBeLive {
			require.Equal(t, id, got.ID)
		}
	}
	require.Equal(t, len(live), idx.Len())
}

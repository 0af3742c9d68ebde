package book

// initialIndexCapacity is the order index's starting capacity: a power of
// two large enough that a typical session's live order count never forces
// a rehash.
const initialIndexCapacity = 1 << 17

// OrderIndex is an open-addressed, linear-probing hash table mapping
// OrderID to *Order. Capacity is always a power of two; the hash of an id
// is the identity (ids already look random, per the ITCH feed's
// allocation scheme), so the slot is simply id & mask. Key 0 is the empty
// marker — 0 is never a valid order id. Deletion uses backward-shift
// (a Robin Hood hashing technique) instead of tombstones, so lookups never
// degrade from accumulated deletes.
type OrderIndex struct {
	keys   []OrderID
	values []*Order
	mask   uint64
	size   int
}

// NewOrderIndex creates an index at the starting capacity.
func NewOrderIndex() *OrderIndex {
	return &OrderIndex{
		keys:   make([]OrderID, initialIndexCapacity),
		values: make([]*Order, initialIndexCapacity),
		mask:   uint64(initialIndexCapacity - 1),
	}
}

// Len returns the number of live entries.
func (idx *OrderIndex) Len() int { return idx.size }

func (idx *OrderIndex) slot(id OrderID) uint64 {
	return uint64(id) & idx.mask
}

// Lookup returns the order for id, or (nil, false) if id is not resident.
func (idx *OrderIndex) Lookup(id OrderID) (*Order, bool) {
	if id == 0 {
		return nil, false
	}
	i := idx.slot(id)
	for {
		k := idx.keys[i]
		if k == 0 {
			return nil, false
		}
		if k == id {
			return idx.values[i], true
		}
		i = (i + 1) & idx.mask
	}
}

// Insert adds id -> o. It returns false without modifying the table if id
// is already resident (callers should surface this as DuplicateOrderId).
func (idx *OrderIndex) Insert(id OrderID, o *Order) bool {
	if id == 0 {
		return false
	}
	if idx.size*2 >= len(idx.keys) {
		idx.grow()
	}
	i := idx.slot(id)
	for {
		k := idx.keys[i]
		if k == 0 {
			idx.keys[i] = id
			idx.values[i] = o
			idx.size++
			return true
		}
		if k == id {
			return false
		}
		i = (i + 1) & idx.mask
	}
}

// Delete removes id if present, backward-shifting its probe cluster so no
// tombstone is left behind (Knuth's Algorithm R). Returns false if id was
// not resident.
//
// The hole left by the removed entry is held in place while the cluster is
// scanned forward: an entry is shifted back into the hole only if its ideal
// slot does not lie in the cyclic interval (hole, j] — i.e. it is not
// "pinned" between the hole and its current position by an intervening
// home-positioned entry — after which the hole advances to where that entry
// used to sit. An entry whose ideal slot IS in that interval must stay
// put, and the scan continues past it with the hole unchanged; stopping
// there (rather than continuing) is exactly the bug that loses entries
// probed past a home-positioned element.
func (idx *OrderIndex) Delete(id OrderID) bool {
	if id == 0 {
		return false
	}
	i := idx.slot(id)
	for {
		k := idx.keys[i]
		if k == 0 {
			return false
		}
		if k == id {
			break
		}
		i = (i + 1) & idx.mask
	}
	idx.size--
	idx.keys[i] = 0
	idx.values[i] = nil
	j := i
	for {
		j = (j + 1) & idx.mask
		k := idx.keys[j]
		if k == 0 {
			return true
		}
		home := idx.slot(k)
		var pinned bool
		if i <= j {
			pinned = i < home && home <= j
		} else {
			pinned = i < home || home <= j
		}
		if !pinned {
			idx.keys[i] = k
			idx.values[i] = idx.values[j]
			idx.keys[j] = 0
			idx.values[j] = nil
			i = j
		}
	}
}

func (idx *OrderIndex) grow() {
	oldKeys, oldValues := idx.keys, idx.values
	newCap := len(oldKeys) * 2
	idx.keys = make([]OrderID, newCap)
	idx.values = make([]*Order, newCap)
	idx.mask = uint64(newCap - 1)
	idx.size = 0
	for i, k := range oldKeys {
		if k == 0 {
			continue
		}
		idx.Insert(k, oldValues[i])
	}
}

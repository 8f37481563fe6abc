package hashcontainer

// SearchCursor walks the entries that share a hash. It is returned by Find and
// FindEmplaced and becomes invalid when the container changes.
type SearchCursor[S Slot, H Fragment] struct {
	hc  *Index[S, H]
	pos S
}

// Valid reports whether the cursor points at an entry.
func (c SearchCursor[S, H]) Valid() bool {
	return c.pos != sentinel[S]()
}

// Slot returns the slot the cursor points at.
func (c SearchCursor[S, H]) Slot() S {
	return c.pos
}

func (c SearchCursor[S, H]) Equal(other SearchCursor[S, H]) bool {
	return c.pos == other.pos
}

// Next moves to the next entry with the same hash as the current one.
func (c *SearchCursor[S, H]) Next() bool {
	if !c.Valid() {
		return false
	}
	var n = c.hc.nodes[c.pos]

	c.pos = c.hc.findNext(n.hash, n.next)

	return c.Valid()
}

// Cursor walks every linked entry, bucket after bucket.
// Within a bucket the most recently inserted entry comes first.
type Cursor[S Slot, H Fragment] struct {
	hc     *Index[S, H]
	pos    S
	bucket S
}

func (c Cursor[S, H]) Valid() bool {
	return c.pos != sentinel[S]()
}

func (c Cursor[S, H]) Slot() S {
	return c.pos
}

// Bucket returns the bucket of the current entry.
func (c Cursor[S, H]) Bucket() S {
	return c.bucket
}

func (c Cursor[S, H]) Equal(other Cursor[S, H]) bool {
	return c.pos == other.pos
}

func (c *Cursor[S, H]) Next() bool {
	if !c.Valid() {
		return false
	}
	c.pos = c.hc.nextElement(c.pos, &c.bucket)

	return c.Valid()
}

// LocalCursor walks the entries of a single bucket.
type LocalCursor[S Slot, H Fragment] struct {
	Cursor[S, H]
}

func (c LocalCursor[S, H]) Equal(other LocalCursor[S, H]) bool {
	return c.pos == other.pos
}

// Next moves to the next entry of the bucket. The cursor becomes invalid at the
// end of the bucket.
func (c *LocalCursor[S, H]) Next() bool {
	var current = c.bucket

	c.Cursor.Next()

	if c.bucket != current {
		c.pos = sentinel[S]()
	}

	return c.Valid()
}

// Find returns a cursor at the most recent entry inserted with hash.
// The cursor is invalid when there is none.
func (hc *Index[S, H]) Find(hash uint64) SearchCursor[S, H] {
	if hc.bucketCount == 0 {
		return SearchCursor[S, H]{hc: hc, pos: sentinel[S]()}
	}
	return hc.find(hc.high(hash), hc.low(hash))
}

// FindAll calls a handler for every slot inserted with hash.
// It returns whether all of them were visited.
// The handler can continue the process by returning true or abort with false.
func (hc *Index[S, H]) FindAll(hash uint64, handler func(S) bool) bool {
	for c := hc.Find(hash); c.Valid(); c.Next() {
		if !handler(c.Slot()) {
			return false
		}
	}
	return true
}

// Begin returns a cursor at the first entry of the first non-empty bucket.
func (hc *Index[S, H]) Begin() Cursor[S, H] {
	for b := S(0); b < hc.bucketCount; b++ {
		if first := hc.buckets[b].first; first != sentinel[S]() {
			return Cursor[S, H]{hc: hc, pos: first, bucket: b}
		}
	}
	return hc.End()
}

// End returns the invalid cursor every exhausted Cursor compares equal to.
func (hc *Index[S, H]) End() Cursor[S, H] {
	return Cursor[S, H]{hc: hc, pos: sentinel[S]()}
}

// LocalBegin returns a cursor at the first entry of the given bucket.
func (hc *Index[S, H]) LocalBegin(index S) LocalCursor[S, H] {
	return LocalCursor[S, H]{Cursor[S, H]{hc: hc, pos: hc.buckets[index].first, bucket: index}}
}

func (hc *Index[S, H]) LocalEnd() LocalCursor[S, H] {
	return LocalCursor[S, H]{hc.End()}
}

// Iter calls a handler for every linked slot in cursor order.
// It returns whether all slots were iterated.
func (hc *Index[S, H]) Iter(handler func(S) bool) bool {
	for c := hc.Begin(); c.Valid(); c.Next() {
		if !handler(c.Slot()) {
			return false
		}
	}
	return true
}

func (hc *Index[S, H]) find(hash H, bucket S) SearchCursor[S, H] {
	return SearchCursor[S, H]{hc: hc, pos: hc.findNext(hash, hc.buckets[bucket].first)}
}

// findNext walks the chain from cur and returns the first node holding hash
func (hc *Index[S, H]) findNext(hash H, cur S) S {
	for cur != sentinel[S]() {
		if hc.nodes[cur].hash == hash {
			return cur
		}
		cur = hc.nodes[cur].next
	}
	return sentinel[S]()
}

// nextElement follows the chain of cur, then jumps to the next non-empty bucket
func (hc *Index[S, H]) nextElement(cur S, bucket *S) S {
	if next := hc.nodes[cur].next; next != sentinel[S]() {
		return next
	}

	for *bucket++; *bucket < hc.bucketCount; *bucket++ {
		if first := hc.buckets[*bucket].first; first != sentinel[S]() {
			return first
		}
	}

	return sentinel[S]()
}

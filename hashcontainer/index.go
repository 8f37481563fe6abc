package hashcontainer

import (
	"errors"
	"fmt"

	"github.com/hideo55/go-popcount"
	"golang.org/x/exp/constraints"
)

// BucketFactor is the number of buckets allocated per node.
// Raising it beyond 2 gives only minor gains, going below 1 hurts badly.
const BucketFactor = 2

// ErrCapacity is returned by New when the requested number of entries does not
// fit the slot type.
var ErrCapacity = errors.New("hashcontainer: size is too large")

// Slot is the unsigned type used for slot numbers and chain links.
type Slot interface {
	constraints.Unsigned
}

// Fragment is the unsigned type used to keep the high part of a hash.
// It must be narrower than 64 bits.
type Fragment interface {
	~uint8 | ~uint16 | ~uint32
}

type bucket[S Slot] struct {
	first S
}

type node[S Slot, H Fragment] struct {
	// hash is the high part of the inserted hash
	hash H
	// next links the chain, or holds the target bucket of an emplaced node
	next S
}

// Index is a fixed-size hash container. The zero value has no capacity.
type Index[S Slot, H Fragment] struct {
	bucketCount S
	nodeCount   S
	shift       uint

	buckets []bucket[S]
	nodes   []node[S, H]
}

// HashContainer is the full configuration: 32-bit slots, 32-bit fragments.
type HashContainer = Index[uint32, uint32]

// SparseHashContainer trades precision for memory: 32-bit slots, 16-bit fragments.
type SparseHashContainer = Index[uint32, uint16]

// New returns an Index able to hold entries slots.
func New[S Slot, H Fragment](entries int) (*Index[S, H], error) {
	count, err := computeBucketCount[S](entries)
	if err != nil {
		return nil, err
	}

	var hc = &Index[S, H]{
		bucketCount: count,
		nodeCount:   S(entries),
		shift:       uint(64 - popcount.Count(uint64(sentinel[H]()))),
		buckets:     make([]bucket[S], count),
		nodes:       make([]node[S, H], entries),
	}

	hc.resetNodes()
	hc.Clear()

	return hc, nil
}

func NewHashContainer(entries int) (*HashContainer, error) {
	return New[uint32, uint32](entries)
}

func NewSparseHashContainer(entries int) (*SparseHashContainer, error) {
	return New[uint32, uint16](entries)
}

// Clone returns a deep copy of the container.
func (hc *Index[S, H]) Clone() *Index[S, H] {
	var clone = *hc

	clone.buckets = make([]bucket[S], len(hc.buckets))
	clone.nodes = make([]node[S, H], len(hc.nodes))

	copy(clone.buckets, hc.buckets)
	copy(clone.nodes, hc.nodes)

	return &clone
}

// Swap exchanges the contents of two containers.
func (hc *Index[S, H]) Swap(other *Index[S, H]) {
	*hc, *other = *other, *hc
}

// CopyFrom replaces the contents with a deep copy of other.
func (hc *Index[S, H]) CopyFrom(other *Index[S, H]) {
	hc.Swap(other.Clone())
}

// MoveFrom takes over the arrays of other. other is left without capacity.
func (hc *Index[S, H]) MoveFrom(other *Index[S, H]) {
	if hc == other {
		return
	}
	*hc = *other
	*other = Index[S, H]{}
}

// Insert links slot into the bucket of hash. Iterators become invalid.
// The slot must be unused and smaller than Nodes(); hash need not be unique.
func (hc *Index[S, H]) Insert(hash uint64, slot S) {
	hc.mustBeFree(slot, "Insert")

	// the low part selects the bucket,
	// the high part tells entries of a bucket apart
	var (
		n = &hc.nodes[slot]
		b = &hc.buckets[hc.low(hash)]
	)

	n.next = b.first
	n.hash = hc.high(hash)
	b.first = slot
}

// Remove unlinks slot from the bucket of hash. Iterators become invalid.
// Nothing happens when the stored hash of slot does not match.
func (hc *Index[S, H]) Remove(hash uint64, slot S) {
	var n = &hc.nodes[slot]

	if n.hash != hc.high(hash) {
		return
	}

	var b = &hc.buckets[hc.low(hash)]

	if b.first == slot {
		b.first = n.next
	} else {
		// find the predecessor and skip the removed node
		for cur := b.first; cur != sentinel[S](); cur = hc.nodes[cur].next {
			if prev := &hc.nodes[cur]; prev.next == slot {
				prev.next = n.next
				break
			}
		}
	}

	if debugChecks {
		hc.poison(slot)
	}
}

// Clear removes every entry but keeps the capacity.
func (hc *Index[S, H]) Clear() {
	if debugChecks {
		hc.resetNodes()
	}
	for i := range hc.buckets {
		hc.buckets[i].first = sentinel[S]()
	}
}

// Emplace stores hash in slot without linking it into a bucket.
// The node stays invisible to Find and the iterators until InsertEmplaced.
func (hc *Index[S, H]) Emplace(hash uint64, slot S) {
	hc.mustBeFree(slot, "Emplace")

	var n = &hc.nodes[slot]

	// next holds the target bucket until the node gets linked
	n.next = hc.low(hash)
	n.hash = hc.high(hash)
}

// InsertEmplaced links a node stored by Emplace into its bucket.
func (hc *Index[S, H]) InsertEmplaced(slot S) {
	hc.mustBeEmplaced(slot, "InsertEmplaced")

	var (
		n = &hc.nodes[slot]
		b = &hc.buckets[n.next]
	)

	n.next = b.first
	b.first = slot
}

// FindEmplaced searches the linked entries sharing the hash of an emplaced slot.
// The emplaced slot itself is never found.
func (hc *Index[S, H]) FindEmplaced(slot S) SearchCursor[S, H] {
	hc.mustBeEmplaced(slot, "FindEmplaced")

	var n = hc.nodes[slot]

	return hc.find(n.hash, n.next)
}

// DropEmplaced forgets a node stored by Emplace without linking it.
func (hc *Index[S, H]) DropEmplaced(slot S) {
	hc.mustBeEmplaced(slot, "DropEmplaced")
	hc.poison(slot)
}

// Nodes returns the number of slots.
func (hc *Index[S, H]) Nodes() S {
	return hc.nodeCount
}

// Buckets returns the number of buckets.
func (hc *Index[S, H]) Buckets() S {
	return hc.bucketCount
}

// Hash returns the stored high part of the hash of slot.
func (hc *Index[S, H]) Hash(slot S) H {
	return hc.nodes[slot].hash
}

// high returns the highest part of hash that fits into H
func (hc *Index[S, H]) high(hash uint64) H {
	return H(hash >> hc.shift)
}

// low returns the bucket of hash
func (hc *Index[S, H]) low(hash uint64) S {
	return S(hash) % hc.bucketCount
}

func (hc *Index[S, H]) poison(slot S) {
	hc.nodes[slot] = node[S, H]{hash: sentinel[H](), next: sentinel[S]()}
}

func (hc *Index[S, H]) resetNodes() {
	for i := range hc.nodes {
		hc.nodes[i] = node[S, H]{hash: sentinel[H](), next: sentinel[S]()}
	}
}

func (hc *Index[S, H]) mustBeFree(slot S, op string) {
	if !debugChecks {
		return
	}
	if uint64(slot) >= uint64(len(hc.nodes)) {
		panic(fmt.Sprintf("hashcontainer: %s: slot %d out of range", op, slot))
	}
	if n := hc.nodes[slot]; n.next != sentinel[S]() || n.hash != sentinel[H]() {
		panic(fmt.Sprintf("hashcontainer: %s: slot %d is in use", op, slot))
	}
}

func (hc *Index[S, H]) mustBeEmplaced(slot S, op string) {
	if !debugChecks {
		return
	}
	if uint64(slot) >= uint64(len(hc.nodes)) {
		panic(fmt.Sprintf("hashcontainer: %s: slot %d out of range", op, slot))
	}
	if hc.nodes[slot].next == sentinel[S]() {
		panic(fmt.Sprintf("hashcontainer: %s: slot %d was not emplaced", op, slot))
	}
}

func computeBucketCount[S Slot](entries int) (S, error) {
	var limit = uint64(sentinel[S]()) / BucketFactor

	if entries < 0 || uint64(entries) >= limit {
		return 0, fmt.Errorf("%w: %d entries, limit is %d", ErrCapacity, entries, limit)
	}

	return S(BucketFactor * entries), nil
}

// sentinel returns the all-ones value of T, meaning "no link" or "unused"
func sentinel[T constraints.Unsigned]() T {
	return ^T(0)
}

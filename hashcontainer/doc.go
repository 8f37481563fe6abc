// Package hashcontainer defines a fixed-size container that maps 64-bit hashes to
// slot numbers.
//
// It replaces a general purpose map in places where the caller
//
//   - only needs to store hashes;
//   - knows the maximum number of entries up front;
//   - can enumerate its entries from 0 to size-1.
//
// The last point matters: the slot number of an entry is its address inside the
// container, so an Index behaves like a map[hash]slot without storing the value.
//
// Layout:
// ------
//
//   - Node list (size = N): one node per slot.
//
//     [ hash: H ] [ next: S ]
//     <high part of the hash> <next slot in the chain | ^S(0)>
//
//   - Bucket list (size = BucketFactor * N): one head per bucket.
//
//     [ first: S ]
//     <first slot in the chain | ^S(0)>
//
// Hash split:
// ----------
//
//	 63                      64-bits(H)                                  0
//	[ hhhhhhhh ... hhhhhhhhh ][ ......... llllllllllllllllllllllllllll ]
//	 `-- stored in node.hash   `-- S(hash) % buckets selects the bucket
//
// Two hashes that land in the same bucket are told apart by the stored high part
// only. There is no full re-check of the hash.
//
// Example chains (N = 4, 8 buckets):
// ---------------------------------
//
//	bucket 0: -
//	bucket 1: 3 -> 0 -> -
//	bucket 2: -
//	...
//	bucket 5: 1 -> -
//
// Insert pushes onto the chain head, so a chain lists the most recent entry first.
//
// Invariant checks:
// ----------------
//
// Building with the hcdebug tag enables assertions on the slot preconditions of
// Insert, Emplace, InsertEmplaced and FindEmplaced. Freed and cleared nodes are then
// poisoned with sentinel values. Without the tag the checks compile away and misuse
// silently corrupts the container.
package hashcontainer

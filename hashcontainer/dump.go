package hashcontainer

import (
	"fmt"
	"io"
)

// DebugDump writes every non-empty bucket with its chain to w.
func (hc *Index[S, H]) DebugDump(w io.Writer) {
	fmt.Fprintf(w, "nodes=%d buckets=%d\n", hc.nodeCount, hc.bucketCount)

	for b := S(0); b < hc.bucketCount; b++ {
		if hc.buckets[b].first == sentinel[S]() {
			continue
		}
		fmt.Fprintf(w, "bucket %d:", b)
		for c := hc.LocalBegin(b); c.Valid(); c.Next() {
			fmt.Fprintf(w, " %d(h=%#x)", c.Slot(), hc.nodes[c.Slot()].hash)
		}
		fmt.Fprintln(w)
	}
}

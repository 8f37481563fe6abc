// Package counter counts string keys in a fixed-capacity keyset.Set.
package counter

import (
	"sort"

	"github.com/Highlife1911/ultimate-hashcontainer/hashcontainer/keyset"
)

type CountedKey struct {
	Key   string
	Count int
}
type CountedKeySlice []CountedKey

type Counter struct {
	set    *keyset.Set
	counts []int // indexed by slot
}

func New(capacity int, counted_keys ...CountedKey) (*Counter, error) {
	set, err := keyset.New(capacity)
	if err != nil {
		return nil, err
	}

	var counter = &Counter{
		set:    set,
		counts: make([]int, capacity),
	}

	for _, ckey := range counted_keys {
		if _, err := counter.IncBy(ckey.Key, ckey.Count); err != nil {
			return nil, err
		}
	}

	return counter, nil
}

// Len returns the number of keys.
func (t *Counter) Len() int {
	return t.set.Len()
}

// Get returns a count associated with the key
func (t *Counter) Get(key string) (count int) {
	if slot, ok := t.set.Index(key); ok {
		count = t.counts[slot]
	}
	return
}

// Replace applies a func to a previous count of a key and replaces the value with return value.
// Returns the previous count.
func (t *Counter) Replace(key string, replace func(int) int) (int, error) {
	slot, _, err := t.set.Add(key)
	if err != nil {
		return 0, err
	}

	prev := t.counts[slot]
	t.counts[slot] = replace(prev)

	return prev, nil
}

// Set associates a given count with a key. Returns previous count.
func (t *Counter) Set(key string, count int) (int, error) {
	return t.Replace(key, func(int) int { return count })
}

// IncBy incremets a count associated with the key by a given delta and returns it.
func (t *Counter) IncBy(key string, delta int) (int, error) {
	prev, err := t.Replace(key, func(prev int) int { return prev + delta })
	if err != nil {
		return 0, err
	}
	return prev + delta, nil
}

// Inc incremets a count associated with the key by 1 and returns it.
func (t *Counter) Inc(key string) (int, error) {
	return t.IncBy(key, 1)
}

// Dec decremets a count associated with the key by 1 and returns it.
func (t *Counter) Dec(key string) (int, error) {
	return t.IncBy(key, -1)
}

// Del removes the key and returns its counter
func (t *Counter) Del(key string) (count int) {
	slot, ok := t.set.Index(key)
	if !ok {
		return
	}
	count = t.counts[slot]
	t.counts[slot] = 0
	t.set.Del(key)
	return
}

// Merge merges another Counter into this one. Counters of common keys are added up.
func (t *Counter) Merge(other *Counter) error {
	if other == nil {
		return nil
	}

	var err error

	other.Iter(func(ckey CountedKey) bool {
		_, err = t.IncBy(ckey.Key, ckey.Count)
		return err == nil
	})

	return err
}

// Iter calls a handler for all keys.
// It returns whether all keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Counter) Iter(handler func(CountedKey) bool) bool {
	return t.set.Iter(func(slot uint32, key string) bool {
		return handler(CountedKey{key, t.counts[slot]})
	})
}

// Keys returns all keys in a sorted order.
func (t *Counter) Keys() []string {
	return t.set.Keys()
}

// CountedKeys returns a CountedKeySlice sorted by count (descending)
func (t *Counter) CountedKeys() CountedKeySlice {
	pairs := make(CountedKeySlice, 0, t.Len())

	t.Iter(func(ckey CountedKey) bool {
		pairs = append(pairs, ckey)
		return true
	})

	sort.Sort(pairs)

	return pairs
}

// -- CountedKeySlice sort interface --

func (v CountedKeySlice) Len() int      { return len(v) }
func (v CountedKeySlice) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v CountedKeySlice) Less(i, j int) bool {
	if v[i].Count == v[j].Count {
		return v[i].Key < v[j].Key
	}
	return v[i].Count > v[j].Count // inverted logic
}

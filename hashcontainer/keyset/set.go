// Package keyset implements a fixed-capacity set of string keys on top of a
// hashcontainer.HashContainer.
//
// Every key gets a slot from a slotpool.Pool. The container maps the xxhash of
// the key to its slot and the key itself is kept in a slot-indexed slice, so a
// lookup compares only the keys whose hashes collide.
package keyset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/Highlife1911/ultimate-hashcontainer/hashcontainer"
	"github.com/Highlife1911/ultimate-hashcontainer/slotpool"
)

// ErrFull is returned when a key needs a slot and none is free.
var ErrFull = errors.New("keyset: no free slot")

type Set struct {
	index *hashcontainer.HashContainer
	pool  *slotpool.Pool
	keys  []string
}

func New(capacity int) (*Set, error) {
	index, err := hashcontainer.NewHashContainer(capacity)
	if err != nil {
		return nil, fmt.Errorf("keyset: %w", err)
	}

	return &Set{
		index: index,
		pool:  slotpool.New(uint32(capacity)),
		keys:  make([]string, capacity),
	}, nil
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return int(s.pool.Len())
}

// Cap returns the maximum number of keys.
func (s *Set) Cap() int {
	return int(s.pool.Cap())
}

func (s *Set) Has(key string) bool {
	_, ok := s.Index(key)
	return ok
}

// Index returns the slot of a key.
func (s *Set) Index(key string) (uint32, bool) {
	return s.lookup(hashKey(key), key)
}

// Key returns the key stored in a slot.
func (s *Set) Key(slot uint32) (string, bool) {
	if !s.pool.Has(slot) {
		return "", false
	}
	return s.keys[slot], true
}

// Add inserts a key unless it is already there.
// It returns the slot of the key and whether it was added.
func (s *Set) Add(key string) (uint32, bool, error) {
	var hash = hashKey(key)

	if slot, ok := s.lookup(hash, key); ok {
		return slot, false, nil
	}

	slot, ok := s.pool.Acquire()
	if !ok {
		return 0, false, ErrFull
	}

	s.keys[slot] = key
	s.index.Insert(hash, slot)

	return slot, true, nil
}

// AddAll inserts a batch of keys and returns how many were new.
// Each key of the batch needs a free slot up front, duplicates included.
// On ErrFull the set is left unchanged.
func (s *Set) AddAll(keys ...string) (int, error) {
	var batch = make([]uint32, 0, len(keys))

	// store every key without making it visible yet
	for _, key := range keys {
		slot, ok := s.pool.Acquire()
		if !ok {
			for _, slot := range batch {
				s.discard(slot)
			}
			return 0, ErrFull
		}

		s.keys[slot] = key
		s.index.Emplace(hashKey(key), slot)
		batch = append(batch, slot)
	}

	// link the keys in order; an emplaced key never matches itself,
	// but it does match an earlier copy from the same batch
	var added int

	for _, slot := range batch {
		if s.linked(slot) {
			s.discard(slot)
			continue
		}
		s.index.InsertEmplaced(slot)
		added++
	}

	return added, nil
}

// Del removes a key and reports whether it was there.
func (s *Set) Del(key string) bool {
	var hash = hashKey(key)

	slot, ok := s.lookup(hash, key)
	if !ok {
		return false
	}

	s.index.Remove(hash, slot)
	s.pool.Release(slot)
	s.keys[slot] = ""

	return true
}

// Clear removes every key.
func (s *Set) Clear() {
	s.index.Clear()
	s.pool.Reset()
	for i := range s.keys {
		s.keys[i] = ""
	}
}

// Iter calls a handler for every key in hash order.
// The handler can continue the process by returning true or abort with false.
func (s *Set) Iter(handler func(slot uint32, key string) bool) bool {
	return s.index.Iter(func(slot uint32) bool {
		return handler(slot, s.keys[slot])
	})
}

// Keys returns all keys in a sorted order.
func (s *Set) Keys() []string {
	var keys = make([]string, 0, s.Len())

	s.Iter(func(_ uint32, key string) bool {
		keys = append(keys, key)
		return true
	})

	sort.Strings(keys)

	return keys
}

func (s *Set) lookup(hash uint64, key string) (uint32, bool) {
	for c := s.index.Find(hash); c.Valid(); c.Next() {
		if s.keys[c.Slot()] == key {
			return c.Slot(), true
		}
	}
	return 0, false
}

// linked reports whether the key of an emplaced slot is already in the set
func (s *Set) linked(slot uint32) bool {
	for c := s.index.FindEmplaced(slot); c.Valid(); c.Next() {
		if s.keys[c.Slot()] == s.keys[slot] {
			return true
		}
	}
	return false
}

func (s *Set) discard(slot uint32) {
	s.index.DropEmplaced(slot)
	s.pool.Release(slot)
	s.keys[slot] = ""
}

func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

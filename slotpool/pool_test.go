package slotpool

import "testing"

func Test_EmptyPool(t *testing.T) {
	p := New(0)
	if slot, ok := p.Acquire(); ok {
		t.Errorf("p.Acquire() returned %v on an empty pool", slot)
	}
	if p.Has(0) {
		t.Error("p.Has(0) returned true on an empty pool")
	}
	if p.Release(0) {
		t.Error("p.Release(0) returned true on an empty pool")
	}
	if n := p.Free(); n != 0 {
		t.Errorf("p.Free() is not 0 as expected, instead: %v", n)
	}
}

func Test_AcquireAll(t *testing.T) {
	for _, size := range []uint32{1, 63, 64, 65, 130} {
		p := New(size)
		for i := uint32(0); i < size; i++ {
			slot, ok := p.Acquire()
			if !ok || slot != i {
				t.Errorf("size %d: p.Acquire() returned %v,%v instead of %v,true", size, slot, ok, i)
			}
		}
		if slot, ok := p.Acquire(); ok {
			t.Errorf("size %d: p.Acquire() returned %v on a full pool", size, slot)
		}
		if p.Len() != size || p.Free() != 0 {
			t.Errorf("size %d: unexpected p.Len() %v, p.Free() %v", size, p.Len(), p.Free())
		}
		if n := p.Recount(); n != size {
			t.Errorf("size %d: p.Recount() is not %v, instead: %v", size, size, n)
		}
		if p.Has(size) {
			t.Errorf("size %d: p.Has(%d) returned true beyond the capacity", size, size)
		}
	}
}

func Test_ReleaseReuse(t *testing.T) {
	p := New(200)
	for i := 0; i < 200; i++ {
		p.Acquire()
	}

	// release 3, 70 and 150
	for _, slot := range []uint32{150, 3, 70} {
		if !p.Release(slot) {
			t.Errorf("p.Release(%d) returned false the first time", slot)
		}
		if p.Release(slot) {
			t.Errorf("p.Release(%d) returned true the second time", slot)
		}
	}
	if p.Len() != 197 {
		t.Errorf("p.Len() is not 197 as expected, instead: %v", p.Len())
	}

	// lowest free slots come back first
	for _, exp := range []uint32{3, 70, 150} {
		if slot, ok := p.Acquire(); !ok || slot != exp {
			t.Errorf("p.Acquire() returned %v,%v instead of %v,true", slot, ok, exp)
		}
	}
	if _, ok := p.Acquire(); ok {
		t.Error("p.Acquire() succeeded on a full pool")
	}
}

func Test_Rank(t *testing.T) {
	p := New(130)
	for i := 0; i < 130; i++ {
		p.Acquire()
	}
	for _, slot := range []uint32{0, 64, 129} {
		p.Release(slot)
	}

	for _, tcase := range []struct {
		slot uint32
		rank uint32
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{64, 63},
		{65, 63},
		{66, 64},
		{129, 127},
		{130, 127},
		{1000, 127},
	} {
		if r := p.Rank(tcase.slot); r != tcase.rank {
			t.Errorf("p.Rank(%d) is not %v as expected, instead: %v", tcase.slot, tcase.rank, r)
		}
	}
}

func Test_Reset(t *testing.T) {
	p := New(10)
	for i := 0; i < 10; i++ {
		p.Acquire()
	}
	p.Reset()
	if p.Len() != 0 || p.Has(5) {
		t.Errorf("p.Reset() left slots in use: %v", p.Len())
	}
	if slot, ok := p.Acquire(); !ok || slot != 0 {
		t.Errorf("p.Acquire() returned %v,%v after a reset", slot, ok)
	}
}

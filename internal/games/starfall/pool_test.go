package starfall

import "testing"

func TestPoolCapacity(t *testing.T) {
	for _, capacity := range []int{1, 10, 20, 50} {
		p := NewPool(KindAsteroid, capacity)

		for i := 0; i < capacity; i++ {
			if _, ok := p.Acquire(); !ok {
				t.Fatalf("cap %d: acquire %d failed", capacity, i)
			}
		}
		if _, ok := p.Acquire(); ok {
			t.Fatalf("cap %d: acquire past capacity should fail", capacity)
		}
		if p.Active() != capacity {
			t.Errorf("cap %d: Active() = %d", capacity, p.Active())
		}

		p.Release(0)
		h, ok := p.Acquire()
		if !ok {
			t.Fatalf("cap %d: acquire after release failed", capacity)
		}
		if h != 0 {
			t.Errorf("cap %d: expected released handle 0 back, got %d", capacity, h)
		}
	}
}

func TestPoolAcquireActivates(t *testing.T) {
	p := NewPool(KindBullet, 3)
	h, _ := p.Acquire()
	e := p.Get(h)
	if !e.Active || !e.Visible {
		t.Errorf("acquired slot should be active and visible, got %+v", *e)
	}
	if h != 0 {
		t.Errorf("first acquire should hand out handle 0, got %d", h)
	}
}

func TestPoolReleaseIdempotent(t *testing.T) {
	p := NewPool(KindEnergy, 2)
	h, _ := p.Acquire()

	p.Release(h)
	p.Release(h)
	p.Release(Handle(99))
	p.Release(Handle(-1))

	if p.Active() != 0 {
		t.Errorf("Active() = %d after double release", p.Active())
	}
	// A double release must not leave two free entries for the same slot
	a, _ := p.Acquire()
	b, _ := p.Acquire()
	if a == b {
		t.Errorf("handle %d handed out twice", a)
	}
	if _, ok := p.Acquire(); ok {
		t.Error("pool of 2 should be exhausted")
	}
	if e := p.Get(h); e.Visible != true {
		t.Error("reacquired slot should be visible")
	}
}

func TestPoolReleaseHides(t *testing.T) {
	p := NewPool(KindAsteroid, 1)
	h, _ := p.Acquire()
	p.Release(h)
	if e := p.Get(h); e.Active || e.Visible {
		t.Errorf("released slot should be inactive and hidden, got %+v", *e)
	}
}

func TestPoolEachReleasesDuringIteration(t *testing.T) {
	p := NewPool(KindAsteroid, 5)
	for i := 0; i < 5; i++ {
		h, _ := p.Acquire()
		p.Get(h).Y = float64(i * 100)
	}

	p.Each(func(h Handle, e *Entity) {
		if e.Y >= 300 {
			p.Release(h)
		}
	})

	if p.Active() != 3 {
		t.Errorf("Active() = %d, want 3", p.Active())
	}
	visited := 0
	p.Each(func(Handle, *Entity) { visited++ })
	if visited != 3 {
		t.Errorf("Each visited %d slots, want 3", visited)
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool(KindAsteroid, 4)
	for i := 0; i < 4; i++ {
		p.Acquire()
	}
	p.Clear()
	if p.Active() != 0 {
		t.Errorf("Active() = %d after Clear", p.Active())
	}
	for i := 0; i < 4; i++ {
		if _, ok := p.Acquire(); !ok {
			t.Fatalf("acquire %d after Clear failed", i)
		}
	}
}

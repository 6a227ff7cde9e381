package starfall

// Kind identifies which pool an entity belongs to.
type Kind int

const (
	KindAsteroid Kind = iota
	KindBullet
	KindEnergy
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindEnergy:
		return "energy"
	default:
		return "unknown"
	}
}

// Entity is one pool slot. Slots are recycled, never freed.
type Entity struct {
	Active  bool
	Visible bool
	X, Y    float64 // Center position in world units
	Variant int     // Cosmetic frame, asteroids only
}

// Handle addresses a slot inside a Pool.
type Handle int

// Pool is a fixed-capacity arena of recyclable entities.
// Acquire and Release are the only ways to change occupancy.
type Pool struct {
	kind  Kind
	slots []Entity
	free  []Handle // Stack of inactive slots
}

// NewPool creates a pool with capacity inactive slots.
func NewPool(kind Kind, capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{
		kind:  kind,
		slots: make([]Entity, capacity),
		free:  make([]Handle, 0, capacity),
	}
	p.Clear()
	return p
}

// Kind returns the entity kind stored in this pool.
func (p *Pool) Kind() Kind {
	return p.kind
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Active returns the number of active slots.
func (p *Pool) Active() int {
	return len(p.slots) - len(p.free)
}

// Acquire activates an inactive slot and returns its handle.
// Returns false when every slot is already active; callers treat that as a
// skipped spawn.
func (p *Pool) Acquire() (Handle, bool) {
	if len(p.free) == 0 {
		return 0, false
	}
	h := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	p.slots[h] = Entity{Active: true, Visible: true}
	return h, true
}

// Release deactivates and hides a slot, returning it to the free set.
// Releasing an inactive or unknown handle does nothing.
func (p *Pool) Release(h Handle) {
	e := p.Get(h)
	if e == nil || !e.Active {
		return
	}
	e.Active = false
	e.Visible = false
	p.free = append(p.free, h)
}

// Get returns the slot for h, or nil if h is out of range.
// The slot may be inactive.
func (p *Pool) Get(h Handle) *Entity {
	if h < 0 || int(h) >= len(p.slots) {
		return nil
	}
	return &p.slots[h]
}

// Each calls fn for every active slot in handle order.
// fn may release the slot it is given.
func (p *Pool) Each(fn func(h Handle, e *Entity)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(Handle(i), &p.slots[i])
		}
	}
}

// Clear deactivates every slot.
func (p *Pool) Clear() {
	p.free = p.free[:0]
	// Push in reverse so the lowest handle is handed out first
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i] = Entity{}
		p.free = append(p.free, Handle(i))
	}
}

package pattern

// Storage is the backing store for a compiled state sequence.
//
// The compiler only appends; once compilation finishes the states are never
// modified again. Two strategies are provided:
//   - Growable: slice backed, never fails (the default)
//   - Fixed: bounded capacity allocated up front, fails with ErrCapacity
//
// A Storage instance belongs to exactly one Program and must not be reused.
type Storage interface {
	// Push appends a state. It returns ErrCapacity if the state does not fit.
	Push(s State) error

	// States returns the states pushed so far.
	States() []State
}

// Growable is a Storage backed by a growable slice.
type Growable struct {
	states []State
}

// NewGrowable creates an empty growable storage.
func NewGrowable() *Growable {
	return &Growable{}
}

// Push implements Storage.
func (g *Growable) Push(s State) error {
	g.states = append(g.states, s)
	return nil
}

// States implements Storage.
func (g *Growable) States() []State {
	return g.states
}

// Fixed is a Storage with a capacity chosen up front. It never reallocates,
// which keeps memory use of a compiled pattern bounded by the capacity.
type Fixed struct {
	buf []State
	n   int
}

// NewFixed creates a storage that holds at most capacity states.
// Note that a non-empty pattern needs one extra state for the end marker.
func NewFixed(capacity int) *Fixed {
	if capacity < 0 {
		capacity = 0
	}
	return &Fixed{buf: make([]State, capacity)}
}

// Push implements Storage.
func (f *Fixed) Push(s State) error {
	if f.n == len(f.buf) {
		return ErrCapacity
	}
	f.buf[f.n] = s
	f.n++
	return nil
}

// States implements Storage.
func (f *Fixed) States() []State {
	return f.buf[:f.n:f.n]
}

// Cap returns the capacity of the storage.
func (f *Fixed) Cap() int {
	return len(f.buf)
}

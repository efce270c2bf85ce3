package gui

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed last frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
// The GUI is single-threaded: stores are created at package init and only
// touched from the goroutine that drives Begin/End, so nothing here locks.
var (
	registeredStores []Cleanable
	currentFrame     uint64
)

// NextFrame advances the frame counter and cleans all registered stores.
// Context.Reset calls it once at the start of each GUI frame.
// Entries not accessed in the previous frame are removed, which is how a
// widget that stops being drawn loses its state.
func NextFrame() {
	currentFrame++
	for _, store := range registeredStores {
		store.Cleanup(currentFrame)
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for widget state that automatically
// cleans up unused entries each frame.
//
// Usage:
//
//	// At package level - one store per state type
//	var dividerStore = gui.NewFrameStore[DividerState]()
//
//	// In widget code
//	state := dividerStore.Get(id, DividerState{})
//	state.Hovered = true // state is *DividerState
//
// User-defined widgets create their own store the same way.
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a new store and registers it for automatic cleanup.
// Call it from a package-level var declaration.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registeredStores = append(registeredStores, store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
// The entry is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = currentFrame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: currentFrame}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// Returns nil if no state exists for this ID. Does not mark the entry as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets state for an ID and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = currentFrame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: currentFrame}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// Range calls fn for every live entry until fn returns false.
// Iteration order is unspecified.
func (s *FrameStore[T]) Range(fn func(id ID, value *T) bool) {
	for id, entry := range s.states {
		if !fn(id, &entry.value) {
			return
		}
	}
}

// Cleanup removes all entries that weren't accessed in the previous frame.
// Called by NextFrame; don't call it manually.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	// frame-1 because NextFrame just incremented
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	clear(s.states)
}

package feed

// Subject is a minimal observer registry: subscribers are plain funcs called
// synchronously on Notify. It exists so a pending-state change can reach
// interested parties without the feed depending on any rendering framework.
//
// Like Feed, Subject is meant for a single-threaded event loop and performs
// no locking of its own.
type Subject struct {
	subs map[int]func()
	next int
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Subject) Subscribe(fn func()) func() {
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Notify invokes every registered subscriber.
func (s *Subject) Notify() {
	for _, fn := range s.subs {
		fn()
	}
}

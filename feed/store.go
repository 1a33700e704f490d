package feed

// Store is an explicit map from query key to feed. It replaces the implicit
// shared query cache of a typical frontend stack: lifetime is entirely under
// caller control, which keeps test suites able to construct isolated
// instances.
type Store[T any] struct {
	feeds map[string]*Feed[T]
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{feeds: make(map[string]*Feed[T])}
}

// Get returns the feed for key, creating it with fetch if absent. The fetch
// function is only used on creation; an existing feed keeps its own.
func (s *Store[T]) Get(key string, fetch FetchFunc[T]) *Feed[T] {
	if f, ok := s.feeds[key]; ok {
		return f
	}
	f := New(fetch)
	s.feeds[key] = f
	return f
}

// Lookup returns the feed for key without creating one.
func (s *Store[T]) Lookup(key string) (*Feed[T], bool) {
	f, ok := s.feeds[key]
	return f, ok
}

// Reset resets the feed for key, if present.
func (s *Store[T]) Reset(key string) {
	if f, ok := s.feeds[key]; ok {
		f.Reset()
	}
}

// Remove drops the feed for key. A response arriving for a removed feed is
// simply never resolved.
func (s *Store[T]) Remove(key string) {
	delete(s.feeds, key)
}

// Len returns the number of cached feeds.
func (s *Store[T]) Len() int { return len(s.feeds) }

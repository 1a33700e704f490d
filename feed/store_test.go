package feed

import (
	"context"
	"testing"
)

func emptyFetch(_ context.Context, _ Cursor) (Page[int], error) {
	return Page[int]{}, nil
}

func TestStore_GetCreatesOnce(t *testing.T) {
	s := NewStore[int]()
	a := s.Get("catalogue?", emptyFetch)
	b := s.Get("catalogue?", emptyFetch)
	if a != b {
		t.Error("same key must return the same feed")
	}
	if s.Len() != 1 {
		t.Errorf("want 1 feed, got %d", s.Len())
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	s := NewStore[int]()
	a := s.Get("catalogue?", emptyFetch)
	b := s.Get("catalogue?doli", emptyFetch)
	if a == b {
		t.Error("distinct keys must own distinct feeds")
	}
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore[int]()
	if _, ok := s.Lookup("missing"); ok {
		t.Error("lookup of an absent key must report false")
	}
	s.Get("k", emptyFetch)
	if _, ok := s.Lookup("k"); !ok {
		t.Error("lookup after Get must report true")
	}
}

func TestStore_ResetBumpsEpoch(t *testing.T) {
	s := NewStore[int]()
	f := s.Get("k", emptyFetch)
	req, ok := f.BeginFirst()
	if !ok {
		t.Fatal("begin refused")
	}
	s.Reset("k")
	if f.Resolve(req, Page[int]{Items: []int{1}}, nil) {
		t.Error("response issued before Reset must be discarded")
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore[int]()
	s.Get("k", emptyFetch)
	s.Remove("k")
	if s.Len() != 0 {
		t.Errorf("want empty store, got %d", s.Len())
	}
}

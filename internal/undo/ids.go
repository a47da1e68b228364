package undo

import "sync"

// IDSource hands out item ids for created items.
type IDSource interface {
	// Next returns the id for a new item.
	Next() int
	// Release is called when the create that consumed id is undone.
	Release(id int)
}

// Sequence is a strictly increasing id source. Ids are never reused, so
// undoing a create leaves a gap.
type Sequence struct {
	mu   sync.Mutex
	next int
}

// NewSequence returns a sequence whose first id is start (at least 1).
func NewSequence(start int) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{next: start}
}

func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

func (s *Sequence) Release(int) {}

// Peek returns the id the next call to Next will return.
func (s *Sequence) Peek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// ReclaimingSequence decrements its counter whenever a create is undone,
// so the next create reuses the id.
//
// This is only sound while every create and undo on the source happens in
// LIFO order. Two controllers sharing one ReclaimingSequence can hand out
// the same id twice; prefer Sequence.
type ReclaimingSequence struct {
	mu   sync.Mutex
	next int
}

// NewReclaimingSequence returns a reclaiming source whose first id is start.
func NewReclaimingSequence(start int) *ReclaimingSequence {
	if start < 1 {
		start = 1
	}
	return &ReclaimingSequence{next: start}
}

func (s *ReclaimingSequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// Release decrements the counter regardless of which id is released.
func (s *ReclaimingSequence) Release(int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next > 1 {
		s.next--
	}
}

package report

import "sync"

// CollectingSink accumulates every emitted Message in order, for tests that
// assert on a job's full report stream.
type CollectingSink struct {
	mu       sync.Mutex
	messages []Message
}

// NewCollectingSink returns an empty CollectingSink.
func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (s *CollectingSink) Emit(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a snapshot of every message emitted so far, in order.
func (s *CollectingSink) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

var _ Sink = (*CollectingSink)(nil)

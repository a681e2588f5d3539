// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package store

import (
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
)

// Request records a single point query received by a MemoryStore.
type Request struct {
	Owner  string
	Fields []string
}

// MemoryStore is an in-process Store. Documents round-trip through JSON on
// Put, so values come back in their decoded document shape regardless of how
// they were stored. It records every query it receives, which lets tests
// assert the batch resolver's round-trip guarantees.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]Outputs
	requests []Request
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Outputs)}
}

// Put stores (or merges into) the outputs document for an owner.
func (s *MemoryStore) Put(owner string, outputs Outputs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[owner]
	if !ok {
		doc = make(Outputs, len(outputs))
		s.docs[owner] = doc
	}
	for field, value := range outputs {
		normalized, err := normalize(value)
		if err != nil {
			return fmt.Errorf("storing %s.%s: %w", owner, field, err)
		}
		doc[field] = normalized
	}

	return nil
}

func (s *MemoryStore) Query(owner string, fields []string) (Outputs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{Owner: owner, Fields: append([]string(nil), fields...)})

	doc, ok := s.docs[owner]
	if !ok {
		return nil, nil
	}

	if len(fields) == 0 {
		out := make(Outputs, len(doc))
		for field, value := range doc {
			out[field] = value
		}
		return out, nil
	}

	out := make(Outputs, len(fields))
	for _, field := range fields {
		if value, ok := doc[field]; ok {
			out[field] = value
		}
	}

	return out, nil
}

// Queries returns the total number of point queries received.
func (s *MemoryStore) Queries() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// QueriesFor returns the number of point queries received for one owner.
func (s *MemoryStore) QueriesFor(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, req := range s.requests {
		if req.Owner == owner {
			n++
		}
	}

	return n
}

// Requests returns a copy of every query received, in order.
func (s *MemoryStore) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// normalize round-trips a value through the document codec so stored values
// match what a real document store would hand back.
func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	return decoded, nil
}

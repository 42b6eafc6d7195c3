//go:build unit || e2e

// Package kvstest provides an in-memory kvs.Store for unit tests. Expiry is
// honored lazily on access, which is enough for the lock and sequence tests.
package kvstest

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	counter   int64
	expiresAt time.Time
}

type Store struct {
	mu   sync.Mutex
	data map[string]*entry

	// Err, when set, is returned from every operation. Simulates a broken
	// connection.
	Err error
}

func NewStore() *Store {
	return &Store{data: map[string]*entry{}}
}

func (s *Store) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}

	if e, ok := s.data[key]; ok && !s.expired(e) {
		return false, nil
	}
	s.data[key] = &entry{value: value, expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	if _, ok := s.data[key]; !ok {
		return 0, nil
	}
	delete(s.data, key)
	return 1, nil
}

func (s *Store) IncrBy(_ context.Context, key string, value int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	e, ok := s.data[key]
	if !ok || s.expired(e) {
		e = &entry{}
		s.data[key] = e
	}
	e.counter += value
	return e.counter, nil
}

func (s *Store) PExpireAt(_ context.Context, key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if e, ok := s.data[key]; ok {
		e.expiresAt = at
	}
	return nil
}

// Has reports whether the key currently holds a live value.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[key]
	return ok && !s.expired(e)
}

func (s *Store) expired(e *entry) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

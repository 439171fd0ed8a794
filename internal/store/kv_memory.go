// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryKeyValueStore is a process-local [KeyValueStore]. Nothing survives a
// restart.
type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValueStore returns an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{values: make(map[string]string)}
}

func (s *memoryKeyValueStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *memoryKeyValueStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Package cache provides process-lifetime memoization.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo remembers the value computed for each key for the lifetime of the process.
// Concurrent first lookups of a key share a single computation. Failed
// computations are not remembered, so the next lookup retries.
type Memo[V any] struct {
	values sync.Map
	group  singleflight.Group
}

// NewMemo creates an empty Memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{}
}

// GetOrCompute returns the value stored under key, running compute to produce
// it on the first call only.
func (m *Memo[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := m.values.Load(key); ok {
		return v.(V), nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// a caller that lost the race to Do may arrive after the value was stored
		if stored, ok := m.values.Load(key); ok {
			return stored, nil
		}

		computed, err := compute()
		if err != nil {
			return nil, err
		}
		m.values.Store(key, computed)

		return computed, nil
	})
	if err != nil {
		var zero V

		return zero, err
	}

	return v.(V), nil
}

// Len returns the number of remembered keys.
func (m *Memo[V]) Len() int {
	n := 0
	m.values.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platform-engineering-labs/refract/pkg/store"
)

func TestCache_Merge(t *testing.T) {
	t.Run("unions fields across fetches", func(t *testing.T) {
		cache := NewCache()
		cache.Merge("job-1", store.Outputs{"x": 1})
		cache.Merge("job-1", store.Outputs{"y": 2})

		x, ok := cache.Lookup("job-1", "x")
		assert.True(t, ok)
		assert.Equal(t, 1, x)
		y, ok := cache.Lookup("job-1", "y")
		assert.True(t, ok)
		assert.Equal(t, 2, y)
	})

	t.Run("already-cached fields are final", func(t *testing.T) {
		cache := NewCache()
		cache.Seed("job-1", store.Outputs{"x": 1})
		cache.Merge("job-1", store.Outputs{"x": 99, "y": 2})

		x, _ := cache.Lookup("job-1", "x")
		assert.Equal(t, 1, x)
		y, _ := cache.Lookup("job-1", "y")
		assert.Equal(t, 2, y)
	})

	t.Run("nil outputs leave the cache untouched", func(t *testing.T) {
		cache := NewCache()
		cache.Merge("job-1", nil)

		assert.False(t, cache.HasOwner("job-1"))
	})

	t.Run("empty outputs still create the owner entry", func(t *testing.T) {
		cache := NewCache()
		cache.Merge("job-1", store.Outputs{})

		assert.True(t, cache.HasOwner("job-1"))
		_, ok := cache.Lookup("job-1", "x")
		assert.False(t, ok)
	})
}

func TestCache_MissingFields(t *testing.T) {
	t.Run("all fields missing for an uncached owner", func(t *testing.T) {
		cache := NewCache()

		assert.Equal(t, []string{"x", "y"}, cache.MissingFields("job-1", []string{"x", "y"}))
	})

	t.Run("cached fields are excluded", func(t *testing.T) {
		cache := NewCache()
		cache.Seed("job-1", store.Outputs{"x": 1})

		assert.Equal(t, []string{"y"}, cache.MissingFields("job-1", []string{"x", "y"}))
	})

	t.Run("deduplicates while preserving order", func(t *testing.T) {
		cache := NewCache()

		assert.Equal(t, []string{"y", "x"}, cache.MissingFields("job-1", []string{"y", "x", "y", "x"}))
	})

	t.Run("empty when everything is cached", func(t *testing.T) {
		cache := NewCache()
		cache.Seed("job-1", store.Outputs{"x": 1})

		assert.Empty(t, cache.MissingFields("job-1", []string{"x", "x"}))
	})
}

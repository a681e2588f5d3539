// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"github.com/platform-engineering-labs/refract/pkg/store"
)

// Cache is a caller-owned memo of previously fetched owner outputs, keyed by
// owner and then field. It can be reused across many resolution calls to
// accumulate savings, or created fresh per call for isolation.
//
// A field, once cached, is final for the remainder of a resolution session:
// later fetches for the same owner merge in new fields but never replace
// cached ones. The cache is not safe for unsynchronized concurrent use;
// callers resolving from multiple goroutines at once must lock around it.
type Cache struct {
	entries map[string]store.Outputs
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]store.Outputs)}
}

// Seed merges outputs the caller already holds into the owner's entry,
// as if they had been fetched from the store.
func (c *Cache) Seed(owner string, outputs store.Outputs) {
	c.Merge(owner, outputs)
}

// Lookup returns the cached value for (owner, field).
func (c *Cache) Lookup(owner, field string) (any, bool) {
	entry, ok := c.entries[owner]
	if !ok {
		return nil, false
	}
	value, ok := entry[field]

	return value, ok
}

// HasOwner reports whether any entry exists for the owner, even an empty one.
func (c *Cache) HasOwner(owner string) bool {
	_, ok := c.entries[owner]

	return ok
}

// Merge unions outputs into the owner's entry, creating it if absent.
// Already-cached fields are kept; a nil outputs map (absent owner in the
// store) leaves the cache untouched.
func (c *Cache) Merge(owner string, outputs store.Outputs) {
	if outputs == nil {
		return
	}

	entry, ok := c.entries[owner]
	if !ok {
		entry = make(store.Outputs, len(outputs))
		c.entries[owner] = entry
	}
	for field, value := range outputs {
		if _, cached := entry[field]; !cached {
			entry[field] = value
		}
	}
}

// MissingFields returns, in input order and deduplicated, the fields not yet
// cached for the owner. All fields are missing when the owner is wholly
// uncached.
func (c *Cache) MissingFields(owner string, fields []string) []string {
	entry := c.entries[owner]

	missing := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		if _, cached := entry[field]; !cached {
			missing = append(missing, field)
		}
	}

	return missing
}

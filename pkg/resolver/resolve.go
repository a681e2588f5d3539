// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package resolver locates deferred output references embedded in nested job
// inputs, fetches the referenced outputs from a backing store with as few
// point queries as possible, and substitutes the resolved values back in
// place.
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/platform-engineering-labs/refract/pkg/model"
	"github.com/platform-engineering-labs/refract/pkg/store"
)

// Resolve resolves a single reference against a store and/or a caller-owned
// cache. At least one of the two must be set. When the (owner, field) pair is
// not yet cached and a store is available, exactly one point query is issued
// and its result merged into the cache, so the cache may be mutated as a side
// effect. The reference's attribute path is applied to the cached value.
//
// When resolving many references at once, ResolveReferences issues fewer
// store queries.
func Resolve(ref model.Reference, st store.Store, cache *Cache) (any, error) {
	if st == nil && cache == nil {
		return nil, ErrNoSource
	}
	if cache == nil {
		// Private per-call cache; never an implicit shared default.
		cache = NewCache()
	}

	if st != nil {
		if _, ok := cache.Lookup(ref.Owner, ref.Field); ok {
			cacheHits.Inc()
		} else {
			cacheMisses.Inc()
			slog.Debug("output cache miss, querying store", "owner", ref.Owner, "field", ref.Field)
			outputs, err := st.Query(ref.Owner, []string{ref.Field})
			if err != nil {
				return nil, fmt.Errorf("querying outputs of %s: %w", ref.Owner, err)
			}
			storeQueries.Inc()
			cache.Merge(ref.Owner, outputs)
		}
	}

	value, ok := cache.Lookup(ref.Owner, ref.Field)
	if !ok {
		resolutionFailures.Inc()
		if !cache.HasOwner(ref.Owner) {
			return nil, &NotFoundError{Ref: ref, Missing: MissingOwner}
		}
		return nil, &NotFoundError{Ref: ref, Missing: MissingField}
	}

	resolved, err := applyPath(ref, value)
	if err != nil {
		resolutionFailures.Inc()
		return nil, err
	}
	referencesResolved.Inc()

	return resolved, nil
}

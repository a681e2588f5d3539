// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/platform-engineering-labs/refract/pkg/model"
	"github.com/platform-engineering-labs/refract/pkg/store"
)

// Resolutions maps references, by canonical identity, to their resolved
// values.
type Resolutions map[string]any

func (r Resolutions) Lookup(ref model.Reference) (any, bool) {
	value, ok := r[ref.Key()]

	return value, ok
}

// ResolveReferences resolves many references while minimizing store
// round-trips. Grouping is positional: the input is scanned in order and a
// new group starts whenever the owner changes, so two runs of the same owner
// that are not adjacent issue independent queries. Per group, one query
// covers every field of the run not already cached; the group's references
// are then resolved from the cache alone. At most one store query is issued
// per contiguous same-owner run.
//
// The result covers every input reference exactly once. A single
// unresolvable reference aborts the whole call.
func ResolveReferences(refs []model.Reference, st store.Store, cache *Cache) (Resolutions, error) {
	if st == nil && cache == nil {
		return nil, ErrNoSource
	}
	if cache == nil {
		cache = NewCache()
	}

	callID := uuid.New().String()
	resolved := make(Resolutions, len(refs))

	for start := 0; start < len(refs); {
		end := start
		for end < len(refs) && refs[end].Owner == refs[start].Owner {
			end++
		}
		run := refs[start:end]
		owner := refs[start].Owner

		if st != nil {
			fields := make([]string, 0, len(run))
			for _, ref := range run {
				fields = append(fields, ref.Field)
			}
			missing := cache.MissingFields(owner, fields)
			if len(missing) > 0 {
				slog.Debug("querying store for uncached outputs",
					"call", callID,
					"owner", owner,
					"fields", missing)
				outputs, err := st.Query(owner, missing)
				if err != nil {
					return nil, fmt.Errorf("querying outputs of %s: %w", owner, err)
				}
				storeQueries.Inc()
				cache.Merge(owner, outputs)
			}
		}

		for _, ref := range run {
			value, err := Resolve(ref, nil, cache)
			if err != nil {
				return nil, err
			}
			resolved[ref.Key()] = value
		}

		start = end
	}

	return resolved, nil
}

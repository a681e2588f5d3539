// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/platform-engineering-labs/refract/pkg/store"
)

// ResolveDocument replaces every reference wire form in a serialized input
// document with its resolved value, leaving all other content byte-for-byte
// unchanged. The caller's store and cache are threaded through to the batch
// resolver. A document with no references is returned as-is.
func ResolveDocument(doc json.RawMessage, st store.Store, cache *Cache) (json.RawMessage, error) {
	locations := FindReferenceLocations(doc)
	if len(locations) == 0 {
		return doc, nil
	}

	return resolveLocated(doc, locations, st, cache)
}

func resolveLocated(doc json.RawMessage, locations []string, st store.Store, cache *Cache) (json.RawMessage, error) {
	refs, err := decodeReferences(doc, locations)
	if err != nil {
		return nil, err
	}

	resolved, err := ResolveReferences(refs, st, cache)
	if err != nil {
		return nil, err
	}

	out := string(doc)
	for i, loc := range locations {
		value, _ := resolved.Lookup(refs[i])
		if loc == "" {
			// The document itself is a reference.
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("substituting %s: %w", refs[i], err)
			}
			out = string(raw)
			continue
		}
		out, err = spliceValue(out, loc, value)
		if err != nil {
			return nil, fmt.Errorf("substituting %s at %q: %w", refs[i], loc, err)
		}
	}

	return json.RawMessage(out), nil
}

func spliceValue(doc, path string, value any) (string, error) {
	switch v := value.(type) {
	case json.RawMessage:
		return sjson.SetRaw(doc, path, string(v))
	case gjson.Result:
		return sjson.SetRaw(doc, path, v.Raw)
	default:
		return sjson.Set(doc, path, v)
	}
}

// FindAndResolveReferences returns arg with every embedded reference
// replaced by its resolved value, preserving the structure around it. A bare
// reference resolves directly; a primitive scalar is returned unchanged
// without touching the codec; a composite with no embedded references comes
// back untouched. Composites are routed through the codec boundary: encoded
// to the canonical tree, resolved in place, and decoded again.
func FindAndResolveReferences(arg any, st store.Store, cache *Cache) (any, error) {
	if ref, ok := asReference(arg); ok {
		return Resolve(ref, st, cache)
	}
	if isScalar(arg) {
		return arg, nil
	}

	doc, err := json.Marshal(arg)
	if err != nil {
		return nil, fmt.Errorf("encoding input: %w", err)
	}

	locations := FindReferenceLocations(doc)
	if len(locations) == 0 {
		return arg, nil
	}

	out, err := resolveLocated(doc, locations, st, cache)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(out, &decoded); err != nil {
		return nil, fmt.Errorf("decoding resolved input: %w", err)
	}

	return decoded, nil
}

// ResolveInto resolves every reference embedded in arg and decodes the
// result back into arg's concrete type, so typed job inputs keep their
// shape.
func ResolveInto[T any](arg T, st store.Store, cache *Cache) (T, error) {
	var out T

	doc, err := json.Marshal(arg)
	if err != nil {
		return out, fmt.Errorf("encoding input: %w", err)
	}

	resolvedDoc, err := ResolveDocument(doc, st, cache)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(resolvedDoc, &out); err != nil {
		return out, fmt.Errorf("decoding resolved input: %w", err)
	}

	return out, nil
}

// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/platform-engineering-labs/refract/pkg/model"
)

// FindReferenceLocations scans a serialized input document for reference
// wire forms and returns their structural paths in stable depth-first order:
// object keys in document order, array elements by ascending index. A
// matched reference node is a leaf; the walk does not descend into it. The
// returned paths are gjson/sjson compatible. A document that is itself a
// reference yields the single empty path.
func FindReferenceLocations(doc json.RawMessage) []string {
	locations := make([]string, 0)
	collectLocations(gjson.ParseBytes(doc), "", &locations)

	return locations
}

func collectLocations(value gjson.Result, path string, locations *[]string) {
	if value.IsObject() {
		if isReferenceNode(value) {
			*locations = append(*locations, path)
			return
		}
		value.ForEach(func(key, val gjson.Result) bool {
			collectLocations(val, buildPath(path, escapeKey(key.String())), locations)
			return true
		})
	} else if value.IsArray() {
		i := 0
		value.ForEach(func(_, val gjson.Result) bool {
			collectLocations(val, buildPath(path, strconv.Itoa(i)), locations)
			i++
			return true
		})
	}
}

func isReferenceNode(value gjson.Result) bool {
	return value.Get("$type").String() == model.TypeTag
}

func buildPath(currentPath, key string) string {
	if currentPath == "" {
		return key
	}

	return currentPath + "." + key
}

// FindReferences returns every reference embedded anywhere in arg, in
// location order. A bare reference is returned as the sole element without
// serialization; a primitive scalar yields nothing and skips the codec
// entirely. Anything else is encoded into the canonical tree form and
// scanned.
func FindReferences(arg any) ([]model.Reference, error) {
	if ref, ok := asReference(arg); ok {
		return []model.Reference{ref}, nil
	}
	if isScalar(arg) {
		return nil, nil
	}

	doc, err := json.Marshal(arg)
	if err != nil {
		return nil, fmt.Errorf("encoding input: %w", err)
	}

	return decodeReferences(doc, FindReferenceLocations(doc))
}

// decodeReferences deserializes the fragment at each location into a
// concrete Reference, preserving location order.
func decodeReferences(doc json.RawMessage, locations []string) ([]model.Reference, error) {
	parsed := gjson.ParseBytes(doc)

	refs := make([]model.Reference, len(locations))
	for i, loc := range locations {
		node := parsed
		if loc != "" {
			node = parsed.Get(loc)
		}
		if err := refs[i].UnmarshalJSON([]byte(node.Raw)); err != nil {
			return nil, fmt.Errorf("decoding reference at %q: %w", loc, err)
		}
	}

	return refs, nil
}

func asReference(arg any) (model.Reference, bool) {
	switch v := arg.(type) {
	case model.Reference:
		return v, true
	case *model.Reference:
		if v != nil {
			return *v, true
		}
	}

	return model.Reference{}, false
}

func isScalar(arg any) bool {
	switch arg.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}

	return false
}

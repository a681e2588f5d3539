// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/platform-engineering-labs/refract/pkg/model"
)

// applyPath applies each step of ref's attribute path, in order, to a cached
// output value.
func applyPath(ref model.Reference, value any) (any, error) {
	for _, step := range ref.Path {
		next, ok := applyStep(value, step)
		if !ok {
			return nil, &AttributeError{Ref: ref, Step: step}
		}
		value = next
	}

	return value, nil
}

func applyStep(value any, step model.Step) (any, bool) {
	switch v := value.(type) {
	case model.FieldAccessor:
		if step.Kind != model.StepField {
			return nil, false
		}
		return v.GetField(step.Name)
	case map[string]any:
		if step.Kind != model.StepField {
			return nil, false
		}
		out, ok := v[step.Name]
		return out, ok
	case []any:
		if step.Kind != model.StepIndex || step.Index < 0 || step.Index >= len(v) {
			return nil, false
		}
		return v[step.Index], true
	case json.RawMessage:
		return stepRaw(gjson.ParseBytes(v), step)
	case gjson.Result:
		return stepRaw(v, step)
	}

	return nil, false
}

func stepRaw(value gjson.Result, step model.Step) (any, bool) {
	switch step.Kind {
	case model.StepField:
		if !value.IsObject() {
			return nil, false
		}
		got := value.Get(escapeKey(step.Name))
		if !got.Exists() {
			return nil, false
		}
		return got.Value(), true
	case model.StepIndex:
		if !value.IsArray() {
			return nil, false
		}
		elements := value.Array()
		if step.Index < 0 || step.Index >= len(elements) {
			return nil, false
		}
		return elements[step.Index].Value(), true
	}

	return nil, false
}

// escapeKey makes a raw object key safe for use in a gjson/sjson path.
func escapeKey(key string) string {
	if !strings.ContainsAny(key, `.*?\`) {
		return key
	}

	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

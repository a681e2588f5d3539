// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// TypeTag marks a Reference's wire form inside a serialized input tree.
const TypeTag = "Reference"

type StepKind int

const (
	// StepField accesses a named field of the current value.
	StepField StepKind = iota
	// StepIndex accesses a sequence element of the current value.
	StepIndex
)

// Step is a single attribute access applied to a fetched output value.
type Step struct {
	Kind  StepKind
	Name  string
	Index int
}

func FieldStep(name string) Step {
	return Step{Kind: StepField, Name: name}
}

func IndexStep(i int) Step {
	return Step{Kind: StepIndex, Index: i}
}

func (s Step) String() string {
	if s.Kind == StepIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return "." + s.Name
}

// Reference is a pointer to the not-yet-computed output of a job. It names
// the producing job (Owner), one of its named outputs (Field) and an optional
// sequence of attribute accesses applied after the output is fetched (Path).
//
// References are created at workflow-definition time and are immutable:
// Attr and Index return new references, the receiver is never changed.
// Identity is structural over (owner, field, path), never pointer identity.
type Reference struct {
	Owner string
	Field string
	Path  []Step
}

func NewReference(owner, field string) Reference {
	return Reference{Owner: owner, Field: field}
}

// Attr derives a new reference with a field-access step appended.
func (r Reference) Attr(name string) Reference {
	return r.derive(FieldStep(name))
}

// Index derives a new reference with an index-access step appended.
func (r Reference) Index(i int) Reference {
	return r.derive(IndexStep(i))
}

func (r Reference) derive(step Step) Reference {
	path := make([]Step, 0, len(r.Path)+1)
	path = append(path, r.Path...)
	path = append(path, step)

	return Reference{Owner: r.Owner, Field: r.Field, Path: path}
}

// Equal reports structural equality over (owner, field, path).
func (r Reference) Equal(other Reference) bool {
	if r.Owner != other.Owner || r.Field != other.Field || len(r.Path) != len(other.Path) {
		return false
	}
	for i, step := range r.Path {
		if step != other.Path[i] {
			return false
		}
	}

	return true
}

// String renders the canonical display form:
// Reference(<owner>, <field>[, .step, [i], ...])
func (r Reference) String() string {
	var b strings.Builder
	b.WriteString("Reference(")
	b.WriteString(r.Owner)
	b.WriteString(", ")
	b.WriteString(r.Field)
	for _, step := range r.Path {
		b.WriteString(", ")
		b.WriteString(step.String())
	}
	b.WriteString(")")

	return b.String()
}

// Key returns the string identity used for map keys. It is consistent with
// Equal: two references share a key iff they are structurally equal.
func (r Reference) Key() string {
	return r.String()
}

// refWire is the type-tagged wire form of a reference within the canonical
// tree. Path entries are strings for field steps and numbers for index steps.
type refWire struct {
	Type  string `json:"$type"`
	Owner string `json:"owner"`
	Field string `json:"field"`
	Path  []any  `json:"path"`
}

func (r Reference) MarshalJSON() ([]byte, error) {
	wire := refWire{
		Type:  TypeTag,
		Owner: r.Owner,
		Field: r.Field,
		Path:  make([]any, 0, len(r.Path)),
	}
	for _, step := range r.Path {
		if step.Kind == StepIndex {
			wire.Path = append(wire.Path, step.Index)
		} else {
			wire.Path = append(wire.Path, step.Name)
		}
	}

	return json.Marshal(wire)
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	var wire refWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Type != TypeTag {
		return fmt.Errorf("not a reference wire form: $type is %q", wire.Type)
	}

	path := make([]Step, 0, len(wire.Path))
	for i, entry := range wire.Path {
		switch v := entry.(type) {
		case string:
			path = append(path, FieldStep(v))
		case float64:
			path = append(path, IndexStep(int(v)))
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return fmt.Errorf("path entry %d: %w", i, err)
			}
			path = append(path, IndexStep(int(n)))
		default:
			return fmt.Errorf("path entry %d has unsupported type %T", i, entry)
		}
	}

	r.Owner = wire.Owner
	r.Field = wire.Field
	r.Path = path

	return nil
}

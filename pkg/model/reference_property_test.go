// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build property

package model

import (
	"testing"

	"pgregory.net/rapid"
)

func identifierGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9_]{1,16}`)
}

func referenceGen() *rapid.Generator[Reference] {
	return rapid.Custom(func(rt *rapid.T) Reference {
		ref := NewReference(identifierGen().Draw(rt, "owner"), identifierGen().Draw(rt, "field"))
		steps := rapid.IntRange(0, 4).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "isIndex") {
				ref = ref.Index(rapid.IntRange(0, 99).Draw(rt, "index"))
			} else {
				ref = ref.Attr(identifierGen().Draw(rt, "attr"))
			}
		}
		return ref
	})
}

func TestReference_IdentityLaws(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ref := referenceGen().Draw(rt, "ref")

		// Reflexivity, and a structurally equal rebuild compares equal.
		rebuilt := Reference{Owner: ref.Owner, Field: ref.Field, Path: append([]Step(nil), ref.Path...)}
		if !ref.Equal(ref) || !ref.Equal(rebuilt) {
			rt.Fatalf("structural equality violated for %s", ref)
		}
		if ref.Key() != rebuilt.Key() {
			rt.Fatalf("key differs for structurally equal references: %s", ref)
		}

		// Any single-component perturbation breaks equality and the key.
		perturbed := referenceGen().Draw(rt, "perturbed")
		if ref.Equal(perturbed) != (ref.Key() == perturbed.Key()) {
			rt.Fatalf("key not consistent with equality: %s vs %s", ref, perturbed)
		}
	})
}

func TestReference_DerivationLaws(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ref := referenceGen().Draw(rt, "ref")
		before := len(ref.Path)

		attr := identifierGen().Draw(rt, "attr")
		derived := ref.Attr(attr)

		if len(ref.Path) != before {
			rt.Fatalf("derivation mutated the receiver: %s", ref)
		}
		if len(derived.Path) != before+1 || derived.Path[before] != FieldStep(attr) {
			rt.Fatalf("derived path is not parent path plus step: %s", derived)
		}
		for i := 0; i < before; i++ {
			if derived.Path[i] != ref.Path[i] {
				rt.Fatalf("derivation changed an existing step: %s", derived)
			}
		}
	})
}

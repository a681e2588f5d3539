// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"errors"
	"fmt"

	"github.com/platform-engineering-labs/refract/pkg/model"
)

// ErrNoSource is returned when a resolve call is given neither a store nor a
// cache to read from.
var ErrNoSource = errors.New("at least one of store and cache must be set")

const (
	MissingOwner = "owner"
	MissingField = "field"
)

// NotFoundError reports a reference whose owner or field is absent from the
// cache after any store fetch has been merged in.
type NotFoundError struct {
	Ref     model.Reference
	Missing string // MissingOwner or MissingField
}

func (e *NotFoundError) Error() string {
	if e.Missing == MissingOwner {
		return fmt.Sprintf("could not resolve %s: owner %s not in store or cache", e.Ref, e.Ref.Owner)
	}

	return fmt.Sprintf("could not resolve %s: field %s not present for owner %s", e.Ref, e.Ref.Field, e.Ref.Owner)
}

// AttributeError reports an attribute-path step that cannot be applied to the
// shape of the current value.
type AttributeError struct {
	Ref  model.Reference
	Step model.Step
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("could not resolve %s: step %s cannot be applied", e.Ref, e.Step)
}

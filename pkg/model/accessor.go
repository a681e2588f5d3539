// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

// FieldAccessor is the narrow capability a resolved output value can
// implement to be the target of a non-empty attribute path. Only values
// implementing it (or plain decoded JSON shapes) support field steps;
// there is no unrestricted reflective access.
type FieldAccessor interface {
	// GetField returns the named field's value, or false if the value
	// exposes no such field.
	GetField(name string) (any, bool)
}

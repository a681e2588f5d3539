// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package store defines the point-query interface to the backend holding
// owners' materialized job outputs, plus an in-memory implementation for
// tests and embedding engines that do not need persistence.
package store

// Outputs maps a job's named output fields to their stored values.
type Outputs map[string]any

// Store is the external collaborator that holds materialized job outputs.
// Implementations own their timeout and retry policy; resolution is
// synchronous and blocks on Query.
type Store interface {
	// Query returns the stored outputs of a single owner, projected to the
	// requested fields. Empty fields means the whole document. An absent
	// owner yields a nil map and no error; requested fields the owner never
	// produced are simply missing from the result. Errors are reserved for
	// transport failures.
	Query(owner string, fields []string) (Outputs, error)
}

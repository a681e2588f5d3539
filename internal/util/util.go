// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package util

import (
	"github.com/segmentio/ksuid"
)

// NewID generates a unique ID via ksuid
func NewID() string {
	return ksuid.New().String()
}

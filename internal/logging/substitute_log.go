// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logging

import (
	"log/slog"
	"strings"
)

// slogWriter forwards output of the standard log package to slog, mapping a
// leading severity prefix when one is present.
type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	switch {
	case strings.HasPrefix(msg, "ERROR: "):
		slog.Error(strings.TrimPrefix(msg, "ERROR: "))
	case strings.HasPrefix(msg, "WARN: "):
		slog.Warn(strings.TrimPrefix(msg, "WARN: "))
	case strings.HasPrefix(msg, "INFO: "):
		slog.Info(strings.TrimPrefix(msg, "INFO: "))
	default:
		slog.Debug(msg)
	}

	return len(p), nil
}

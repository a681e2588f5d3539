// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeQueries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refract",
		Subsystem: "resolver",
		Name:      "store_queries_total",
		Help:      "Point queries issued to the output store.",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refract",
		Subsystem: "resolver",
		Name:      "cache_hits_total",
		Help:      "Single-reference resolves served from the cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refract",
		Subsystem: "resolver",
		Name:      "cache_misses_total",
		Help:      "Single-reference resolves that had to query the store.",
	})
	referencesResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refract",
		Subsystem: "resolver",
		Name:      "references_resolved_total",
		Help:      "References resolved successfully.",
	})
	resolutionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refract",
		Subsystem: "resolver",
		Name:      "resolution_failures_total",
		Help:      "References that could not be resolved.",
	})
)

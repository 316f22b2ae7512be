// Package metrics collects runtime memory snapshots and exports counting
// results as Prometheus gauges.
package metrics

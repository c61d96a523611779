// SPDX-License-Identifier: MIT

// Package pipeline schedules corpus work over a bounded worker pool.
//
// The workload is a stream of cells (see Plan). Each cell owns its RNG
// streams, derived from the base seed and the cell's dataset location, so
// the dataset produced by a run does not depend on the number of workers.
// Every stage records Prometheus metrics (NewMetrics) and, when a catalog is
// attached, indexes each artifact it writes.
package pipeline

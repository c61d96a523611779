// SPDX-License-Identifier: MIT

// Package config loads the corpus workload from YAML or TOML, validates it
// and builds the process logger.
//
// Loading order: Default, then the file, then the remaining zero-valued
// knobs (workers, resample caps, log rotation). Validate reports every
// problem in one error wrapping ErrInvalid.
package config

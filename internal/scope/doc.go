// Package scope implements the capability boundary of the filesystem gateway.
//
// The package is organized into small, composable pieces:
//   - paths: canonical path normalization (separator-unified, absolute, idempotent)
//   - guard: containment check of a normalized path against the configured roots
//   - resource: classification of filesystem entries into uniform descriptors
//   - reader: authorized text and binary file reads
//   - enumerate: shallow listing and recursive discovery with progress checkpoints
//
// All decisions operate on normalized paths. Callers must normalize before
// consulting the guard; every entry point in this package does so itself.
//
// Configuration (root set, extension allow-list, ignore patterns) is immutable
// after construction, so a single Guard/Classifier/Enumerator set is safe for
// concurrent use across calls. Per-call state (counters, checkpoint lists) is
// local to each invocation.
package scope

// Package gateway exposes the scoped filesystem operations as a service.
//
// Tools:
//   - gateway.init: verify every configured root is an accessible directory
//   - gateway.list: shallow directory listing, optional progress envelope
//   - gateway.read: text read (UTF-8, replacement characters on bad bytes)
//   - gateway.read_binary: raw read re-encoded as base64
//   - gateway.resources.list: recursive discovery of resource descriptors
//   - gateway.resources.get: single-entry classification
//
// Every operation normalizes the caller's path and consults the access guard
// before touching the filesystem. Failures come back as structured results
// carrying a taxonomy code; nothing is thrown across the boundary.
package gateway

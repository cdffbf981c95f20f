// Package monitoring provides Prometheus metrics for the gateway.
//
// Metrics cover three layers:
//   - HTTP: request counts, latency, payload sizes
//   - Tools: per-service/per-tool call counts, latency, error codes
//   - Gateway: enumerated entries, bytes served, access denials
//
// All collectors are registered via promauto and exposed through the
// /metrics endpoint. A small JSON snapshot is kept alongside for the
// health endpoint.
package monitoring

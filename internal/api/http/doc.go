// Package http contains the gateway's HTTP handlers.
//
// Endpoints:
//   - GET  /          service banner
//   - GET  /health    health check with registry and request stats
//   - GET  /services  service and tool catalog
//   - POST /services/execute  tool invocation {tool_id, params, caller_id}
//
// Tool invocations always answer HTTP 200 with a structured Result;
// failures are carried in the result body, not in the status code.
package http

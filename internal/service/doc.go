// Package service provides the provider registry for the gateway.
//
// The registry maintains a catalog of service providers and routes tool
// executions to them by the tool ID's service prefix.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(gatewayProvider)
//	result, err := registry.Execute(ctx, "gateway.read", params, reqCtx)
package service

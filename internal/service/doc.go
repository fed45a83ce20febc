// Package service provides the provider registry for the fileserver.
//
// The registry maintains a catalog of service providers and routes tool
// execution: a tool ID like "fileserver.read" is dispatched to the
// provider registered under its prefix.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(fileserverProvider)
//	result, err := registry.Execute(ctx, "fileserver.read", params, nil)
package service

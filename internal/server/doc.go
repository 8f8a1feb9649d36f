// Package server runs the reference sync server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown of the router built by the handler package.
package server

// Package http implements the REST surface of the reference sync server.
//
// It exposes route wiring, the push/pull/health handlers and the middleware
// chain in front of them. Request tracing, access logging, compression,
// bearer-token checks and body signature verification all happen here before
// a request reaches the sync service.
package http

// Package server runs the HTTP transport of the file exchange server.
//
// It binds the configured address, logs the URL the server is reachable at
// and shuts down gracefully once a termination signal arrives.
package server

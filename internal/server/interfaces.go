package server

// Server is the process-level HTTP server of the file exchange node.
type Server interface {
	// RunServer listens on the configured address, prints the base URL and
	// serves until SIGINT, SIGTERM or SIGQUIT arrives.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight uploads
	// to drain.
	Shutdown()
}

package server

// Server is the lifecycle contract the run loop manages. The sync API ships a
// single HTTP server, but the run loop stays agnostic: it starts whatever
// implements this and tears it down on SIGINT/SIGTERM.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

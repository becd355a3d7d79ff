// Package server wires and runs the application's transport servers.
//
// It binds the HTTP and gRPC listeners that are configured, serves them until
// the run context ends, and shuts every transport down gracefully.
package server

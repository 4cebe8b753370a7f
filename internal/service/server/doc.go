// Package server hosts the monitor service: a registry of isolated
// monitoring sessions, snapshot persistence and the gRPC serving loop.
package server

// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with per-call timeouts used
// by the simulator and the watcher to talk to the monitor server.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

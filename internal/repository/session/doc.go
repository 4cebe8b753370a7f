// Package session implements persistence for monitoring session snapshots.
//
// The FileRepository stores and loads one JSON file per session under a state
// directory and exposes a Repository interface that the server service
// depends on. Only the current snapshot is kept; no activity history.
package session

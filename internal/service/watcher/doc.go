// Package watcher polls a monitoring session and reacts to the alarm verdict.
//
// It probes GetSessionState at a fixed interval, logs the session state, and
// when the verdict turns positive starts the configured actuator hook and
// exits.
package watcher

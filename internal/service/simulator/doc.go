// Package simulator feeds synthetic activity ticks into the decision engine.
//
// It supports a scripted mode driven by a pattern string, an interactive mode
// speaking the original keyboard protocol, and a remote mode that forwards
// ticks to a running wake-server over gRPC.
package simulator

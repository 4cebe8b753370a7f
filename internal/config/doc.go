// Package config defines monitor settings used by binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, the session state directory
// and the rule thresholds; broken thresholds fail validation so they never
// reach the decision engine.
package config

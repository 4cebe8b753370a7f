// Package monitor implements the gRPC transport for the monitor service.
//
// It adapts between protobuf messages and the watch domain types and maps
// domain errors onto gRPC status codes, keeping the business logic behind a
// small Service interface.
package monitor

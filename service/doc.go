// Package service orchestrates the core components of the marketplace:
// settlement engine, commit log, event outbox, tape, and metrics.
//
// It provides a clean API for listing, purchasing, and querying items,
// decoupled from network transports like gRPC.
package service

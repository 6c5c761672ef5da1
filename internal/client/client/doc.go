// Package client contains the client side of the SOS remote boundary.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) mirroring
//     the server repository: user lookups and registration, survey
//     creation, listing, joining, declining, updating and removal, plus
//     Authenticate and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, attaches the session token via interceptors, applies a
//     per-call timeout and maps gRPC status codes to sentinel errors.
//  3. Watch, which keeps a Subscribe stream open and reports every
//     refresh notification to a callback.
//
// # Error Handling
//
// Transport failures (unreachable server, deadline, cancellation) surface as
// ErrUnavailable. Store failures on the server surface as
// common.ErrDataAccess, rejected input as common.ErrorInvalidArgument.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use; Watch normally runs on its own
// goroutine next to regular calls.
package client

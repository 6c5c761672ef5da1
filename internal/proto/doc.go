// Package proto holds the sos.Repository gRPC contract generated from
// sos.proto, plus conversions between wire messages and domain models.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative sos.proto

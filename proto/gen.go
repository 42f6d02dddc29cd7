// Package pb holds the generated gRPC bindings for the watchdog services.
package pb

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative watchdog.proto

// Package alarm implements the gRPC transport of the interval alarm daemon.
//
// Messages and the service descriptor are generated from
// api/intervalalarm/v1/interval_alarm.proto into internal/pb/v1. The package
// holds the server adapter that maps domain errors to gRPC status codes and
// the conversions between domain schedules and their wire form.
package alarm

//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=github.com/oshokin/interval-alarm --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/oshokin/interval-alarm intervalalarm/v1/interval_alarm.proto

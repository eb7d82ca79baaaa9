// Package authpb holds the AuthKeeper gRPC API generated from
// api/authkeeper/v1/auth.proto, plus conversions from server models to the
// wire messages.
package authpb

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/authkeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/authkeeper authkeeper/v1/auth.proto

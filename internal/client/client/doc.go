// Package client is the authctl side of the AuthKeeper gRPC API.
//
// GRPCClient owns the connection, remembers the bearer token returned by
// Signup/Login and attaches it to every later call through a unary
// interceptor. gRPC status codes are mapped back to sentinel errors that
// callers match with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrInvalidArgument, common.ErrForbidden, common.ErrConflict and
// common.ErrorNotFound.
package client

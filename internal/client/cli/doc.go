// Package cli implements authctl, the AuthKeeper operator console.
//
// Commands run either once, taken from the command line
// (authctl -a host:50051 setrole <id> admin), or interactively from a
// read-eval-print loop when no command is given. Everything except
// "promote" goes through the gRPC API; "promote" writes straight to the
// store so the very first administrator can be created.
package cli

package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags applies the command-line overrides.
//
// Supported flags:
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-w string     HTTP bind address (e.g. ":8080")
//	-d string     database DSN, or "memory"
//	-s string     JWT HMAC secret key
//	-t duration   bearer token lifetime (e.g. "168h")
//	-r duration   reset token lifetime (e.g. "1h")
//	-m string     mail backend: console, smtp or ses
//	-l string     log level
//
// Arguments are first filtered with flagx.FilterArgs so flags owned by other
// layers (-c/-config) do not trip the parser.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-s", "-t", "-r", "-m", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.HTTPAddr, "w", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "bearer token lifetime")
	fs.DurationVar(&config.ResetTokenTTL, "r", config.ResetTokenTTL, "reset token lifetime")
	fs.StringVar(&config.MailBackend, "m", config.MailBackend, "mail backend")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}

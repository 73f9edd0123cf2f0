package config

import (
	"flag"
	"os"
	"time"

	"github.com/Werffios/AntilleanController/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-k string   base64url AES encryption key for the credential codec
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-e bool     enforce encrypted credential input (disable legacy fallback)
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The duration flag is accepted as an integer in minutes and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s", "-t", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.EncryptionKey, "k", config.EncryptionKey, "credential encryption key (base64url)")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "jwt secret key")
	fs.BoolVar(&config.EnforceEncryptedInput, "e", config.EnforceEncryptedInput, "enforce encrypted credential input")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}

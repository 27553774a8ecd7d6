// Command tokengen issues a service JWT for API access, signed with the
// configured JWT_SECRET. Intended for operators handing out tokens to
// client services.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"groupevents/config"
	"groupevents/internal/adapters/auth"
)

func main() {
	subject := flag.String("subject", "", "token subject (the calling service's name)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -subject is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "tokengen: JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

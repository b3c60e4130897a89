// Command token issues a caller token for the bridge API.
//
//	go run ./cmd/bridged/token -config config.example.yaml -caller 0x... [-messenger] [-ttl 1h]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/cat-bridge/pkg/api"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/config"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	callerHex := flag.String("caller", "", "Caller address (hex)")
	messenger := flag.Bool("messenger", false, "Grant the messenger role")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	caller, err := chain.ParseAddress(*callerHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid caller: %v\n", err)
		os.Exit(2)
	}

	var roles []string
	if *messenger {
		roles = append(roles, api.RoleMessenger)
	}
	tok, err := api.NewAuthenticator(&cfg.Auth).Issue(caller, *ttl, roles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}

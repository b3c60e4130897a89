package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/cat-bridge/pkg/app"
	"github.com/chainsafe/cat-bridge/pkg/app/bridged"
	"github.com/chainsafe/cat-bridge/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = bridged.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bridged: %v\n", err)
		os.Exit(1)
	}
}

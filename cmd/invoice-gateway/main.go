package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/invoice-gateway/pkg/app"
	"github.com/chainsafe/invoice-gateway/pkg/app/api"
	"github.com/chainsafe/invoice-gateway/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "invoice gateway: %v\n", err)
		os.Exit(1)
	}
}

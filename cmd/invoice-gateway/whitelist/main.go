package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/invoice-gateway/pkg/config"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
	"github.com/chainsafe/invoice-gateway/pkg/pgutil"
)

const usageText = `Manage the token whitelist.

Usage:
  whitelist [flags] set   -token <address> -symbol <symbol> -decimals <n> [-disabled]
  whitelist [flags] show  -token <address>

The native currency is addressed as 0x0000000000000000000000000000000000000000.

Flags:
`

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	chainID := flag.Int64("chain-id", 0, "Chain id (defaults to ethereum.chain_id from config)")
	token := flag.String("token", "", "Token contract address")
	symbol := flag.String("symbol", "", "Token symbol")
	decimals := flag.Int("decimals", 18, "Token decimals")
	disabled := flag.Bool("disabled", false, "Store the token as disabled")
	flag.Usage = func() {
		fmt.Print(usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if !common.IsHexAddress(*token) {
		log.Fatalf("invalid -token address %q", *token)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if *chainID == 0 {
		*chainID = cfg.Ethereum.ChainID
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	store := invoicestore.NewStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	address := invoice.NormalizeAddress(*token)

	switch flag.Arg(0) {
	case "set":
		if *symbol == "" || *decimals < 0 || *decimals > 36 {
			log.Fatalf("set requires -symbol and -decimals in [0, 36]")
		}
		entry := &invoice.TokenWhitelistEntry{
			ChainID:      *chainID,
			TokenAddress: address,
			TokenSymbol:  *symbol,
			Decimals:     int32(*decimals),
			Enabled:      !*disabled,
		}
		if err := store.UpsertToken(ctx, entry); err != nil {
			log.Fatalf("error saving token: %s", err.Error())
		}
		log.Printf("saved %s (%s) on chain %d, decimals=%d enabled=%t\n",
			entry.TokenSymbol, entry.TokenAddress, entry.ChainID, entry.Decimals, entry.Enabled)
	case "show":
		entry, err := store.GetToken(ctx, *chainID, address)
		if err != nil {
			log.Fatalf("error loading token: %s", err.Error())
		}
		fmt.Printf("chain_id=%d token=%s symbol=%s decimals=%d enabled=%t\n",
			entry.ChainID, entry.TokenAddress, entry.TokenSymbol, entry.Decimals, entry.Enabled)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

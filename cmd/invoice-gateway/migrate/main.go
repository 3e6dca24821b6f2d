package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/invoice-gateway/pkg/config"
	"github.com/chainsafe/invoice-gateway/pkg/migrations/invoicedb"
	"github.com/chainsafe/invoice-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/invoice-gateway/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for invoice database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, invoicedb.Migrations)

	if err := mghelper.RunMigrations(context.Background(), migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}

package invoicedb

import (
	"context"
	"log"

	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
	mghelper "github.com/chainsafe/invoice-gateway/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating token_whitelist table...")
		return mghelper.CreateSchema(ctx, db, &invoicestore.TokenWhitelistDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping token_whitelist table...")
		return mghelper.DropTables(ctx, db, &invoicestore.TokenWhitelistDao{})
	})
}

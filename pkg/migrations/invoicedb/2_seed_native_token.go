package invoicedb

import (
	"context"
	"log"

	"github.com/chainsafe/invoice-gateway/pkg/invoice"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
	mghelper "github.com/chainsafe/invoice-gateway/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

const sepoliaChainID = 11155111

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding native ETH on sepolia into token_whitelist...")
		return mghelper.InsertEntry(ctx, db, &invoicestore.TokenWhitelistDao{
			ChainID:      sepoliaChainID,
			TokenAddress: invoice.NativeTokenAddress,
			TokenSymbol:  "ETH",
			Decimals:     18,
			Enabled:      true,
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing native ETH seed from token_whitelist...")
		_, err := db.NewDelete().
			Model((*invoicestore.TokenWhitelistDao)(nil)).
			Where("chain_id = ?", sepoliaChainID).
			Where("token_address = ?", invoice.NativeTokenAddress).
			Exec(ctx)
		return err
	})
}

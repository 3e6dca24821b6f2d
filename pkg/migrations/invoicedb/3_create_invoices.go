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
		log.Println("creating invoices table...")
		if err := mghelper.CreateSchema(ctx, db, &invoicestore.InvoiceDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &invoicestore.InvoiceDao{}, "expires_at"); err != nil {
			return err
		}
		// batch selection filters by status and orders by creation time
		return mghelper.CreateModelCompositeIndex(ctx, db, &invoicestore.InvoiceDao{}, "status", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping invoices table...")
		if err := mghelper.DropModelIndexes(ctx, db, &invoicestore.InvoiceDao{}, "expires_at", "status_created_at"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &invoicestore.InvoiceDao{})
	})
}

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
		log.Println("creating audit_logs table...")
		if err := mghelper.CreateSchema(ctx, db, &invoicestore.AuditLogDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &invoicestore.AuditLogDao{}, "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping audit_logs table...")
		if err := mghelper.DropModelIndexes(ctx, db, &invoicestore.AuditLogDao{}, "created_at"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &invoicestore.AuditLogDao{})
	})
}

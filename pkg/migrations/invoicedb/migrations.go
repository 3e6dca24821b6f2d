// Package invoicedb holds the migrations for the invoice database
package invoicedb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of invoice database migrations
var Migrations = migrate.NewMigrations()

// Package bridgedb holds all the migrations for the bridge ledger database
package bridgedb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the bridge database
var Migrations = migrate.NewMigrations()

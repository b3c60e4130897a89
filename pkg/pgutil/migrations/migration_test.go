package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

type widgetDao struct {
	bun.BaseModel `bun:"table:widgets,alias:w"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Name          string `bun:"name,notnull"`
}

// offlineDB builds a bun handle that never dials; enough for query building.
func offlineDB(t *testing.T) *bun.DB {
	t.Helper()
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithAddr("127.0.0.1:1"))), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestModelIndexName(t *testing.T) {
	db := offlineDB(t)

	name, err := modelIndexName(db, &widgetDao{}, "name")
	if err != nil {
		t.Fatalf("modelIndexName() failed: %v", err)
	}
	if name != "idx_widgets_name" {
		t.Fatalf("Expected idx_widgets_name, got %s", name)
	}

	if _, err := modelIndexName(db, nil, "name"); err == nil {
		t.Fatal("Expected error for nil model")
	}
}

func TestRunMigrations_BadCommand(t *testing.T) {
	migrator := migrate.NewMigrator(offlineDB(t), migrate.NewMigrations())
	ctx := context.Background()

	if err := RunMigrations(ctx, migrator); err == nil {
		t.Fatal("Expected error when no command is given")
	}
	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Fatal("Expected error for unknown command")
	}
}

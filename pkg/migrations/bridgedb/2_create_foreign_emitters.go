package bridgedb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/cat-bridge/pkg/pgutil/migrations"
	"github.com/chainsafe/cat-bridge/pkg/store/pg"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating foreign_emitters table...")
		return mghelper.CreateSchema(ctx, db, &pg.EmitterDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping foreign_emitters table...")
		return mghelper.DropTables(ctx, db, &pg.EmitterDao{})
	})
}

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
		log.Println("creating bridge_config and protocol_state tables...")
		return mghelper.CreateSchema(ctx, db, &pg.ConfigDao{}, &pg.ProtocolStateDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping bridge_config and protocol_state tables...")
		return mghelper.DropTables(ctx, db, &pg.ConfigDao{}, &pg.ProtocolStateDao{})
	})
}

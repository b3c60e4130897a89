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
		log.Println("creating received_messages table...")
		if err := mghelper.CreateSchema(ctx, db, &pg.ReceivedDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &pg.ReceivedDao{}, "message_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping received_messages table...")
		return mghelper.DropTables(ctx, db, &pg.ReceivedDao{})
	})
}

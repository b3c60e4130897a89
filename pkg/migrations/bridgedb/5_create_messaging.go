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
		log.Println("creating messaging tables...")
		err := mghelper.CreateSchema(ctx, db, &pg.SequenceDao{}, &pg.PostedMessageDao{}, &pg.EnvelopeDao{})
		if err != nil {
			return err
		}
		// one posted message per (emitter, sequence)
		return mghelper.CreateModelUniqueIndex(ctx, db, &pg.PostedMessageDao{}, "emitter", "sequence")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping messaging tables...")
		return mghelper.DropTables(ctx, db, &pg.EnvelopeDao{}, &pg.PostedMessageDao{}, &pg.SequenceDao{})
	})
}

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
		log.Println("creating token ledger tables...")
		if err := mghelper.CreateSchema(ctx, db, &pg.MintDao{}, &pg.AccountDao{}, &pg.NativeBalanceDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &pg.AccountDao{}, "owner", "mint")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping token ledger tables...")
		return mghelper.DropTables(ctx, db, &pg.NativeBalanceDao{}, &pg.AccountDao{}, &pg.MintDao{})
	})
}

package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/cat-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/cat-bridge/pkg/pgutil/migrations"
)

func TestIsUniqueViolation_OnlyDuplicateKeys(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()
	require.NoError(t, mghelper.CreateSchema(ctx, db, &ReceivedDao{}))

	insert := `INSERT INTO received_messages (chain_id, sequence, batch_id, message_hash, payload, received_at)
		VALUES (2, 1, 0, '0x00', '\x00', now())`
	_, err := db.ExecContext(ctx, insert)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert)
	require.Error(t, err)
	require.True(t, isUniqueViolation(err), "duplicate key: %v", err)

	// NOT NULL failures share the integrity class but are not duplicates
	_, err = db.ExecContext(ctx, `INSERT INTO received_messages (chain_id, sequence) VALUES (2, 2)`)
	require.Error(t, err)
	require.False(t, isUniqueViolation(err), "not null: %v", err)
}

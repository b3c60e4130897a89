// Package pg is the PostgreSQL bridge.Store. Every unit of work is one
// serializable transaction; rows that are read and then rewritten are
// locked with SELECT ... FOR UPDATE.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// protocolRowID is the primary key of the singleton protocol state row.
const protocolRowID = 1

var _ bridge.Store = (*Store)(nil)

// Store implements bridge.Store on top of bun.
type Store struct {
	db *bun.DB
}

// NewStore creates a new PostgreSQL-backed store.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// RunInTx runs fn in a serializable transaction, committing when fn returns nil.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bridge.Tx) error) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, btx bun.Tx) error {
		return fn(ctx, &pgTx{tx: btx})
	})
}

type pgTx struct {
	tx bun.Tx
}

// upsert inserts model, overwriting cols when the conflict target already exists.
func (t *pgTx) upsert(ctx context.Context, model any, conflict string, cols ...string) error {
	q := t.tx.NewInsert().Model(model).On(fmt.Sprintf("CONFLICT (%s) DO UPDATE", conflict))
	for _, c := range cols {
		q = q.Set("? = EXCLUDED.?", bun.Ident(c), bun.Ident(c))
	}
	_, err := q.Exec(ctx)
	return err
}

func (t *pgTx) GetConfig(ctx context.Context) (*bridge.Config, error) {
	dao := new(ConfigDao)
	err := t.tx.NewSelect().Model(dao).Where("id = ?", configRowID).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bridge.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return toConfig(dao)
}

func (t *pgTx) PutConfig(ctx context.Context, cfg *bridge.Config) error {
	err := t.upsert(ctx, toConfigDao(cfg), "id",
		"owner", "protocol_bridge", "protocol_fee_collector", "protocol_sequence",
		"batch_id", "finality", "mode", "home_token", "emitter", "vault",
		"home_chain_id", "initialized_at",
	)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (t *pgTx) GetEmitter(ctx context.Context, chainID chain.ID) (*emitter.Record, error) {
	dao := new(EmitterDao)
	err := t.tx.NewSelect().Model(dao).Where("chain_id = ?", int64(chainID)).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, emitter.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get emitter for chain %d: %w", chainID, err)
	}
	return toEmitter(dao)
}

func (t *pgTx) PutEmitter(ctx context.Context, r *emitter.Record) error {
	dao := &EmitterDao{ChainID: int64(r.ChainID), Address: r.Address.Hex()}
	if err := t.upsert(ctx, dao, "chain_id", "address", "updated_at"); err != nil {
		return fmt.Errorf("failed to save emitter for chain %d: %w", r.ChainID, err)
	}
	return nil
}

func (t *pgTx) ListEmitters(ctx context.Context) ([]*emitter.Record, error) {
	var daos []EmitterDao
	if err := t.tx.NewSelect().Model(&daos).Order("chain_id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list emitters: %w", err)
	}
	out := make([]*emitter.Record, 0, len(daos))
	for i := range daos {
		rec, err := toEmitter(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (t *pgTx) InsertReceived(ctx context.Context, r *replay.Record) error {
	_, err := t.tx.NewInsert().Model(toReceivedDao(r)).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return replay.ErrAlreadyClaimed
		}
		return fmt.Errorf("failed to insert received message %s: %w", r.Key, err)
	}
	return nil
}

func (t *pgTx) GetReceived(ctx context.Context, key replay.Key) (*replay.Record, error) {
	dao := new(ReceivedDao)
	err := t.tx.NewSelect().Model(dao).
		Where("chain_id = ?", int64(key.ChainID)).
		Where("sequence = ?", int64(key.Sequence)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, replay.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get received message %s: %w", key, err)
	}
	return toReceived(dao)
}

func (t *pgTx) GetMint(ctx context.Context, addr chain.Address) (*token.Mint, error) {
	dao := new(MintDao)
	err := t.tx.NewSelect().Model(dao).Where("address = ?", addr.Hex()).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, token.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mint %s: %w", addr, err)
	}
	return toMint(dao)
}

func (t *pgTx) PutMint(ctx context.Context, m *token.Mint) error {
	err := t.upsert(ctx, toMintDao(m), "address",
		"decimals", "supply", "max_supply", "authority", "transfer_fee_bps")
	if err != nil {
		return fmt.Errorf("failed to save mint %s: %w", m.Address, err)
	}
	return nil
}

func (t *pgTx) GetAccount(ctx context.Context, addr chain.Address) (*token.Account, error) {
	dao := new(AccountDao)
	err := t.tx.NewSelect().Model(dao).Where("address = ?", addr.Hex()).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, token.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get token account %s: %w", addr, err)
	}
	return toAccount(dao)
}

func (t *pgTx) PutAccount(ctx context.Context, a *token.Account) error {
	if err := t.upsert(ctx, toAccountDao(a), "address", "mint", "owner", "balance"); err != nil {
		return fmt.Errorf("failed to save token account %s: %w", a.Address, err)
	}
	return nil
}

func (t *pgTx) ListAccounts(ctx context.Context, owner chain.Address) ([]*token.Account, error) {
	var daos []AccountDao
	err := t.tx.NewSelect().Model(&daos).Where("owner = ?", owner.Hex()).Order("address ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list token accounts of %s: %w", owner, err)
	}
	out := make([]*token.Account, 0, len(daos))
	for i := range daos {
		a, err := toAccount(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (t *pgTx) GetNativeBalance(ctx context.Context, addr chain.Address) (uint64, error) {
	dao := new(NativeBalanceDao)
	err := t.tx.NewSelect().Model(dao).Where("address = ?", addr.Hex()).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get native balance of %s: %w", addr, err)
	}
	return parseUint(dao.Balance)
}

func (t *pgTx) PutNativeBalance(ctx context.Context, addr chain.Address, balance uint64) error {
	dao := &NativeBalanceDao{Address: addr.Hex(), Balance: formatUint(balance)}
	if err := t.upsert(ctx, dao, "address", "balance"); err != nil {
		return fmt.Errorf("failed to save native balance of %s: %w", addr, err)
	}
	return nil
}

func (t *pgTx) GetProtocolState(ctx context.Context) (*messaging.State, error) {
	dao := new(ProtocolStateDao)
	err := t.tx.NewSelect().Model(dao).Where("id = ?", protocolRowID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get protocol state: %w", err)
	}
	st := &messaging.State{}
	if st.Fee, err = parseUint(dao.Fee); err != nil {
		return nil, err
	}
	if err := parseAddresses(&st.Bridge, dao.Bridge, &st.FeeCollector, dao.FeeCollector); err != nil {
		return nil, err
	}
	return st, nil
}

func (t *pgTx) PutProtocolState(ctx context.Context, st *messaging.State) error {
	dao := &ProtocolStateDao{
		ID:           protocolRowID,
		Bridge:       st.Bridge.Hex(),
		FeeCollector: st.FeeCollector.Hex(),
		Fee:          formatUint(st.Fee),
	}
	if err := t.upsert(ctx, dao, "id", "bridge", "fee_collector", "fee"); err != nil {
		return fmt.Errorf("failed to save protocol state: %w", err)
	}
	return nil
}

// ReserveSequence bumps the emitter's counter in a single upsert and returns
// the value it had before.
func (t *pgTx) ReserveSequence(ctx context.Context, emitterAddr chain.Address) (uint64, error) {
	dao := &SequenceDao{Emitter: emitterAddr.Hex(), Next: 1}
	err := t.tx.NewInsert().Model(dao).
		On("CONFLICT (emitter) DO UPDATE").
		Set("next = ?TableAlias.next + 1").
		Returning("next").
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve sequence for %s: %w", emitterAddr, err)
	}
	return uint64(dao.Next - 1), nil
}

func (t *pgTx) PeekSequence(ctx context.Context, emitterAddr chain.Address) (uint64, error) {
	dao := new(SequenceDao)
	err := t.tx.NewSelect().Model(dao).Where("emitter = ?", emitterAddr.Hex()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sequence for %s: %w", emitterAddr, err)
	}
	return uint64(dao.Next), nil
}

func (t *pgTx) PutPosted(ctx context.Context, m *messaging.PostedMessage) error {
	if _, err := t.tx.NewInsert().Model(toPostedDao(m)).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return messaging.ErrMessageExists
		}
		return fmt.Errorf("failed to save posted message %d: %w", m.Sequence, err)
	}
	return nil
}

func (t *pgTx) GetPosted(ctx context.Context, account chain.Address) (*messaging.PostedMessage, error) {
	dao := new(PostedMessageDao)
	err := t.tx.NewSelect().Model(dao).Where("account = ?", account.Hex()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get posted message %s: %w", account, err)
	}
	return toPosted(dao)
}

func (t *pgTx) PutEnvelope(ctx context.Context, hash chain.Hash, e *messaging.Envelope) error {
	_, err := t.tx.NewInsert().Model(toEnvelopeDao(hash, e)).On("CONFLICT (hash) DO NOTHING").Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save envelope %s: %w", hash, err)
	}
	return nil
}

func (t *pgTx) GetEnvelope(ctx context.Context, hash chain.Hash) (*messaging.Envelope, error) {
	dao := new(EnvelopeDao)
	err := t.tx.NewSelect().Model(dao).Where("hash = ?", hash.Hex()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get envelope %s: %w", hash, err)
	}
	return toEnvelope(dao)
}

// sqlStateUniqueViolation is the SQLSTATE of a unique_violation.
const sqlStateUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == sqlStateUniqueViolation
}

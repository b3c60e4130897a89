package pg

import (
	"fmt"
	"strconv"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// configRowID is the primary key of the singleton configuration row.
const configRowID = 1

// ConfigDao maps to the 'bridge_config' table. It holds at most one row.
type ConfigDao struct {
	bun.BaseModel        `bun:"table:bridge_config,alias:bc"`
	ID                   int16     `bun:"id,pk"`
	Owner                string    `bun:"owner,notnull,type:varchar(66)"`
	ProtocolBridge       string    `bun:"protocol_bridge,notnull,type:varchar(66)"`
	ProtocolFeeCollector string    `bun:"protocol_fee_collector,notnull,type:varchar(66)"`
	ProtocolSequence     string    `bun:"protocol_sequence,notnull,type:varchar(66)"`
	BatchID              int64     `bun:"batch_id,notnull"`
	Finality             int16     `bun:"finality,notnull"`
	Mode                 string    `bun:"mode,notnull,type:varchar(16)"`
	HomeToken            string    `bun:"home_token,notnull,type:varchar(66)"`
	Emitter              string    `bun:"emitter,notnull,type:varchar(66)"`
	Vault                string    `bun:"vault,type:varchar(66)"`
	HomeChainID          int64     `bun:"home_chain_id,notnull"`
	InitializedAt        time.Time `bun:"initialized_at,notnull"`
}

// EmitterDao maps to the 'foreign_emitters' table.
type EmitterDao struct {
	bun.BaseModel `bun:"table:foreign_emitters,alias:fe"`
	ChainID       int64     `bun:"chain_id,pk"`
	Address       string    `bun:"address,notnull,type:varchar(66)"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ReceivedDao maps to the 'received_messages' table. The composite primary
// key is what makes a claim unique.
type ReceivedDao struct {
	bun.BaseModel `bun:"table:received_messages,alias:rm"`
	ChainID       int64     `bun:"chain_id,pk"`
	Sequence      int64     `bun:"sequence,pk"`
	BatchID       int64     `bun:"batch_id,notnull"`
	MessageHash   string    `bun:"message_hash,notnull,type:varchar(66)"`
	Payload       []byte    `bun:"payload,notnull,type:bytea"`
	ReceivedAt    time.Time `bun:"received_at,notnull"`
}

// MintDao maps to the 'token_mints' table.
type MintDao struct {
	bun.BaseModel  `bun:"table:token_mints,alias:tm"`
	Address        string `bun:"address,pk,type:varchar(66)"`
	Decimals       int16  `bun:"decimals,notnull"`
	Supply         string `bun:"supply,notnull,type:numeric(20,0)"`
	MaxSupply      string `bun:"max_supply,notnull,type:numeric(20,0)"`
	Authority      string `bun:"authority,notnull,type:varchar(66)"`
	TransferFeeBps int32  `bun:"transfer_fee_bps,notnull"`
}

// AccountDao maps to the 'token_accounts' table.
type AccountDao struct {
	bun.BaseModel `bun:"table:token_accounts,alias:ta"`
	Address       string `bun:"address,pk,type:varchar(66)"`
	Mint          string `bun:"mint,notnull,type:varchar(66)"`
	Owner         string `bun:"owner,notnull,type:varchar(66)"`
	Balance       string `bun:"balance,notnull,type:numeric(20,0)"`
}

// NativeBalanceDao maps to the 'native_balances' table.
type NativeBalanceDao struct {
	bun.BaseModel `bun:"table:native_balances,alias:nb"`
	Address       string `bun:"address,pk,type:varchar(66)"`
	Balance       string `bun:"balance,notnull,type:numeric(20,0)"`
}

// ProtocolStateDao maps to the 'protocol_state' table. It holds at most one row.
type ProtocolStateDao struct {
	bun.BaseModel `bun:"table:protocol_state,alias:ps"`
	ID            int16  `bun:"id,pk"`
	Bridge        string `bun:"bridge,notnull,type:varchar(66)"`
	FeeCollector  string `bun:"fee_collector,notnull,type:varchar(66)"`
	Fee           string `bun:"fee,notnull,type:numeric(20,0)"`
}

// SequenceDao maps to the 'emitter_sequences' table. Next is the sequence
// the emitter's next message will get.
type SequenceDao struct {
	bun.BaseModel `bun:"table:emitter_sequences,alias:es"`
	Emitter       string `bun:"emitter,pk,type:varchar(66)"`
	Next          int64  `bun:"next,notnull"`
}

// PostedMessageDao maps to the 'posted_messages' table.
type PostedMessageDao struct {
	bun.BaseModel `bun:"table:posted_messages,alias:pm"`
	Account       string    `bun:"account,pk,type:varchar(66)"`
	Emitter       string    `bun:"emitter,notnull,type:varchar(66)"`
	EmitterChain  int64     `bun:"emitter_chain,notnull"`
	Sequence      int64     `bun:"sequence,notnull"`
	BatchID       int64     `bun:"batch_id,notnull"`
	Finality      int16     `bun:"finality,notnull"`
	Payload       []byte    `bun:"payload,notnull,type:bytea"`
	FeePaid       string    `bun:"fee_paid,notnull,type:numeric(20,0)"`
	PostedAt      time.Time `bun:"posted_at,notnull"`
}

// EnvelopeDao maps to the 'delivered_envelopes' table.
type EnvelopeDao struct {
	bun.BaseModel  `bun:"table:delivered_envelopes,alias:de"`
	Hash           string    `bun:"hash,pk,type:varchar(66)"`
	EmitterChain   int64     `bun:"emitter_chain,notnull"`
	EmitterAddress string    `bun:"emitter_address,notnull,type:varchar(66)"`
	Sequence       int64     `bun:"sequence,notnull"`
	BatchID        int64     `bun:"batch_id,notnull"`
	Finality       int16     `bun:"finality,notnull"`
	Payload        []byte    `bun:"payload,notnull,type:bytea"`
	DeliveredAt    time.Time `bun:"delivered_at,nullzero,notnull,default:current_timestamp"`
}

// Models lists every table in creation order.
func Models() []any {
	return []any{
		(*ConfigDao)(nil),
		(*EmitterDao)(nil),
		(*ReceivedDao)(nil),
		(*MintDao)(nil),
		(*AccountDao)(nil),
		(*NativeBalanceDao)(nil),
		(*ProtocolStateDao)(nil),
		(*SequenceDao)(nil),
		(*PostedMessageDao)(nil),
		(*EnvelopeDao)(nil),
	}
}

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func parseUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stored amount %q: %w", s, err)
	}
	return n, nil
}

// parseAddresses decodes several hex columns at once, stopping at the first failure.
func parseAddresses(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		dst := pairs[i].(*chain.Address)
		src := pairs[i+1].(string)
		if src == "" {
			*dst = chain.ZeroAddress
			continue
		}
		a, err := chain.ParseAddress(src)
		if err != nil {
			return fmt.Errorf("invalid stored address %q: %w", src, err)
		}
		*dst = a
	}
	return nil
}

func toConfigDao(c *bridge.Config) *ConfigDao {
	dao := &ConfigDao{
		ID:                   configRowID,
		Owner:                c.Owner.Hex(),
		ProtocolBridge:       c.Protocol.Bridge.Hex(),
		ProtocolFeeCollector: c.Protocol.FeeCollector.Hex(),
		ProtocolSequence:     c.Protocol.Sequence.Hex(),
		BatchID:              int64(c.BatchID),
		Finality:             int16(c.Finality),
		Mode:                 string(c.Mode),
		HomeToken:            c.HomeToken.Hex(),
		Emitter:              c.Emitter.Hex(),
		HomeChainID:          int64(c.HomeChainID),
		InitializedAt:        c.InitializedAt,
	}
	if !c.Vault.IsZero() {
		dao.Vault = c.Vault.Hex()
	}
	return dao
}

func toConfig(dao *ConfigDao) (*bridge.Config, error) {
	c := &bridge.Config{
		BatchID:       uint32(dao.BatchID),
		Finality:      messaging.Finality(dao.Finality),
		Mode:          bridge.Mode(dao.Mode),
		HomeChainID:   chain.ID(dao.HomeChainID),
		InitializedAt: dao.InitializedAt.UTC(),
	}
	err := parseAddresses(
		&c.Owner, dao.Owner,
		&c.Protocol.Bridge, dao.ProtocolBridge,
		&c.Protocol.FeeCollector, dao.ProtocolFeeCollector,
		&c.Protocol.Sequence, dao.ProtocolSequence,
		&c.HomeToken, dao.HomeToken,
		&c.Emitter, dao.Emitter,
		&c.Vault, dao.Vault,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func toEmitter(dao *EmitterDao) (*emitter.Record, error) {
	rec := &emitter.Record{ChainID: chain.ID(dao.ChainID)}
	if err := parseAddresses(&rec.Address, dao.Address); err != nil {
		return nil, err
	}
	return rec, nil
}

func toReceivedDao(r *replay.Record) *ReceivedDao {
	return &ReceivedDao{
		ChainID:     int64(r.ChainID),
		Sequence:    int64(r.Sequence),
		BatchID:     int64(r.BatchID),
		MessageHash: r.MessageHash.Hex(),
		Payload:     r.Payload,
		ReceivedAt:  r.ReceivedAt,
	}
}

func toReceived(dao *ReceivedDao) (*replay.Record, error) {
	hash, err := chain.ParseHash(dao.MessageHash)
	if err != nil {
		return nil, err
	}
	return &replay.Record{
		Key:         replay.Key{ChainID: chain.ID(dao.ChainID), Sequence: uint64(dao.Sequence)},
		BatchID:     uint32(dao.BatchID),
		MessageHash: hash,
		Payload:     dao.Payload,
		ReceivedAt:  dao.ReceivedAt.UTC(),
	}, nil
}

func toMintDao(m *token.Mint) *MintDao {
	return &MintDao{
		Address:        m.Address.Hex(),
		Decimals:       int16(m.Decimals),
		Supply:         formatUint(m.Supply),
		MaxSupply:      formatUint(m.MaxSupply),
		Authority:      m.Authority.Hex(),
		TransferFeeBps: int32(m.TransferFeeBps),
	}
}

func toMint(dao *MintDao) (*token.Mint, error) {
	m := &token.Mint{
		Decimals:       uint8(dao.Decimals),
		TransferFeeBps: uint16(dao.TransferFeeBps),
	}
	var err error
	if m.Supply, err = parseUint(dao.Supply); err != nil {
		return nil, err
	}
	if m.MaxSupply, err = parseUint(dao.MaxSupply); err != nil {
		return nil, err
	}
	if err := parseAddresses(&m.Address, dao.Address, &m.Authority, dao.Authority); err != nil {
		return nil, err
	}
	return m, nil
}

func toAccountDao(a *token.Account) *AccountDao {
	return &AccountDao{
		Address: a.Address.Hex(),
		Mint:    a.Mint.Hex(),
		Owner:   a.Owner.Hex(),
		Balance: formatUint(a.Balance),
	}
}

func toAccount(dao *AccountDao) (*token.Account, error) {
	a := &token.Account{}
	var err error
	if a.Balance, err = parseUint(dao.Balance); err != nil {
		return nil, err
	}
	if err := parseAddresses(&a.Address, dao.Address, &a.Mint, dao.Mint, &a.Owner, dao.Owner); err != nil {
		return nil, err
	}
	return a, nil
}

func toPostedDao(m *messaging.PostedMessage) *PostedMessageDao {
	return &PostedMessageDao{
		Account:      m.Account.Hex(),
		Emitter:      m.Emitter.Hex(),
		EmitterChain: int64(m.EmitterChain),
		Sequence:     int64(m.Sequence),
		BatchID:      int64(m.BatchID),
		Finality:     int16(m.Finality),
		Payload:      m.Payload,
		FeePaid:      formatUint(m.FeePaid),
		PostedAt:     m.PostedAt,
	}
}

func toPosted(dao *PostedMessageDao) (*messaging.PostedMessage, error) {
	m := &messaging.PostedMessage{
		EmitterChain: chain.ID(dao.EmitterChain),
		Sequence:     uint64(dao.Sequence),
		BatchID:      uint32(dao.BatchID),
		Finality:     messaging.Finality(dao.Finality),
		Payload:      dao.Payload,
		PostedAt:     dao.PostedAt.UTC(),
		SignerSeeds:  messaging.SignerSeeds(uint64(dao.Sequence)),
	}
	var err error
	if m.FeePaid, err = parseUint(dao.FeePaid); err != nil {
		return nil, err
	}
	if err := parseAddresses(&m.Account, dao.Account, &m.Emitter, dao.Emitter); err != nil {
		return nil, err
	}
	return m, nil
}

func toEnvelopeDao(hash chain.Hash, e *messaging.Envelope) *EnvelopeDao {
	return &EnvelopeDao{
		Hash:           hash.Hex(),
		EmitterChain:   int64(e.EmitterChain),
		EmitterAddress: e.EmitterAddress.Hex(),
		Sequence:       int64(e.Sequence),
		BatchID:        int64(e.BatchID),
		Finality:       int16(e.Finality),
		Payload:        e.Payload,
	}
}

func toEnvelope(dao *EnvelopeDao) (*messaging.Envelope, error) {
	e := &messaging.Envelope{
		EmitterChain: chain.ID(dao.EmitterChain),
		Sequence:     uint64(dao.Sequence),
		BatchID:      uint32(dao.BatchID),
		Finality:     messaging.Finality(dao.Finality),
		Payload:      dao.Payload,
	}
	if err := parseAddresses(&e.EmitterAddress, dao.EmitterAddress); err != nil {
		return nil, err
	}
	return e, nil
}

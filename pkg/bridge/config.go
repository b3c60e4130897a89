package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// Mode selects how value leaves and enters the home ledger.
type Mode string

const (
	// ModeWrapped locks tokens in a vault on the way out and releases them on the way in.
	ModeWrapped Mode = "wrapped"
	// ModeCanonical burns on the way out and mints on the way in.
	ModeCanonical Mode = "canonical"
)

// ParseMode validates a configured mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWrapped, ModeCanonical:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown bridge mode %q", s)
	}
}

// DustPolicy decides what happens to the sub-wire remainder of an outbound
// amount of a token with more than 8 decimals.
type DustPolicy string

const (
	// DustAccept keeps the remainder in custody (wrapped) or burns it (canonical).
	DustAccept DustPolicy = "accept"
	// DustReject fails outbound transfers that carry a remainder.
	DustReject DustPolicy = "reject"
)

// ParseDustPolicy validates a configured dust policy. Empty means accept.
func ParseDustPolicy(s string) (DustPolicy, error) {
	switch DustPolicy(s) {
	case "", DustAccept:
		return DustAccept, nil
	case DustReject:
		return DustReject, nil
	default:
		return "", fmt.Errorf("unknown dust policy %q", s)
	}
}

// ProtocolAddresses links the bridge to the messaging protocol's accounts.
type ProtocolAddresses struct {
	Bridge       chain.Address `json:"bridge"`
	FeeCollector chain.Address `json:"fee_collector"`
	Sequence     chain.Address `json:"sequence"`
}

// Config is the bridge's singleton configuration record. Only Owner changes
// after initialization.
type Config struct {
	Owner         chain.Address      `json:"owner"`
	Protocol      ProtocolAddresses  `json:"protocol"`
	BatchID       uint32             `json:"batch_id"`
	Finality      messaging.Finality `json:"finality"`
	Mode          Mode               `json:"mode"`
	HomeToken     chain.Address      `json:"home_token"`
	Emitter       chain.Address      `json:"emitter"`
	Vault         chain.Address      `json:"vault,omitempty"`
	HomeChainID   chain.ID           `json:"home_chain_id"`
	InitializedAt time.Time          `json:"initialized_at"`
}

// ConfigStore persists the singleton. GetConfig returns ErrNotInitialized
// when no record exists.
type ConfigStore interface {
	GetConfig(ctx context.Context) (*Config, error)
	PutConfig(ctx context.Context, cfg *Config) error
}

// Tx is everything one unit of work can read and write.
type Tx interface {
	ConfigStore
	emitter.Store
	replay.Store
	token.Store
	messaging.Store
}

// Store runs units of work. fn's writes become visible only when fn returns
// nil; any error discards all of them.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

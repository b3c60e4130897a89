package bridge

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/cat-bridge/pkg/amount"
	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// Service is the bridge's operation surface.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename service.go
type Service interface {
	Initialize(ctx context.Context, caller chain.Address, req *InitializeRequest) (*Config, error)
	TransferOwnership(ctx context.Context, caller, newOwner chain.Address) (*Config, error)
	RegisterEmitter(ctx context.Context, caller chain.Address, rec emitter.Record) error
	MintTokens(ctx context.Context, caller chain.Address, req *MintRequest) (*token.Account, error)

	BridgeOut(ctx context.Context, caller chain.Address, req *OutRequest) (*OutReceipt, error)
	BridgeIn(ctx context.Context, caller chain.Address, req *InRequest) (*InReceipt, error)
	DeliverMessage(ctx context.Context, env *messaging.Envelope) (chain.Hash, error)

	Config(ctx context.Context) (*Config, error)
	Emitter(ctx context.Context, chainID chain.ID) (*emitter.Record, error)
	Emitters(ctx context.Context) ([]*emitter.Record, error)
	Received(ctx context.Context, key replay.Key) (*replay.Record, error)
	Posted(ctx context.Context, sequence uint64) (*messaging.PostedMessage, error)
	Balances(ctx context.Context, owner chain.Address) (*Balances, error)
}

// InitializeRequest creates the configuration. In canonical mode the token is
// created here (at Token, or at the derived mint address when Token is zero)
// and InitialSupply is minted to the owner. In wrapped mode Token must name an
// existing mint.
type InitializeRequest struct {
	Token          chain.Address      `json:"token"`
	Decimals       uint8              `json:"decimals"`
	MaxSupply      uint64             `json:"max_supply"`
	InitialSupply  uint64             `json:"initial_supply"`
	TransferFeeBps uint16             `json:"transfer_fee_bps"`
	BatchID        uint32             `json:"batch_id"`
	Finality       messaging.Finality `json:"finality"`
}

// MintRequest mints new canonical supply to Recipient's associated account.
type MintRequest struct {
	Recipient chain.Address `json:"recipient"`
	Amount    uint64        `json:"amount"`
}

// OutRequest sends Amount native units to an account on another chain.
type OutRequest struct {
	Amount            uint64        `json:"amount"`
	RecipientChainID  chain.ID      `json:"recipient_chain_id"`
	RecipientAccount  chain.Address `json:"recipient_account"`
	RecipientContract chain.Address `json:"recipient_contract"`
}

// OutReceipt describes a committed outbound transfer.
type OutReceipt struct {
	Sequence       uint64        `json:"sequence"`
	MessageAccount chain.Address `json:"message_account"`
	Emitter        chain.Address `json:"emitter"`
	EmitterChainID chain.ID      `json:"emitter_chain_id"`
	Debited        uint64        `json:"debited"`
	WireAmount     amount.Wide   `json:"wire_amount"`
	Dust           uint64        `json:"dust"`
	FeePaid        uint64        `json:"fee_paid"`
	Payload        hexutil.Bytes `json:"payload"`
	MessageHash    chain.Hash    `json:"message_hash"`
}

// InRequest redeems a delivered message. DestinationAccount is the token
// account the caller expects to be credited; it is required in wrapped mode.
type InRequest struct {
	MessageHash        chain.Hash    `json:"message_hash"`
	DestinationAccount chain.Address `json:"destination_account"`
}

// InReceipt describes a committed inbound transfer.
type InReceipt struct {
	SourceChainID      chain.ID      `json:"source_chain_id"`
	Sequence           uint64        `json:"sequence"`
	Recipient          chain.Address `json:"recipient"`
	DestinationAccount chain.Address `json:"destination_account"`
	Credited           uint64        `json:"credited"`
	WireAmount         amount.Wide   `json:"wire_amount"`
}

// Balances is an owner's view of the home token and native currency.
type Balances struct {
	Owner   chain.Address `json:"owner"`
	Account chain.Address `json:"account"`
	Token   uint64        `json:"token"`
	Native  uint64        `json:"native"`
	Display string        `json:"display"`
}

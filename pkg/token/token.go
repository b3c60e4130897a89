// Package token is the host ledger's token program: mints, token accounts,
// and the native currency used to pay protocol fees.
package token

import (
	"context"
	"errors"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

// ProgramID owns every associated token account.
var ProgramID = chain.DeriveAddress(chain.ZeroAddress, []byte("token_program"))

var (
	ErrNotFound          = errors.New("token record not found")
	ErrAlreadyExists     = errors.New("token record already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthorized      = errors.New("signer is not the authority")
	ErrSupplyCap         = errors.New("max supply exceeded")
	ErrMintMismatch      = errors.New("account belongs to a different mint")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// MaxTransferFeeBps caps the transfer fee at 100%.
const MaxTransferFeeBps = 10_000

// Mint describes a fungible token.
type Mint struct {
	Address        chain.Address `json:"address"`
	Decimals       uint8         `json:"decimals"`
	Supply         uint64        `json:"supply"`
	MaxSupply      uint64        `json:"max_supply"` // 0 means uncapped
	Authority      chain.Address `json:"authority"`
	TransferFeeBps uint16        `json:"transfer_fee_bps"`
}

// Account holds a balance of one mint for one owner.
type Account struct {
	Address chain.Address `json:"address"`
	Mint    chain.Address `json:"mint"`
	Owner   chain.Address `json:"owner"`
	Balance uint64        `json:"balance"`
}

// Store is the persistence needed by the token program. Implementations
// return ErrNotFound for missing mints and accounts; unknown native balances
// read as zero.
type Store interface {
	GetMint(ctx context.Context, addr chain.Address) (*Mint, error)
	PutMint(ctx context.Context, m *Mint) error
	GetAccount(ctx context.Context, addr chain.Address) (*Account, error)
	PutAccount(ctx context.Context, a *Account) error
	ListAccounts(ctx context.Context, owner chain.Address) ([]*Account, error)
	GetNativeBalance(ctx context.Context, addr chain.Address) (uint64, error)
	PutNativeBalance(ctx context.Context, addr chain.Address, balance uint64) error
}

// AssociatedAccount is the canonical token account of owner for mint.
func AssociatedAccount(owner, mint chain.Address) chain.Address {
	return chain.DeriveAddress(ProgramID, owner[:], mint[:])
}

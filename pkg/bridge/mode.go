package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/cat-bridge/pkg/chain"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// TransferMode is the mode-specific half of a transfer: how value is taken
// from a user on the way out and given to a user on the way in.
type TransferMode interface {
	Mode() Mode
	// Setup prepares custody of the home token during initialization and
	// fills cfg.HomeToken (and cfg.Vault for modes that use one).
	Setup(ctx context.Context, tx Tx, cfg *Config, req *InitializeRequest) error
	// Debit takes amount from caller's associated account and returns how
	// much the bridge actually received.
	Debit(ctx context.Context, tx Tx, cfg *Config, caller chain.Address, amount uint64) (uint64, error)
	// Credit gives amount to owner's associated account, opening it if needed.
	Credit(ctx context.Context, tx Tx, cfg *Config, owner chain.Address, amount uint64) error
}

// Wrapped locks tokens in a vault derived from the token mint.
type Wrapped struct {
	program chain.Address
}

// NewWrapped creates the lock/release mode for the bridge program.
func NewWrapped(program chain.Address) *Wrapped {
	return &Wrapped{program: program}
}

func (w *Wrapped) Mode() Mode { return ModeWrapped }

// VaultAddress is the bridge-owned holding account of mint.
func (w *Wrapped) VaultAddress(mint chain.Address) chain.Address {
	return chain.DeriveAddress(w.program, []byte("vault"), mint[:])
}

func (w *Wrapped) Setup(ctx context.Context, tx Tx, cfg *Config, req *InitializeRequest) error {
	if req.Token.IsZero() {
		return validation("initialize", fmt.Errorf("%w: wrapped token", ErrZeroAddress))
	}
	if req.InitialSupply != 0 {
		return validation("initialize", fmt.Errorf("%w: wrapped mode cannot mint an initial supply", ErrWrongMode))
	}
	if _, err := tx.GetMint(ctx, req.Token); err != nil {
		if errors.Is(err, token.ErrNotFound) {
			return validation("initialize", fmt.Errorf("%w: %s", ErrUnknownToken, req.Token))
		}
		return collaborator("initialize", err)
	}
	vault := w.VaultAddress(req.Token)
	if _, err := token.OpenAccount(ctx, tx, vault, vault, req.Token); err != nil {
		return collaborator("initialize", fmt.Errorf("open vault: %w", err))
	}
	cfg.HomeToken = req.Token
	cfg.Vault = vault
	return nil
}

// Debit transfers into the vault and reports the vault's balance delta, which
// is smaller than amount for tokens that withhold a transfer fee.
func (w *Wrapped) Debit(ctx context.Context, tx Tx, cfg *Config, caller chain.Address, amount uint64) (uint64, error) {
	before, err := token.Balance(ctx, tx, cfg.Vault)
	if err != nil {
		return 0, collaborator("bridge_out", fmt.Errorf("vault balance: %w", err))
	}
	from := token.AssociatedAccount(caller, cfg.HomeToken)
	if err := token.Transfer(ctx, tx, from, cfg.Vault, caller, amount); err != nil {
		return 0, collaborator("bridge_out", fmt.Errorf("lock: %w", err))
	}
	after, err := token.Balance(ctx, tx, cfg.Vault)
	if err != nil {
		return 0, collaborator("bridge_out", fmt.Errorf("vault balance: %w", err))
	}
	if after < before {
		return 0, arithmetic("bridge_out", fmt.Errorf("vault balance decreased from %d to %d", before, after))
	}
	return after - before, nil
}

// Credit releases tokens from the vault.
func (w *Wrapped) Credit(ctx context.Context, tx Tx, cfg *Config, owner chain.Address, amount uint64) error {
	acc, err := token.OpenAssociated(ctx, tx, owner, cfg.HomeToken)
	if err != nil {
		return collaborator("bridge_in", fmt.Errorf("open destination: %w", err))
	}
	if err := token.Transfer(ctx, tx, cfg.Vault, acc.Address, cfg.Vault, amount); err != nil {
		return collaborator("bridge_in", fmt.Errorf("release: %w", err))
	}
	return nil
}

// Canonical mints and burns the home token directly.
type Canonical struct {
	program chain.Address
}

// NewCanonical creates the burn/mint mode for the bridge program.
func NewCanonical(program chain.Address) *Canonical {
	return &Canonical{program: program}
}

func (c *Canonical) Mode() Mode { return ModeCanonical }

// MintAddress is the derived address of the canonical token.
func (c *Canonical) MintAddress() chain.Address {
	return chain.DeriveAddress(c.program, []byte("cat_token"))
}

// MintAuthority is the bridge-owned authority of the canonical token.
func (c *Canonical) MintAuthority() chain.Address {
	return chain.DeriveAddress(c.program, []byte("mint_authority"))
}

func (c *Canonical) Setup(ctx context.Context, tx Tx, cfg *Config, req *InitializeRequest) error {
	mint := req.Token
	if mint.IsZero() {
		mint = c.MintAddress()
	}
	if req.MaxSupply != 0 && req.InitialSupply > req.MaxSupply {
		return validation("initialize", fmt.Errorf("%w: initial supply %d above max %d",
			token.ErrSupplyCap, req.InitialSupply, req.MaxSupply))
	}
	if req.TransferFeeBps > token.MaxTransferFeeBps {
		return validation("initialize", fmt.Errorf("transfer fee %d bps above %d", req.TransferFeeBps, token.MaxTransferFeeBps))
	}
	err := token.CreateMint(ctx, tx, &token.Mint{
		Address:        mint,
		Decimals:       req.Decimals,
		MaxSupply:      req.MaxSupply,
		Authority:      c.MintAuthority(),
		TransferFeeBps: req.TransferFeeBps,
	})
	if errors.Is(err, token.ErrAlreadyExists) {
		return validation("initialize", err)
	}
	if err != nil {
		return collaborator("initialize", err)
	}
	cfg.HomeToken = mint

	if req.InitialSupply == 0 {
		return nil
	}
	acc, err := token.OpenAssociated(ctx, tx, cfg.Owner, mint)
	if err != nil {
		return collaborator("initialize", err)
	}
	if err := token.MintTo(ctx, tx, mint, acc.Address, c.MintAuthority(), req.InitialSupply); err != nil {
		return collaborator("initialize", fmt.Errorf("initial supply: %w", err))
	}
	return nil
}

// Debit burns from the caller's account.
func (c *Canonical) Debit(ctx context.Context, tx Tx, cfg *Config, caller chain.Address, amount uint64) (uint64, error) {
	from := token.AssociatedAccount(caller, cfg.HomeToken)
	if err := token.Burn(ctx, tx, from, caller, amount); err != nil {
		return 0, collaborator("bridge_out", fmt.Errorf("burn: %w", err))
	}
	return amount, nil
}

// Credit mints to the owner's account.
func (c *Canonical) Credit(ctx context.Context, tx Tx, cfg *Config, owner chain.Address, amount uint64) error {
	acc, err := token.OpenAssociated(ctx, tx, owner, cfg.HomeToken)
	if err != nil {
		return collaborator("bridge_in", fmt.Errorf("open destination: %w", err))
	}
	if err := token.MintTo(ctx, tx, cfg.HomeToken, acc.Address, c.MintAuthority(), amount); err != nil {
		return collaborator("bridge_in", fmt.Errorf("mint: %w", err))
	}
	return nil
}

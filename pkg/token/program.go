package token

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/chainsafe/cat-bridge/pkg/chain"
)

// CreateMint registers a new mint with zero supply.
func CreateMint(ctx context.Context, s Store, m *Mint) error {
	if m.Address.IsZero() {
		return fmt.Errorf("%w: zero mint address", ErrInvalidAmount)
	}
	if m.TransferFeeBps > MaxTransferFeeBps {
		return fmt.Errorf("%w: transfer fee %d bps", ErrInvalidAmount, m.TransferFeeBps)
	}
	if _, err := s.GetMint(ctx, m.Address); err == nil {
		return fmt.Errorf("%w: mint %s", ErrAlreadyExists, m.Address)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	created := *m
	created.Supply = 0
	return s.PutMint(ctx, &created)
}

// OpenAssociated returns owner's associated account for mint, creating an
// empty one when it does not exist yet.
func OpenAssociated(ctx context.Context, s Store, owner, mint chain.Address) (*Account, error) {
	addr := AssociatedAccount(owner, mint)
	acc, err := s.GetAccount(ctx, addr)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if _, err := s.GetMint(ctx, mint); err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	acc = &Account{Address: addr, Mint: mint, Owner: owner}
	if err := s.PutAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// OpenAccount creates an account at an explicit address, e.g. a vault whose
// owner is itself.
func OpenAccount(ctx context.Context, s Store, addr, owner, mint chain.Address) (*Account, error) {
	if acc, err := s.GetAccount(ctx, addr); err == nil {
		if acc.Mint != mint {
			return nil, fmt.Errorf("%w: %s", ErrMintMismatch, addr)
		}
		return acc, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if _, err := s.GetMint(ctx, mint); err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	acc := &Account{Address: addr, Mint: mint, Owner: owner}
	if err := s.PutAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Balance returns the balance of a token account.
func Balance(ctx context.Context, s Store, addr chain.Address) (uint64, error) {
	acc, err := s.GetAccount(ctx, addr)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// MintTo increases supply and credits the account. authority must be the
// mint authority.
func MintTo(ctx context.Context, s Store, mintAddr, to, authority chain.Address, amount uint64) error {
	m, err := s.GetMint(ctx, mintAddr)
	if err != nil {
		return fmt.Errorf("mint %s: %w", mintAddr, err)
	}
	if m.Authority != authority {
		return fmt.Errorf("%w: mint %s", ErrUnauthorized, mintAddr)
	}
	acc, err := s.GetAccount(ctx, to)
	if err != nil {
		return fmt.Errorf("account %s: %w", to, err)
	}
	if acc.Mint != mintAddr {
		return fmt.Errorf("%w: %s", ErrMintMismatch, to)
	}
	supply, carry := bits.Add64(m.Supply, amount, 0)
	if carry != 0 || (m.MaxSupply != 0 && supply > m.MaxSupply) {
		return fmt.Errorf("%w: supply %d + %d, max %d", ErrSupplyCap, m.Supply, amount, m.MaxSupply)
	}
	balance, carry := bits.Add64(acc.Balance, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: balance overflow", ErrInvalidAmount)
	}
	m.Supply = supply
	acc.Balance = balance
	if err := s.PutMint(ctx, m); err != nil {
		return err
	}
	return s.PutAccount(ctx, acc)
}

// Burn debits the account and reduces supply. authority must own the account.
func Burn(ctx context.Context, s Store, from, authority chain.Address, amount uint64) error {
	acc, err := s.GetAccount(ctx, from)
	if err != nil {
		return fmt.Errorf("account %s: %w", from, err)
	}
	if acc.Owner != authority {
		return fmt.Errorf("%w: account %s", ErrUnauthorized, from)
	}
	if acc.Balance < amount {
		return fmt.Errorf("%w: balance %d, burn %d", ErrInsufficientFunds, acc.Balance, amount)
	}
	m, err := s.GetMint(ctx, acc.Mint)
	if err != nil {
		return fmt.Errorf("mint %s: %w", acc.Mint, err)
	}
	acc.Balance -= amount
	m.Supply -= amount
	if err := s.PutAccount(ctx, acc); err != nil {
		return err
	}
	return s.PutMint(ctx, m)
}

// Transfer moves amount between two accounts of the same mint. A mint with a
// transfer fee withholds the fee from the credited amount and burns it, so
// the recipient's balance grows by less than amount.
func Transfer(ctx context.Context, s Store, from, to, authority chain.Address, amount uint64) error {
	if from == to {
		return fmt.Errorf("%w: self transfer", ErrInvalidAmount)
	}
	src, err := s.GetAccount(ctx, from)
	if err != nil {
		return fmt.Errorf("account %s: %w", from, err)
	}
	if src.Owner != authority {
		return fmt.Errorf("%w: account %s", ErrUnauthorized, from)
	}
	dst, err := s.GetAccount(ctx, to)
	if err != nil {
		return fmt.Errorf("account %s: %w", to, err)
	}
	if dst.Mint != src.Mint {
		return fmt.Errorf("%w: %s", ErrMintMismatch, to)
	}
	if src.Balance < amount {
		return fmt.Errorf("%w: balance %d, transfer %d", ErrInsufficientFunds, src.Balance, amount)
	}
	m, err := s.GetMint(ctx, src.Mint)
	if err != nil {
		return fmt.Errorf("mint %s: %w", src.Mint, err)
	}

	fee := TransferFee(amount, m.TransferFeeBps)
	credited := amount - fee
	balance, carry := bits.Add64(dst.Balance, credited, 0)
	if carry != 0 {
		return fmt.Errorf("%w: balance overflow", ErrInvalidAmount)
	}
	src.Balance -= amount
	dst.Balance = balance
	if err := s.PutAccount(ctx, src); err != nil {
		return err
	}
	if err := s.PutAccount(ctx, dst); err != nil {
		return err
	}
	if fee == 0 {
		return nil
	}
	m.Supply -= fee
	return s.PutMint(ctx, m)
}

// TransferFee is the amount withheld from a transfer of amount.
func TransferFee(amount uint64, bps uint16) uint64 {
	if bps == 0 {
		return 0
	}
	hi, lo := bits.Mul64(amount, uint64(bps))
	fee, _ := bits.Div64(hi, lo, MaxTransferFeeBps)
	return fee
}

// TransferNative moves native currency between two addresses. A transfer to
// the payer itself moves nothing and is rejected.
func TransferNative(ctx context.Context, s Store, from, to chain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from == to {
		return fmt.Errorf("%w: self transfer", ErrInvalidAmount)
	}
	src, err := s.GetNativeBalance(ctx, from)
	if err != nil {
		return err
	}
	if src < amount {
		return fmt.Errorf("%w: native balance %d, need %d", ErrInsufficientFunds, src, amount)
	}
	dst, err := s.GetNativeBalance(ctx, to)
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(dst, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: native balance overflow", ErrInvalidAmount)
	}
	if err := s.PutNativeBalance(ctx, from, src-amount); err != nil {
		return err
	}
	return s.PutNativeBalance(ctx, to, sum)
}

// Airdrop credits native currency out of thin air. Development and tests only.
func Airdrop(ctx context.Context, s Store, to chain.Address, amount uint64) error {
	bal, err := s.GetNativeBalance(ctx, to)
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(bal, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: native balance overflow", ErrInvalidAmount)
	}
	return s.PutNativeBalance(ctx, to, sum)
}

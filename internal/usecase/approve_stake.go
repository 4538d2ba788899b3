package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
)

// ApproveStake grants the engine's escrow account a spending allowance on
// the caller's ledger balance, the pull-style authorization every vote
// stake requires.
type ApproveStake struct {
	cfg    *config.RuntimeConfig
	ledger TokenLedger
}

// NewApproveStake creates a new approve stake use case
func NewApproveStake(cfg *config.RuntimeConfig, ledger TokenLedger) *ApproveStake {
	return &ApproveStake{cfg: cfg, ledger: ledger}
}

// ApproveStakeParams contains parameters for the allowance grant
type ApproveStakeParams struct {
	Owner  common.Address
	Amount *big.Int
}

// ApproveStakeResult contains the allowance after the grant
type ApproveStakeResult struct {
	Owner     common.Address
	Spender   common.Address
	Allowance *big.Int
}

// Execute sets the escrow allowance on the owner's balance
func (a *ApproveStake) Execute(ctx context.Context, params ApproveStakeParams) (*ApproveStakeResult, error) {
	if params.Amount == nil || params.Amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: allowance must be non-negative", domain.ErrInvalidAmount)
	}

	escrow := a.cfg.Engine.EscrowAccount
	if err := a.ledger.Approve(ctx, params.Owner, escrow, params.Amount); err != nil {
		return nil, fmt.Errorf("failed to approve allowance: %w", err)
	}

	allowance, err := a.ledger.Allowance(ctx, params.Owner, escrow)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance: %w", err)
	}

	return &ApproveStakeResult{Owner: params.Owner, Spender: escrow, Allowance: allowance}, nil
}

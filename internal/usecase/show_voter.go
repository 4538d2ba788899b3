package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// ShowVoter fetches a voter's rights, participation and ledger position
type ShowVoter struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	ledger TokenLedger
}

// NewShowVoter creates a new show voter use case
func NewShowVoter(cfg *config.RuntimeConfig, repo GovernanceRepository, ledger TokenLedger) *ShowVoter {
	return &ShowVoter{cfg: cfg, repo: repo, ledger: ledger}
}

// ShowVoterParams identifies the voter account
type ShowVoterParams struct {
	Account common.Address
}

// ShowVoterResult contains the voter state alongside their token position
type ShowVoterResult struct {
	Voter     *models.Voter
	Records   []*models.VoteRecord
	Balance   *big.Int
	Allowance *big.Int
}

// Run loads the voter; an account that never received delegation is
// reported with zero rights rather than as an error.
func (s *ShowVoter) Run(ctx context.Context, params ShowVoterParams) (*ShowVoterResult, error) {
	voter, err := s.repo.GetVoter(ctx, params.Account)
	if errors.Is(err, domain.ErrVoterNotFound) {
		voter = &models.Voter{Account: params.Account}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	records, err := s.repo.ListVoterRecords(ctx, params.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote records: %w", err)
	}

	balance, err := s.ledger.BalanceOf(ctx, params.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	allowance, err := s.ledger.Allowance(ctx, params.Account, s.cfg.Engine.EscrowAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance: %w", err)
	}

	return &ShowVoterResult{
		Voter:     voter,
		Records:   records,
		Balance:   balance,
		Allowance: allowance,
	}, nil
}

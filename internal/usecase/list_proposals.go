package usecase

import (
	"context"
	"fmt"

	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/samber/lo"
)

// ListProposals returns proposals matching a filter plus summary counts
type ListProposals struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	ledger TokenLedger
}

// NewListProposals creates a new list proposals use case
func NewListProposals(cfg *config.RuntimeConfig, repo GovernanceRepository, ledger TokenLedger) *ListProposals {
	return &ListProposals{cfg: cfg, repo: repo, ledger: ledger}
}

// ListProposalsParams contains the listing filter
type ListProposalsParams struct {
	Filter domain.ProposalFilter
}

// Run lists proposals in creation order
func (l *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	proposals, err := l.repo.ListProposals(ctx, params.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	total, err := l.repo.CountProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count proposals: %w", err)
	}

	escrowBalance, err := l.ledger.BalanceOf(ctx, l.cfg.Engine.EscrowAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to read escrow balance: %w", err)
	}

	byStatus := lo.CountValuesBy(proposals, func(p *models.Proposal) models.ProposalStatus {
		return p.Status()
	})

	return &ProposalListResult{
		Proposals: proposals,
		Summary: ProposalSummary{
			Total:         total,
			ByStatus:      byStatus,
			EscrowBalance: escrowBalance,
		},
	}, nil
}

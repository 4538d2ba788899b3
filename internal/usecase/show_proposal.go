package usecase

import (
	"context"
	"fmt"

	"github.com/flexdao/flexgov/internal/domain/models"
)

// ShowProposal fetches one proposal with its per-voter stakes
type ShowProposal struct {
	repo GovernanceRepository
}

// NewShowProposal creates a new show proposal use case
func NewShowProposal(repo GovernanceRepository) *ShowProposal {
	return &ShowProposal{repo: repo}
}

// ShowProposalParams identifies the proposal by id or title fragment
type ShowProposalParams struct {
	Reference string
}

// ShowProposalResult contains the proposal and its votes in voting order
type ShowProposalResult struct {
	Proposal *models.Proposal
	Votes    []VoteTally
}

// Run resolves the reference and loads the proposal's vote records
func (s *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ShowProposalResult, error) {
	proposal, err := resolveProposalRef(ctx, s.repo, params.Reference)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListVoteRecords(ctx, proposal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote records: %w", err)
	}

	votes := make([]VoteTally, 0, len(records))
	for _, record := range records {
		votes = append(votes, VoteTally{
			Voter:  record.Voter,
			Choice: record.Choice,
			Amount: record.Amount,
		})
	}

	return &ShowProposalResult{Proposal: proposal, Votes: votes}, nil
}

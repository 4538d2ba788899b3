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

// CastVote consumes one voting right and moves the voter's stake into the
// engine escrow while updating the proposal tallies.
type CastVote struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	ledger TokenLedger
	clock  Clock
	events EventSink
	lock   Serializer
}

// NewCastVote creates a new cast vote use case
func NewCastVote(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	ledger TokenLedger,
	clock Clock,
	events EventSink,
	lock Serializer,
) *CastVote {
	return &CastVote{
		cfg:    cfg,
		repo:   repo,
		ledger: ledger,
		clock:  clock,
		events: events,
		lock:   lock,
	}
}

// CastVoteParams contains parameters for voting
type CastVoteParams struct {
	Voter      common.Address
	ProposalID uint64
	Choice     models.VoteChoice
	Amount     *big.Int
}

// CastVoteResult contains the state written by a successful vote
type CastVoteResult struct {
	Proposal *models.Proposal
	Record   *models.VoteRecord
	Voter    *models.Voter
}

// Execute checks all preconditions in order before any mutation, then
// applies the vote atomically. The stake pull is the only external effect
// and happens after every local check has passed.
func (c *CastVote) Execute(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", domain.ErrInvalidAmount)
	}
	if !params.Choice.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidChoice, params.Choice)
	}

	// 1. Proposal must exist and still be open for votes
	proposal, err := c.repo.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()
	if !proposal.AcceptsVotes(now) {
		return nil, domain.ErrDeadlinePassed
	}

	// 2. Voter must hold at least one voting right
	voter, err := c.repo.GetVoter(ctx, params.Voter)
	if errors.Is(err, domain.ErrVoterNotFound) {
		return nil, domain.ErrNoVotingRight
	} else if err != nil {
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	if voter.VoteRight == 0 {
		return nil, domain.ErrNoVotingRight
	}

	// 3. One vote per (voter, proposal)
	if _, err := c.repo.GetVoteRecord(ctx, models.VoteRecordKey{
		ProposalID: params.ProposalID,
		Voter:      params.Voter,
	}); err == nil {
		return nil, domain.ErrAlreadyVoted
	} else if !errors.Is(err, domain.ErrNotAValidVoter) {
		return nil, fmt.Errorf("failed to check vote record: %w", err)
	}

	// 4. Pull the stake into escrow; balance or allowance shortfalls
	// surface here, before any local mutation
	escrow := c.cfg.Engine.EscrowAccount
	if err := c.ledger.TransferFrom(ctx, escrow, params.Voter, escrow, params.Amount); err != nil {
		return nil, err
	}

	voter.VoteRight--
	voter.Proposals = append(voter.Proposals, params.ProposalID)

	record := &models.VoteRecord{
		ProposalID: params.ProposalID,
		Voter:      params.Voter,
		Choice:     params.Choice,
		Amount:     new(big.Int).Set(params.Amount),
	}

	switch params.Choice {
	case models.VoteApprove:
		proposal.ApproveCount++
	case models.VoteReject:
		proposal.RejectCount++
	}
	proposal.TotalStake = new(big.Int).Add(proposal.TotalStake, params.Amount)

	if err := c.repo.SaveVoteRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save vote record: %w", err)
	}
	if err := c.repo.SaveVoter(ctx, voter); err != nil {
		return nil, fmt.Errorf("failed to save voter: %w", err)
	}
	if err := c.repo.SaveProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}

	c.events.Emit(ctx, &domain.VoteCastEvent{
		ProposalID:  params.ProposalID,
		Voter:       params.Voter,
		ChoiceLabel: params.Choice.Label(),
		Message:     domain.VoteSuccessMessage,
	})

	return &CastVoteResult{Proposal: proposal, Record: record, Voter: voter}, nil
}

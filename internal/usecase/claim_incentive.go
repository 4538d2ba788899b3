package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// ClaimIncentive pays out accrued incentive epochs to an approve-voter of
// an accepted proposal.
type ClaimIncentive struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	ledger TokenLedger
	clock  Clock
	events EventSink
	lock   Serializer
}

// NewClaimIncentive creates a new claim incentive use case
func NewClaimIncentive(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	ledger TokenLedger,
	clock Clock,
	events EventSink,
	lock Serializer,
) *ClaimIncentive {
	return &ClaimIncentive{
		cfg:    cfg,
		repo:   repo,
		ledger: ledger,
		clock:  clock,
		events: events,
		lock:   lock,
	}
}

// ClaimIncentiveParams contains parameters for claiming
type ClaimIncentiveParams struct {
	Voter      common.Address
	ProposalID uint64
}

// ClaimIncentiveResult contains the payout performed
type ClaimIncentiveResult struct {
	Record  *models.VoteRecord
	Epochs  uint64
	Payment *big.Int
}

// Execute accrues whole epochs since the last claim (or since resolution
// for the first claim), capped so the record's lifetime total never
// exceeds MaxClaimEpochs, and transfers rate × stake × epochs / scale
// out of escrow.
func (c *ClaimIncentive) Execute(ctx context.Context, params ClaimIncentiveParams) (*ClaimIncentiveResult, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	record, proposal, err := eligibleRecord(ctx, c.repo, params.Voter, params.ProposalID)
	if err != nil {
		return nil, err
	}

	incentive := c.cfg.Engine.Incentive()
	since := *proposal.ResolvedAt
	if record.LastClaimAt != nil {
		since = *record.LastClaimAt
	}

	now := c.clock.Now()
	elapsed := incentive.ElapsedEpochs(since, now)
	if elapsed == 0 {
		return nil, domain.ErrClaimWindowNotReached
	}

	epochs := min(elapsed, incentive.MaxClaimEpochs-record.ClaimedEpochs)
	payment := incentive.Payment(proposal.IncentiveRateBps, record.Amount, epochs)

	escrow := c.cfg.Engine.EscrowAccount
	if err := c.ledger.Transfer(ctx, escrow, params.Voter, payment); err != nil {
		return nil, err
	}

	lastClaim := since.Add(time.Duration(epochs) * incentive.EpochLength)
	record.LastClaimAt = &lastClaim
	record.ClaimedEpochs += epochs
	record.Settled = record.ClaimedEpochs == incentive.MaxClaimEpochs

	if err := c.repo.SaveVoteRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save vote record: %w", err)
	}

	c.events.Emit(ctx, &domain.IncentiveClaimedEvent{Voter: params.Voter, Amount: payment})

	return &ClaimIncentiveResult{Record: record, Epochs: epochs, Payment: payment}, nil
}

// eligibleRecord runs the claim eligibility checks shared by the periodic
// claim and the terminal settlement: the proposal must be resolved and
// accepted, the caller must hold an approve-side record, and the record
// must not be fully settled yet.
func eligibleRecord(
	ctx context.Context,
	repo GovernanceRepository,
	voter common.Address,
	proposalID uint64,
) (*models.VoteRecord, *models.Proposal, error) {
	proposal, err := repo.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, nil, err
	}
	if !proposal.Resolved || !proposal.Accepted {
		return nil, nil, domain.ErrProposalRejected
	}

	record, err := repo.GetVoteRecord(ctx, models.VoteRecordKey{ProposalID: proposalID, Voter: voter})
	if err != nil {
		return nil, nil, err
	}
	if record.Choice != models.VoteApprove {
		return nil, nil, domain.ErrMustHaveVotedApprove
	}
	if record.Settled {
		return nil, nil, domain.ErrAlreadyClaimed
	}

	return record, proposal, nil
}

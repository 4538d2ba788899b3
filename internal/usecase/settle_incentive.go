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

// SettleIncentive is the terminal settlement path: once the full claim
// horizon has elapsed it pays all remaining unclaimed entitlement in one
// transfer and closes the record for good.
type SettleIncentive struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	ledger TokenLedger
	clock  Clock
	events EventSink
	lock   Serializer
}

// NewSettleIncentive creates a new settle incentive use case
func NewSettleIncentive(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	ledger TokenLedger,
	clock Clock,
	events EventSink,
	lock Serializer,
) *SettleIncentive {
	return &SettleIncentive{
		cfg:    cfg,
		repo:   repo,
		ledger: ledger,
		clock:  clock,
		events: events,
		lock:   lock,
	}
}

// SettleIncentiveParams contains parameters for terminal settlement
type SettleIncentiveParams struct {
	Voter      common.Address
	ProposalID uint64
}

// SettleIncentiveResult contains the final payout
type SettleIncentiveResult struct {
	Record  *models.VoteRecord
	Epochs  uint64
	Payment *big.Int
}

// Execute pays MaxClaimEpochs − claimedEpochs at the proposal's rate once
// now ≥ resolvedAt + MaxClaimEpochs × EpochLength, then marks the record
// settled so any further claim or settle fails with AlreadyClaimed.
func (s *SettleIncentive) Execute(ctx context.Context, params SettleIncentiveParams) (*SettleIncentiveResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, proposal, err := eligibleRecord(ctx, s.repo, params.Voter, params.ProposalID)
	if err != nil {
		return nil, err
	}

	incentive := s.cfg.Engine.Incentive()
	now := s.clock.Now()
	if now.Before(incentive.SettlementHorizon(*proposal.ResolvedAt)) {
		return nil, domain.ErrClaimWindowNotReached
	}

	epochs := incentive.MaxClaimEpochs - record.ClaimedEpochs
	payment := incentive.Payment(proposal.IncentiveRateBps, record.Amount, epochs)

	escrow := s.cfg.Engine.EscrowAccount
	if err := s.ledger.Transfer(ctx, escrow, params.Voter, payment); err != nil {
		return nil, err
	}

	lastClaim := proposal.ResolvedAt.Add(time.Duration(incentive.MaxClaimEpochs) * incentive.EpochLength)
	record.LastClaimAt = &lastClaim
	record.ClaimedEpochs = incentive.MaxClaimEpochs
	record.Settled = true

	if err := s.repo.SaveVoteRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save vote record: %w", err)
	}

	s.events.Emit(ctx, &domain.IncentiveClaimedEvent{Voter: params.Voter, Amount: payment})

	return &SettleIncentiveResult{Record: record, Epochs: epochs, Payment: payment}, nil
}

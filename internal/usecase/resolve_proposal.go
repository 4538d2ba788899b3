package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// ResolveProposal closes a proposal once its deadline has passed and
// converts the tallies into the terminal accepted/rejected outcome.
type ResolveProposal struct {
	cfg      *config.RuntimeConfig
	repo     GovernanceRepository
	ledger   TokenLedger
	auth     AuthorizationPolicy
	clock    Clock
	events   EventSink
	progress ProgressSink
	lock     Serializer
}

// NewResolveProposal creates a new resolve proposal use case
func NewResolveProposal(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	ledger TokenLedger,
	auth AuthorizationPolicy,
	clock Clock,
	events EventSink,
	progress ProgressSink,
	lock Serializer,
) *ResolveProposal {
	return &ResolveProposal{
		cfg:      cfg,
		repo:     repo,
		ledger:   ledger,
		auth:     auth,
		clock:    clock,
		events:   events,
		progress: progress,
		lock:     lock,
	}
}

// ResolveProposalParams contains parameters for resolution
type ResolveProposalParams struct {
	Caller     common.Address
	ProposalID uint64
}

// ResolveProposalResult contains the outcome and any refunds performed
type ResolveProposalResult struct {
	Proposal *models.Proposal
	Refunds  []RefundEntry
}

// Execute decides accepted = approveCount > rejectCount (a tie rejects).
// On rejection every approve-voter's stake is pushed back out of escrow,
// one refund per voter; reject-side stake is retained in escrow. On
// acceptance no tokens move, the escrow keeps backing the incentive
// program. Resolution happens exactly once per proposal.
func (r *ResolveProposal) Execute(ctx context.Context, params ResolveProposalParams) (*ResolveProposalResult, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	proposal, err := r.repo.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	if err := r.auth.CanResolve(ctx, params.Caller, proposal); err != nil {
		return nil, err
	}

	if proposal.Resolved {
		return nil, domain.ErrAlreadyResolved
	}
	now := r.clock.Now()
	if now.Before(proposal.Deadline) {
		return nil, domain.ErrDeadlineNotReached
	}

	accepted := proposal.ApproveCount > proposal.RejectCount

	var refunds []RefundEntry
	if !accepted {
		refunds, err = r.refundApproveVoters(ctx, proposal)
		if err != nil {
			return nil, err
		}
	}

	proposal.Resolved = true
	proposal.Accepted = accepted
	proposal.ResolvedAt = &now

	if err := r.repo.SaveProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}

	r.events.Emit(ctx, &domain.ProposalResolvedEvent{
		ProposalID: proposal.ID,
		Accepted:   accepted,
		Message:    domain.ProposalSettledMessage,
	})

	return &ResolveProposalResult{Proposal: proposal, Refunds: refunds}, nil
}

// refundApproveVoters returns the staked amount of every approve-side
// record to its voter, in voting order. The escrow must cover the whole
// batch before any token moves; a shortfall fails the call with no
// refunds performed, keeping resolution safely retryable.
func (r *ResolveProposal) refundApproveVoters(ctx context.Context, proposal *models.Proposal) ([]RefundEntry, error) {
	records, err := r.repo.ListVoteRecords(ctx, proposal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote records: %w", err)
	}

	escrow := r.cfg.Engine.EscrowAccount

	total := new(big.Int)
	for _, record := range records {
		if record.Choice == models.VoteApprove {
			total.Add(total, record.Amount)
		}
	}
	if total.Sign() > 0 {
		balance, err := r.ledger.BalanceOf(ctx, escrow)
		if err != nil {
			return nil, fmt.Errorf("failed to read escrow balance: %w", err)
		}
		if balance.Cmp(total) < 0 {
			return nil, fmt.Errorf("escrow holds %s of %s needed to refund proposal %d: %w",
				balance, total, proposal.ID, domain.ErrInsufficientBalance)
		}
	}

	var refunds []RefundEntry
	for i, record := range records {
		if record.Choice != models.VoteApprove {
			continue
		}

		r.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "refund",
			Current: i + 1,
			Total:   len(records),
			Message: fmt.Sprintf("refunding %s", record.Voter.Hex()),
			Spinner: true,
		})

		if err := r.ledger.Transfer(ctx, escrow, record.Voter, record.Amount); err != nil {
			return nil, fmt.Errorf("failed to refund %s: %w", record.Voter.Hex(), err)
		}

		r.events.Emit(ctx, &domain.StakeRefundedEvent{
			ProposalID: proposal.ID,
			Voter:      record.Voter,
			Amount:     record.Amount,
		})
		refunds = append(refunds, RefundEntry{Voter: record.Voter, Amount: record.Amount})
	}

	return refunds, nil
}

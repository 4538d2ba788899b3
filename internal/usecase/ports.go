package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// GovernanceRepository handles persistence of the engine's exclusive state:
// the proposal registry, the voter registry and the vote records. Proposals
// are append-only; ids are assigned in creation order and never reused.
type GovernanceRepository interface {
	AppendProposal(ctx context.Context, proposal *models.Proposal) (uint64, error)
	GetProposal(ctx context.Context, id uint64) (*models.Proposal, error)
	ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]*models.Proposal, error)
	CountProposals(ctx context.Context) (uint64, error)
	SaveProposal(ctx context.Context, proposal *models.Proposal) error

	GetVoter(ctx context.Context, account common.Address) (*models.Voter, error)
	SaveVoter(ctx context.Context, voter *models.Voter) error

	GetVoteRecord(ctx context.Context, key models.VoteRecordKey) (*models.VoteRecord, error)
	// ListVoteRecords returns a proposal's records in voting order
	ListVoteRecords(ctx context.Context, proposalID uint64) ([]*models.VoteRecord, error)
	// ListVoterRecords returns all records held by one voter
	ListVoterRecords(ctx context.Context, account common.Address) ([]*models.VoteRecord, error)
	SaveVoteRecord(ctx context.Context, record *models.VoteRecord) error
}

// TokenLedger is the engine's narrow contract with the external fungible
// token ledger. The engine never mutates balances directly: stakes are
// pulled via TransferFrom under a prior Approve grant, refunds and payouts
// are pushed via Transfer out of the engine's escrow account.
type TokenLedger interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Transfer(ctx context.Context, from, to common.Address, amount *big.Int) error
	TransferFrom(ctx context.Context, spender, owner, to common.Address, amount *big.Int) error
	Approve(ctx context.Context, owner, spender common.Address, amount *big.Int) error
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
}

// Clock supplies the logical current time, re-read on every call
type Clock interface {
	Now() time.Time
}

// EventSink receives engine notifications for off-chain observers
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}

// AuthorizationPolicy is the injectable caller-authorization check for
// operations whose callers are restricted by deployment convention only.
// A denial returns an error wrapping domain.ErrUnauthorized.
type AuthorizationPolicy interface {
	CanDelegate(ctx context.Context, caller, account common.Address) error
	CanCreateProposal(ctx context.Context, caller common.Address) error
	CanResolve(ctx context.Context, caller common.Address, proposal *models.Proposal) error
}

// Serializer grants exclusive access to the engine state for the duration
// of one mutating operation. The engine is a single-writer state machine:
// every mutating use case holds this for its whole execution.
type Serializer interface {
	Lock()
	Unlock()
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ProposalSelector handles interactive selection among proposals
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error)
}

// Use case result types

// ProposalListResult contains the result of listing proposals
type ProposalListResult struct {
	Proposals []*models.Proposal
	Summary   ProposalSummary
}

// ProposalSummary provides summary statistics
type ProposalSummary struct {
	Total         uint64
	ByStatus      map[models.ProposalStatus]int
	EscrowBalance *big.Int
}

// VoteTally pairs a voter with their staked amount for the query surface
type VoteTally struct {
	Voter  common.Address
	Choice models.VoteChoice
	Amount *big.Int
}

// RefundEntry records one approve-voter refund performed at resolution
type RefundEntry struct {
	Voter  common.Address
	Amount *big.Int
}

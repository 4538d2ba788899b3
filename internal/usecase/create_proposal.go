package usecase

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// CreateProposal appends a new proposal to the registry
type CreateProposal struct {
	cfg    *config.RuntimeConfig
	repo   GovernanceRepository
	auth   AuthorizationPolicy
	clock  Clock
	events EventSink
	lock   Serializer
}

// NewCreateProposal creates a new create proposal use case
func NewCreateProposal(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	auth AuthorizationPolicy,
	clock Clock,
	events EventSink,
	lock Serializer,
) *CreateProposal {
	return &CreateProposal{
		cfg:    cfg,
		repo:   repo,
		auth:   auth,
		clock:  clock,
		events: events,
		lock:   lock,
	}
}

// CreateProposalParams contains the immutable proposal metadata
type CreateProposalParams struct {
	Creator          common.Address
	Title            string
	Description      string
	DocumentRef      string
	IncentiveRateBps uint64
}

// CreateProposalResult contains the appended proposal
type CreateProposalResult struct {
	Proposal *models.Proposal
}

// Execute validates the metadata, assigns the next index and fixes the
// deadline at now + the configured voting window.
func (c *CreateProposal) Execute(ctx context.Context, params CreateProposalParams) (*CreateProposalResult, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if err := c.auth.CanCreateProposal(ctx, params.Creator); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidProposal)
	}
	if params.IncentiveRateBps > c.cfg.Engine.RateScale {
		return nil, fmt.Errorf("%w: incentive rate %d exceeds scale %d",
			domain.ErrInvalidProposal, params.IncentiveRateBps, c.cfg.Engine.RateScale)
	}

	now := c.clock.Now()
	proposal := &models.Proposal{
		Creator:          params.Creator,
		Title:            params.Title,
		Description:      params.Description,
		DocumentRef:      params.DocumentRef,
		IncentiveRateBps: params.IncentiveRateBps,
		CreatedAt:        now,
		Deadline:         now.Add(c.cfg.Engine.VotingWindow),
		TotalStake:       big.NewInt(0),
	}

	id, err := c.repo.AppendProposal(ctx, proposal)
	if err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}
	proposal.ID = id

	c.events.Emit(ctx, &domain.ProposalCreatedEvent{
		ProposalID:       id,
		Creator:          params.Creator,
		Title:            params.Title,
		Description:      params.Description,
		IncentiveRateBps: params.IncentiveRateBps,
	})

	return &CreateProposalResult{Proposal: proposal}, nil
}

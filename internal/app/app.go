package app

import (
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Selector usecase.ProposalSelector

	// Use cases
	Delegate        *usecase.Delegate
	CreateProposal  *usecase.CreateProposal
	CastVote        *usecase.CastVote
	ResolveProposal *usecase.ResolveProposal
	ClaimIncentive  *usecase.ClaimIncentive
	SettleIncentive *usecase.SettleIncentive
	ApproveStake    *usecase.ApproveStake
	ListProposals   *usecase.ListProposals
	ShowProposal    *usecase.ShowProposal
	ShowVoter       *usecase.ShowVoter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	selector usecase.ProposalSelector,
	delegate *usecase.Delegate,
	createProposal *usecase.CreateProposal,
	castVote *usecase.CastVote,
	resolveProposal *usecase.ResolveProposal,
	claimIncentive *usecase.ClaimIncentive,
	settleIncentive *usecase.SettleIncentive,
	approveStake *usecase.ApproveStake,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	showVoter *usecase.ShowVoter,
) (*App, error) {
	return &App{
		Config:          cfg,
		Selector:        selector,
		Delegate:        delegate,
		CreateProposal:  createProposal,
		CastVote:        castVote,
		ResolveProposal: resolveProposal,
		ClaimIncentive:  claimIncentive,
		SettleIncentive: settleIncentive,
		ApproveStake:    approveStake,
		ListProposals:   listProposals,
		ShowProposal:    showProposal,
		ShowVoter:       showVoter,
	}, nil
}

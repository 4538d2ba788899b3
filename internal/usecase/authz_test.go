package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// denyPolicy rejects every caller
type denyPolicy struct{}

func (denyPolicy) CanDelegate(ctx context.Context, caller, account common.Address) error {
	return domain.ErrUnauthorized
}

func (denyPolicy) CanCreateProposal(ctx context.Context, caller common.Address) error {
	return domain.ErrUnauthorized
}

func (denyPolicy) CanResolve(ctx context.Context, caller common.Address, proposal *models.Proposal) error {
	return domain.ErrUnauthorized
}

func TestAuthorizationDenial(t *testing.T) {
	ctx := context.Background()

	t.Run("delegate", func(t *testing.T) {
		e := newEngine(t, nil)
		delegate := usecase.NewDelegate(e.repo, denyPolicy{}, &sync.Mutex{})

		_, err := delegate.Execute(ctx, usecase.DelegateParams{Caller: creator, Account: alice})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("create proposal", func(t *testing.T) {
		e := newEngine(t, nil)
		propose := usecase.NewCreateProposal(e.cfg, e.repo, denyPolicy{}, e.clock, e.sink, &sync.Mutex{})

		_, err := propose.Execute(ctx, usecase.CreateProposalParams{Creator: creator, Title: "Denied"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("resolve", func(t *testing.T) {
		e := newEngine(t, nil)
		id := e.createProposal(t, 10)
		e.clock.Advance(e.cfg.Engine.VotingWindow + time.Second)

		resolve := usecase.NewResolveProposal(
			e.cfg, e.repo, e.ledger, denyPolicy{}, e.clock, e.sink, usecase.NopProgress{}, &sync.Mutex{})

		_, err := resolve.Execute(ctx, usecase.ResolveProposalParams{Caller: creator, ProposalID: id})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

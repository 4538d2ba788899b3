package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

func TestCreateProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("fixes the deadline at creation", func(t *testing.T) {
		e := newEngine(t, nil)

		result, err := e.propose.Execute(ctx, usecase.CreateProposalParams{
			Creator:          creator,
			Title:            "Fund the audit",
			Description:      "Engage an external auditor",
			IncentiveRateBps: 10,
		})

		require.NoError(t, err)
		p := result.Proposal
		assert.Equal(t, uint64(0), p.ID)
		assert.Equal(t, e.clock.Now(), p.CreatedAt)
		assert.Equal(t, e.clock.Now().Add(e.cfg.Engine.VotingWindow), p.Deadline)
		assert.Equal(t, models.ProposalStatusOpen, p.Status())
		assert.Zero(t, p.TotalStake.Sign())
	})

	t.Run("assigns sequential ids", func(t *testing.T) {
		e := newEngine(t, nil)

		first := e.createProposal(t, 10)
		second := e.createProposal(t, 20)

		assert.Equal(t, uint64(0), first)
		assert.Equal(t, uint64(1), second)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		e := newEngine(t, nil)

		_, err := e.propose.Execute(ctx, usecase.CreateProposalParams{
			Creator: creator,
			Title:   "   ",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidProposal)
	})

	t.Run("rejects a rate above the scale", func(t *testing.T) {
		e := newEngine(t, nil)

		_, err := e.propose.Execute(ctx, usecase.CreateProposalParams{
			Creator:          creator,
			Title:            "Too generous",
			IncentiveRateBps: e.cfg.Engine.RateScale + 1,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidProposal)
	})

	t.Run("emits a creation event", func(t *testing.T) {
		e := newEngine(t, nil)

		e.createProposal(t, 10)

		evts := e.sink.Events()
		require.Len(t, evts, 1)
		assert.Equal(t, "ProposalCreated", evts[0].EventName())
	})
}

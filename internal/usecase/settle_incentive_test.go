package usecase_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/usecase"
)

func TestSettleIncentive(t *testing.T) {
	ctx := context.Background()

	t.Run("pays every epoch at once after the horizon", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := acceptedProposal(t, e, 10)

		cap := e.cfg.Engine.MaxClaimEpochs
		e.clock.Advance(time.Duration(cap) * e.cfg.Engine.EpochLength)

		result, err := e.settle.Execute(ctx, usecase.SettleIncentiveParams{
			Voter:      alice,
			ProposalID: id,
		})
		require.NoError(t, err)

		assert.Equal(t, cap, result.Epochs)
		assert.Equal(t, cap, result.Record.ClaimedEpochs)
		assert.True(t, result.Record.Settled)

		// 10 bps of 100 tokens for all 7 epochs
		perEpoch := new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil)
		expected := new(big.Int).Mul(perEpoch, new(big.Int).SetUint64(cap))
		assert.Equal(t, expected, result.Payment)
	})

	t.Run("cannot settle before the horizon", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := acceptedProposal(t, e, 10)

		e.clock.Advance(time.Duration(e.cfg.Engine.MaxClaimEpochs)*e.cfg.Engine.EpochLength - time.Hour)

		_, err := e.settle.Execute(ctx, usecase.SettleIncentiveParams{
			Voter:      alice,
			ProposalID: id,
		})
		assert.ErrorIs(t, err, domain.ErrClaimWindowNotReached)
	})

	t.Run("pays only the unclaimed remainder", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := acceptedProposal(t, e, 10)

		e.clock.Advance(2 * e.cfg.Engine.EpochLength)
		_, err := e.claim.Execute(ctx, usecase.ClaimIncentiveParams{Voter: alice, ProposalID: id})
		require.NoError(t, err)

		e.clock.Advance(time.Duration(e.cfg.Engine.MaxClaimEpochs) * e.cfg.Engine.EpochLength)

		result, err := e.settle.Execute(ctx, usecase.SettleIncentiveParams{
			Voter:      alice,
			ProposalID: id,
		})
		require.NoError(t, err)
		assert.Equal(t, e.cfg.Engine.MaxClaimEpochs-2, result.Epochs)
	})

	t.Run("settles exactly once", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := acceptedProposal(t, e, 10)

		e.clock.Advance(time.Duration(e.cfg.Engine.MaxClaimEpochs) * e.cfg.Engine.EpochLength)

		_, err := e.settle.Execute(ctx, usecase.SettleIncentiveParams{Voter: alice, ProposalID: id})
		require.NoError(t, err)

		_, err = e.settle.Execute(ctx, usecase.SettleIncentiveParams{Voter: alice, ProposalID: id})
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

		_, err = e.claim.Execute(ctx, usecase.ClaimIncentiveParams{Voter: alice, ProposalID: id})
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	})

	t.Run("reject voters cannot settle", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := acceptedProposal(t, e, 10)

		e.clock.Advance(time.Duration(e.cfg.Engine.MaxClaimEpochs) * e.cfg.Engine.EpochLength)

		_, err := e.settle.Execute(ctx, usecase.SettleIncentiveParams{Voter: bob, ProposalID: id})
		assert.ErrorIs(t, err, domain.ErrMustHaveVotedApprove)
	})
}

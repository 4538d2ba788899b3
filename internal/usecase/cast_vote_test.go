package usecase_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

func TestCastVote(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the stake into escrow", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		e.castVote(t, alice, id, models.VoteApprove, tokens(100))

		balance, err := e.ledger.BalanceOf(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, tokens(900), balance)

		escrow, err := e.ledger.BalanceOf(ctx, e.cfg.Engine.EscrowAccount)
		require.NoError(t, err)
		assert.Equal(t, tokens(100), escrow)
	})

	t.Run("updates tally, record and voter state", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 2)

		_, err := e.approve.Execute(ctx, usecase.ApproveStakeParams{Owner: alice, Amount: tokens(100)})
		require.NoError(t, err)

		result, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(100),
		})
		require.NoError(t, err)

		assert.Equal(t, uint64(1), result.Proposal.ApproveCount)
		assert.Equal(t, uint64(0), result.Proposal.RejectCount)
		assert.Equal(t, tokens(100), result.Proposal.TotalStake)
		assert.Equal(t, models.VoteApprove, result.Record.Choice)
		assert.Equal(t, uint64(1), result.Voter.VoteRight)
		assert.True(t, result.Voter.HasVoted(id))
	})

	t.Run("emits the vote success message", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		e.castVote(t, alice, id, models.VoteReject, tokens(50))

		evts := e.sink.Events()
		last := evts[len(evts)-1]
		vote, ok := last.(*domain.VoteCastEvent)
		require.True(t, ok)
		assert.Equal(t, domain.VoteSuccessMessage, vote.Message)
		assert.Equal(t, "Reject", vote.ChoiceLabel)
	})

	t.Run("requires a positive amount", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     big.NewInt(0),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects an out of range choice before any mutation", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		_, err := e.approve.Execute(ctx, usecase.ApproveStakeParams{Owner: alice, Amount: tokens(100)})
		require.NoError(t, err)

		_, err = e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteChoice(5),
			Amount:     tokens(100),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidChoice)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))

		// no stake pulled, no tally or right consumed
		balance, err := e.ledger.BalanceOf(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, tokens(1000), balance)

		proposal, err := e.repo.GetProposal(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, proposal.ApproveCount)
		assert.Zero(t, proposal.RejectCount)
		assert.Zero(t, proposal.TotalStake.Sign())

		voter, err := e.repo.GetVoter(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), voter.VoteRight)
	})

	t.Run("requires a voting right", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrNoVotingRight)
	})

	t.Run("a spent right does not allow a second vote elsewhere", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		first := e.createProposal(t, 10)
		second := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		e.castVote(t, alice, first, models.VoteApprove, tokens(10))

		_, err := e.approve.Execute(ctx, usecase.ApproveStakeParams{Owner: alice, Amount: tokens(10)})
		require.NoError(t, err)
		_, err = e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: second,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrNoVotingRight)
	})

	t.Run("rejects a double vote on the same proposal", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 2)

		e.castVote(t, alice, id, models.VoteApprove, tokens(10))

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteReject,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	})

	t.Run("rejects votes after the deadline", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		e.clock.Advance(e.cfg.Engine.VotingWindow + time.Second)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
	})

	t.Run("rejects votes at the exact deadline", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		e.clock.Advance(e.cfg.Engine.VotingWindow)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
	})

	t.Run("fails without an allowance and leaves state untouched", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)

		voter, err := e.voter.Run(ctx, usecase.ShowVoterParams{Account: alice})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), voter.Voter.VoteRight)

		proposal, err := e.repo.GetProposal(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), proposal.TotalVotes())
	})

	t.Run("fails when the balance cannot cover the stake", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		id := e.createProposal(t, 10)
		e.grantRights(t, alice, 1)

		_, err := e.approve.Execute(ctx, usecase.ApproveStakeParams{Owner: alice, Amount: tokens(5000)})
		require.NoError(t, err)

		_, err = e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: id,
			Choice:     models.VoteApprove,
			Amount:     tokens(5000),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		e := newEngine(t, defaultGenesis())
		e.grantRights(t, alice, 1)

		_, err := e.vote.Execute(ctx, usecase.CastVoteParams{
			Voter:      alice,
			ProposalID: 42,
			Choice:     models.VoteApprove,
			Amount:     tokens(10),
		})
		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	})
}

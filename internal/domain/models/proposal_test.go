package models_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/domain/models"
)

func TestProposalStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("open until resolved", func(t *testing.T) {
		p := &models.Proposal{Deadline: now.Add(time.Hour)}
		assert.Equal(t, models.ProposalStatusOpen, p.Status())
		assert.True(t, p.AcceptsVotes(now))
	})

	t.Run("deadline closes voting but not the status", func(t *testing.T) {
		p := &models.Proposal{Deadline: now}
		assert.False(t, p.AcceptsVotes(now))
		assert.False(t, p.AcceptsVotes(now.Add(time.Hour)))
		assert.Equal(t, models.ProposalStatusOpen, p.Status())
	})

	t.Run("resolution fixes the status", func(t *testing.T) {
		accepted := &models.Proposal{Resolved: true, Accepted: true}
		assert.Equal(t, models.ProposalStatusAccepted, accepted.Status())
		assert.False(t, accepted.AcceptsVotes(now.Add(-time.Hour)))

		rejected := &models.Proposal{Resolved: true}
		assert.Equal(t, models.ProposalStatusRejected, rejected.Status())
	})
}

func TestVoteChoice(t *testing.T) {
	t.Run("parses labels and wire values", func(t *testing.T) {
		for _, s := range []string{"approve", "Approve", "0"} {
			choice, err := models.ParseVoteChoice(s)
			require.NoError(t, err)
			assert.Equal(t, models.VoteApprove, choice)
		}
		for _, s := range []string{"reject", "Reject", "1"} {
			choice, err := models.ParseVoteChoice(s)
			require.NoError(t, err)
			assert.Equal(t, models.VoteReject, choice)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := models.ParseVoteChoice("abstain")
		assert.Error(t, err)
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Approve", models.VoteApprove.Label())
		assert.Equal(t, "Reject", models.VoteReject.Label())
	})

	t.Run("only the two variants are valid", func(t *testing.T) {
		assert.True(t, models.VoteApprove.Valid())
		assert.True(t, models.VoteReject.Valid())
		assert.False(t, models.VoteChoice(2).Valid())
		assert.False(t, models.VoteChoice(255).Valid())
	})
}

func TestVoterHasVoted(t *testing.T) {
	voter := &models.Voter{Proposals: []uint64{0, 2}}
	assert.True(t, voter.HasVoted(0))
	assert.False(t, voter.HasVoted(1))
	assert.True(t, voter.HasVoted(2))
}

func TestProposalTotalVotes(t *testing.T) {
	p := &models.Proposal{ApproveCount: 3, RejectCount: 2, TotalStake: big.NewInt(0)}
	assert.Equal(t, uint64(5), p.TotalVotes())
}

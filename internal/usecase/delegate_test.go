package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/usecase"
)

func TestDelegate(t *testing.T) {
	ctx := context.Background()

	t.Run("grants a first voting right", func(t *testing.T) {
		e := newEngine(t, nil)

		result, err := e.delegate.Execute(ctx, usecase.DelegateParams{
			Caller:  creator,
			Account: alice,
		})

		require.NoError(t, err)
		assert.Equal(t, alice, result.Voter.Account)
		assert.Equal(t, uint64(1), result.Voter.VoteRight)
	})

	t.Run("repeated delegation accumulates", func(t *testing.T) {
		e := newEngine(t, nil)

		e.grantRights(t, alice, 3)

		result, err := e.voter.Run(ctx, usecase.ShowVoterParams{Account: alice})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), result.Voter.VoteRight)
	})

	t.Run("unknown account has zero rights", func(t *testing.T) {
		e := newEngine(t, nil)

		result, err := e.voter.Run(ctx, usecase.ShowVoterParams{Account: bob})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), result.Voter.VoteRight)
		assert.Empty(t, result.Records)
	})

	t.Run("repository misses surface as voter not found", func(t *testing.T) {
		e := newEngine(t, nil)

		_, err := e.repo.GetVoter(ctx, bob)
		assert.ErrorIs(t, err, domain.ErrVoterNotFound)
	})
}

package domain_test

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flexdao/flexgov/internal/domain"
)

func testParams() domain.IncentiveParams {
	return domain.IncentiveParams{
		EpochLength:    720 * time.Hour,
		RateScale:      10000,
		MaxClaimEpochs: 7,
	}
}

func TestElapsedEpochs(t *testing.T) {
	p := testParams()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    uint64
	}{
		{0, 0},
		{-time.Hour, 0},
		{p.EpochLength - time.Second, 0},
		{p.EpochLength, 1},
		{p.EpochLength + time.Second, 1},
		{2*p.EpochLength - time.Second, 1},
		{3 * p.EpochLength, 3},
		{100 * p.EpochLength, 100},
	}

	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.ElapsedEpochs(from, from.Add(tt.elapsed)))
		})
	}
}

func TestPayment(t *testing.T) {
	p := testParams()

	t.Run("basis points of an 18-decimal stake", func(t *testing.T) {
		stake, _ := new(big.Int).SetString("100000000000000000000", 10) // 100 tokens
		payment := p.Payment(10, stake, 1)
		assert.Equal(t, "100000000000000000", payment.String()) // 0.1 tokens
	})

	t.Run("scales linearly with epochs", func(t *testing.T) {
		stake := big.NewInt(1000000)
		one := p.Payment(50, stake, 1)
		seven := p.Payment(50, stake, 7)
		assert.Equal(t, new(big.Int).Mul(one, big.NewInt(7)), seven)
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		// 1 bps of 9999 truncates to 0
		assert.Equal(t, int64(0), p.Payment(1, big.NewInt(9999), 1).Int64())
		assert.Equal(t, int64(1), p.Payment(1, big.NewInt(10000), 1).Int64())
	})

	t.Run("zero epochs pay nothing", func(t *testing.T) {
		assert.Zero(t, p.Payment(10, big.NewInt(1000000), 0).Sign())
	})
}

func TestSettlementHorizon(t *testing.T) {
	p := testParams()
	resolvedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, resolvedAt.Add(7*720*time.Hour), p.SettlementHorizon(resolvedAt))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want domain.ErrorKind
	}{
		{domain.ErrInvalidAmount, domain.KindValidation},
		{domain.ErrProposalNotFound, domain.KindValidation},
		{fmt.Errorf("wrapped: %w", domain.ErrAlreadyVoted), domain.KindState},
		{domain.ErrNoVotingRight, domain.KindState},
		{domain.ErrDeadlinePassed, domain.KindTiming},
		{domain.ErrClaimWindowNotReached, domain.KindTiming},
		{domain.ErrInsufficientBalance, domain.KindResource},
		{fmt.Errorf("disk on fire"), domain.KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.KindOf(tt.err), "kind of %v", tt.err)
	}
}

package domain

import (
	"math/big"
	"time"
)

// IncentiveParams are the fixed engine constants driving payout accrual
type IncentiveParams struct {
	// EpochLength is the accrual epoch (30 days in production)
	EpochLength time.Duration

	// RateScale is the denominator for basis-point rates (10000)
	RateScale uint64

	// MaxClaimEpochs caps the total claimable epochs per vote record
	MaxClaimEpochs uint64
}

// ElapsedEpochs returns the number of whole epochs between from and now
func (p IncentiveParams) ElapsedEpochs(from, now time.Time) uint64 {
	if !now.After(from) {
		return 0
	}
	return uint64(now.Sub(from) / p.EpochLength)
}

// Payment computes rate × stake × epochs / scale with integer truncation
func (p IncentiveParams) Payment(rateBps uint64, stake *big.Int, epochs uint64) *big.Int {
	payment := new(big.Int).SetUint64(rateBps)
	payment.Mul(payment, stake)
	payment.Mul(payment, new(big.Int).SetUint64(epochs))
	return payment.Quo(payment, new(big.Int).SetUint64(p.RateScale))
}

// SettlementHorizon is the wall-clock moment from which the terminal
// settlement path becomes available for a proposal resolved at the
// given time.
func (p IncentiveParams) SettlementHorizon(resolvedAt time.Time) time.Time {
	return resolvedAt.Add(time.Duration(p.MaxClaimEpochs) * p.EpochLength)
}

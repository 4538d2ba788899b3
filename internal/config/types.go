package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Caller is the account acting in mutating commands (--from flag
	// or FLEXGOV_FROM)
	Caller common.Address

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool

	// Resolved engine parameters from flexgov.toml
	Engine EngineParams

	// Genesis balances for the embedded token ledger, keyed by hex
	// address, decimal amounts
	Genesis map[string]string
}

// EngineParams holds the engine's fixed timing and payout constants
type EngineParams struct {
	VotingWindow   time.Duration
	EpochLength    time.Duration
	RateScale      uint64
	MaxClaimEpochs uint64

	// EscrowAccount is the ledger account the engine holds stakes under
	EscrowAccount common.Address
}

// Incentive exposes the payout constants in the domain's shape
func (p EngineParams) Incentive() domain.IncentiveParams {
	return domain.IncentiveParams{
		EpochLength:    p.EpochLength,
		RateScale:      p.RateScale,
		MaxClaimEpochs: p.MaxClaimEpochs,
	}
}

// Defaults matching the production deployment: 5-day voting window,
// 30-day epochs, basis-point scale, 7-epoch claim horizon.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		VotingWindow:   120 * time.Hour,
		EpochLength:    720 * time.Hour,
		RateScale:      10000,
		MaxClaimEpochs: 7,
		EscrowAccount:  common.HexToAddress("0x00000000000000000000000000000000F1e3C0e0"),
	}
}

// FlexgovConfig represents the full flexgov.toml configuration
type FlexgovConfig struct {
	Engine  EngineFileConfig  `toml:"engine"`
	Genesis map[string]string `toml:"genesis,omitempty"`
}

// EngineFileConfig is the flexgov.toml shape of EngineParams
type EngineFileConfig struct {
	VotingWindow   Duration `toml:"voting_window,omitempty"`
	EpochLength    Duration `toml:"epoch_length,omitempty"`
	RateScale      uint64   `toml:"rate_scale,omitempty"`
	MaxClaimEpochs uint64   `toml:"max_claim_epochs,omitempty"`
	EscrowAccount  string   `toml:"escrow_account,omitempty"`
}

// Duration wraps time.Duration for TOML decoding
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

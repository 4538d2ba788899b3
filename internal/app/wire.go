//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/flexdao/flexgov/internal/adapters"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/logging"
	"github.com/flexdao/flexgov/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDelegate,
		usecase.NewCreateProposal,
		usecase.NewCastVote,
		usecase.NewResolveProposal,
		usecase.NewClaimIncentive,
		usecase.NewSettleIncentive,
		usecase.NewApproveStake,
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewShowVoter,

		// App
		NewApp,
	)
	return nil, nil
}

package adapters

import (
	"sync"

	"github.com/google/wire"

	"github.com/flexdao/flexgov/internal/adapters/authz"
	"github.com/flexdao/flexgov/internal/adapters/clock"
	"github.com/flexdao/flexgov/internal/adapters/events"
	"github.com/flexdao/flexgov/internal/adapters/interactive"
	"github.com/flexdao/flexgov/internal/adapters/ledger"
	"github.com/flexdao/flexgov/internal/adapters/repository/state"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/usecase"
)

// ProvideRepository provides the file-backed governance state repository
func ProvideRepository(cfg *config.RuntimeConfig) (*state.FileRepository, error) {
	return state.NewFileRepository(cfg.DataDir)
}

// ProvideLedger provides the embedded token ledger
func ProvideLedger(cfg *config.RuntimeConfig) (*ledger.Embedded, error) {
	return ledger.NewEmbedded(cfg.DataDir, cfg.Genesis)
}

// ProvideSerializer provides the single-writer lock shared by every
// mutating use case
func ProvideSerializer() usecase.Serializer {
	return &sync.Mutex{}
}

// StateSet provides the engine's persistence implementations
var StateSet = wire.NewSet(
	ProvideRepository,
	wire.Bind(new(usecase.GovernanceRepository), new(*state.FileRepository)),

	ProvideLedger,
	wire.Bind(new(usecase.TokenLedger), new(*ledger.Embedded)),
)

// PolicySet provides clock, authorization and serialization
var PolicySet = wire.NewSet(
	clock.NewSystem,
	wire.Bind(new(usecase.Clock), new(*clock.System)),

	authz.NewOpenPolicy,
	wire.Bind(new(usecase.AuthorizationPolicy), new(*authz.OpenPolicy)),

	ProvideSerializer,
)

// EventSet provides notification delivery
var EventSet = wire.NewSet(
	events.NewLogSink,
	wire.Bind(new(usecase.EventSink), new(*events.LogSink)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters bundles every adapter provider
var AllAdapters = wire.NewSet(
	StateSet,
	PolicySet,
	EventSet,
	InteractiveSet,
)

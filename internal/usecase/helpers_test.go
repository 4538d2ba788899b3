package usecase_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/flexdao/flexgov/internal/adapters/authz"
	"github.com/flexdao/flexgov/internal/adapters/events"
	"github.com/flexdao/flexgov/internal/adapters/ledger"
	"github.com/flexdao/flexgov/internal/adapters/repository/state"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

var (
	alice   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	carol   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	dave    = common.HexToAddress("0x4444444444444444444444444444444444444444")
	erin    = common.HexToAddress("0x5555555555555555555555555555555555555555")
	creator = common.HexToAddress("0x9999999999999999999999999999999999999999")
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// engine wires every use case over real file-backed state in a tempdir
type engine struct {
	cfg    *config.RuntimeConfig
	repo   *state.FileRepository
	ledger *ledger.Embedded
	clock  *fakeClock
	sink   *events.CaptureSink

	delegate *usecase.Delegate
	propose  *usecase.CreateProposal
	vote     *usecase.CastVote
	resolve  *usecase.ResolveProposal
	claim    *usecase.ClaimIncentive
	settle   *usecase.SettleIncentive
	approve  *usecase.ApproveStake
	list     *usecase.ListProposals
	show     *usecase.ShowProposal
	voter    *usecase.ShowVoter
}

func newEngine(t *testing.T, genesis map[string]string) *engine {
	t.Helper()

	dataDir := t.TempDir()

	cfg := &config.RuntimeConfig{
		ProjectRoot: dataDir,
		DataDir:     dataDir,
		Engine:      config.DefaultEngineParams(),
		Genesis:     genesis,
	}

	repo, err := state.NewFileRepository(dataDir)
	require.NoError(t, err)

	tokens, err := ledger.NewEmbedded(dataDir, genesis)
	require.NoError(t, err)

	clock := newFakeClock()
	sink := events.NewCaptureSink()
	auth := authz.NewOpenPolicy()
	lock := &sync.Mutex{}
	progress := usecase.NopProgress{}

	return &engine{
		cfg:    cfg,
		repo:   repo,
		ledger: tokens,
		clock:  clock,
		sink:   sink,

		delegate: usecase.NewDelegate(repo, auth, lock),
		propose:  usecase.NewCreateProposal(cfg, repo, auth, clock, sink, lock),
		vote:     usecase.NewCastVote(cfg, repo, tokens, clock, sink, lock),
		resolve:  usecase.NewResolveProposal(cfg, repo, tokens, auth, clock, sink, progress, lock),
		claim:    usecase.NewClaimIncentive(cfg, repo, tokens, clock, sink, lock),
		settle:   usecase.NewSettleIncentive(cfg, repo, tokens, clock, sink, lock),
		approve:  usecase.NewApproveStake(cfg, tokens),
		list:     usecase.NewListProposals(cfg, repo, tokens),
		show:     usecase.NewShowProposal(repo),
		voter:    usecase.NewShowVoter(cfg, repo, tokens),
	}
}

// grantRights delegates n voting rights to the account
func (e *engine) grantRights(t *testing.T, account common.Address, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := e.delegate.Execute(context.Background(), usecase.DelegateParams{
			Caller:  creator,
			Account: account,
		})
		require.NoError(t, err)
	}
}

// createProposal opens a proposal with the given incentive rate
func (e *engine) createProposal(t *testing.T, rateBps uint64) uint64 {
	t.Helper()
	result, err := e.propose.Execute(context.Background(), usecase.CreateProposalParams{
		Creator:          creator,
		Title:            "Fund the audit",
		IncentiveRateBps: rateBps,
	})
	require.NoError(t, err)
	return result.Proposal.ID
}

// castVote approves the stake and votes in one step
func (e *engine) castVote(t *testing.T, voter common.Address, proposalID uint64, choice models.VoteChoice, amount *big.Int) {
	t.Helper()
	_, err := e.approve.Execute(context.Background(), usecase.ApproveStakeParams{
		Owner:  voter,
		Amount: amount,
	})
	require.NoError(t, err)

	_, err = e.vote.Execute(context.Background(), usecase.CastVoteParams{
		Voter:      voter,
		ProposalID: proposalID,
		Choice:     choice,
		Amount:     amount,
	})
	require.NoError(t, err)
}

// tokens converts whole tokens to base units at 18 decimals
func tokens(n int64) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return new(big.Int).Mul(big.NewInt(n), scale)
}

// defaultGenesis funds the five test voters with 1000 tokens each
func defaultGenesis() map[string]string {
	balance := tokens(1000).String()
	return map[string]string{
		alice.Hex(): balance,
		bob.Hex():   balance,
		carol.Hex(): balance,
		dave.Hex():  balance,
		erin.Hex():  balance,
	}
}

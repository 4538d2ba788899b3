package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/adapters/progress"
	"github.com/flexdao/flexgov/internal/app"
	"github.com/flexdao/flexgov/internal/config"
	"github.com/flexdao/flexgov/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flexgov",
		Short: "Token-weighted governance and incentive escrow engine",
		Long: `Flexgov runs a token-weighted governance engine: delegated voting
rights, stake-escrowed proposals with deadline-gated resolution, and
multi-epoch incentive payouts for voters on accepted proposals.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for commands that work without a project
			switch cmd.Name() {
			case "version", "help", "completion", "init":
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			sink := newProgressSink(v.GetBool("non_interactive"))

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("from", "f", "", "Account acting as the caller (hex address)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "incentive",
		Title: "Incentive Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "Query Commands",
	})

	// Governance commands
	delegateCmd := NewDelegateCmd()
	delegateCmd.GroupID = "governance"
	rootCmd.AddCommand(delegateCmd)

	proposeCmd := NewProposeCmd()
	proposeCmd.GroupID = "governance"
	rootCmd.AddCommand(proposeCmd)

	voteCmd := NewVoteCmd()
	voteCmd.GroupID = "governance"
	rootCmd.AddCommand(voteCmd)

	resolveCmd := NewResolveCmd()
	resolveCmd.GroupID = "governance"
	rootCmd.AddCommand(resolveCmd)

	// Incentive commands
	approveCmd := NewApproveCmd()
	approveCmd.GroupID = "incentive"
	rootCmd.AddCommand(approveCmd)

	claimCmd := NewClaimCmd()
	claimCmd.GroupID = "incentive"
	rootCmd.AddCommand(claimCmd)

	settleCmd := NewSettleCmd()
	settleCmd.GroupID = "incentive"
	rootCmd.AddCommand(settleCmd)

	// Query commands
	listCmd := NewListCmd()
	listCmd.GroupID = "query"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "query"
	rootCmd.AddCommand(showCmd)

	voterCmd := NewVoterCmd()
	voterCmd.GroupID = "query"
	rootCmd.AddCommand(voterCmd)

	watchCmd := NewWatchCmd()
	watchCmd.GroupID = "query"
	rootCmd.AddCommand(watchCmd)

	// Project setup
	rootCmd.AddCommand(NewInitCmd())

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// requireCaller returns the configured caller account or an error when
// no --from account was provided
func requireCaller(a *app.App) (common.Address, error) {
	if a.Config.Caller == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no caller account: set --from or FLEXGOV_FROM")
	}
	return a.Config.Caller, nil
}

// parseAccount validates and converts a hex account argument
func parseAccount(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid account %q", s)
	}
	return common.HexToAddress(s), nil
}

// parseAmount converts a decimal token amount argument
func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func newProgressSink(nonInteractive bool) usecase.ProgressSink {
	if nonInteractive {
		return usecase.NopProgress{}
	}
	return progress.NewSpinnerSink()
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/config"
)

const initialConfig = `# flexgov project configuration

[engine]
# Proposals accept votes for this long after creation.
voting_window = "120h"

# One incentive epoch. Payouts accrue in whole epochs.
epoch_length = "720h"

# Incentive rates are expressed in units of 1/rate_scale of stake.
rate_scale = 10000

# Lifetime epoch cap per vote record.
max_claim_epochs = 7

# Account holding staked and escrowed tokens.
# escrow_account = "0x00000000000000000000000000000000F1e3C0e0"

# Initial token balances, applied once when the ledger is created.
[genesis]
# "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266" = "1000000000000000000000"
`

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a flexgov project in the current directory",
		Long: `Initialize a flexgov project by writing a flexgov.toml with the
default engine parameters and creating the state directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}

	configPath := filepath.Join(root, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", config.ConfigFileName)
	}

	if err := os.WriteFile(configPath, []byte(initialConfig), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
	}

	if err := os.MkdirAll(filepath.Join(root, ".flexgov"), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Initialized flexgov project"))
	fmt.Fprintf(cmd.OutOrStdout(), "  %s written with default engine parameters\n", config.ConfigFileName)
	fmt.Fprintln(cmd.OutOrStdout(), "  .flexgov/ created for engine state")
	return nil
}

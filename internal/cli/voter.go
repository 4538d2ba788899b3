package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewVoterCmd creates the voter command
func NewVoterCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "voter [account]",
		Short: "Show an account's voting rights, votes and token position",
		Long: `Show an account's remaining voting rights, its vote records and
its token balance and escrow allowance.

Without an argument the configured --from account is shown. An account
that never received a delegation is reported with zero rights.`,
		Example: `  flexgov voter 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
  flexgov voter --from 0xf39F...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			account := app.Config.Caller
			if len(args) > 0 {
				var err error
				account, err = parseAccount(args[0])
				if err != nil {
					return err
				}
			} else if _, err := requireCaller(app); err != nil {
				return err
			}

			result, err := app.ShowVoter.Run(cmd.Context(), usecase.ShowVoterParams{
				Account: account,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				output = "json"
			}
			if done, err := renderStructured(cmd.OutOrStdout(), output, result); done || err != nil {
				return err
			}

			renderer := render.NewVoterRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml)")

	return cmd
}

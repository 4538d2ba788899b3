package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewApproveCmd creates the approve command
func NewApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <amount>",
		Short: "Grant the escrow account an allowance over your balance",
		Long: `Grant the engine's escrow account an allowance over the caller's
token balance. Votes pull their stake under this allowance; an amount
of 0 revokes it.`,
		Example: `  # Allow up to 1000 tokens of stake
  flexgov approve 1000 --from 0xf39F...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			caller, err := requireCaller(app)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			result, err := app.ApproveStake.Execute(cmd.Context(), usecase.ApproveStakeParams{
				Owner:  caller,
				Amount: amount,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewAllowanceRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}

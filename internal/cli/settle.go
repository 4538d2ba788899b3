package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewSettleCmd creates the settle command
func NewSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle [proposal]",
		Short: "Settle a vote record's remaining incentive in one payment",
		Long: `Pay out every unclaimed epoch on a vote record at once and close
it permanently.

Settlement is only available after the full incentive horizon has
elapsed since resolution. A settled record accepts no further claims.`,
		Example: `  # Settle proposal 0
  flexgov settle 0 --from 0xf39F...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			caller, err := requireCaller(app)
			if err != nil {
				return err
			}

			proposal, err := resolveProposalArg(cmd, app, args, "Select a proposal to settle",
				domain.ProposalFilter{Status: models.ProposalStatusAccepted})
			if err != nil {
				return err
			}

			result, err := app.SettleIncentive.Execute(cmd.Context(), usecase.SettleIncentiveParams{
				Voter:      caller,
				ProposalID: proposal.ID,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewClaimRenderer(cmd.OutOrStdout())
			return renderer.RenderSettlement(result.Epochs, result.Payment, result.Record)
		},
	}

	return cmd
}

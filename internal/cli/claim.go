package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewClaimCmd creates the claim command
func NewClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim [proposal]",
		Short: "Claim accrued incentive epochs on an accepted proposal",
		Long: `Claim the incentive accrued on an accepted proposal the caller
voted to approve.

Whole epochs elapsed since resolution (or since the previous claim)
are paid at the proposal's rate, capped at the configured lifetime
maximum per vote record.`,
		Example: `  # Claim on proposal 0
  flexgov claim 0 --from 0xf39F...`,
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

			proposal, err := resolveProposalArg(cmd, app, args, "Select a proposal to claim on",
				domain.ProposalFilter{Status: models.ProposalStatusAccepted})
			if err != nil {
				return err
			}

			result, err := app.ClaimIncentive.Execute(cmd.Context(), usecase.ClaimIncentiveParams{
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
			return renderer.RenderClaim(result.Epochs, result.Payment, result.Record)
		},
	}

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [proposal]",
		Short: "Resolve a proposal whose deadline has passed",
		Long: `Resolve a proposal once its voting deadline has passed.

A proposal is accepted when approvals strictly outnumber rejections;
a tie rejects. On rejection every approving voter's stake is refunded
out of escrow. Resolution happens exactly once per proposal.`,
		Example: `  # Resolve proposal 0
  flexgov resolve 0 --from 0xf39F...`,
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

			proposal, err := resolveProposalArg(cmd, app, args, "Select a proposal to resolve",
				domain.ProposalFilter{Status: models.ProposalStatusOpen})
			if err != nil {
				return err
			}

			result, err := app.ResolveProposal.Execute(cmd.Context(), usecase.ResolveProposalParams{
				Caller:     caller,
				ProposalID: proposal.ID,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewResolutionRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}

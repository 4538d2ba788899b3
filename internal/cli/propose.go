package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewProposeCmd creates the propose command
func NewProposeCmd() *cobra.Command {
	var (
		description string
		documentRef string
		rateBps     uint64
	)

	cmd := &cobra.Command{
		Use:   "propose <title>",
		Short: "Create a proposal open for voting",
		Long: `Create a proposal. The voting deadline is fixed at creation time
as now plus the configured voting window, and the incentive rate is
immutable afterwards.`,
		Example: `  # Create a proposal with a 0.1% per-epoch incentive rate
  flexgov propose "Fund the audit" --rate 10 --from 0xf39F...

  # Attach an off-chain document
  flexgov propose "Treasury diversification" --doc ipfs://Qm... --rate 25 --from 0xf39F...`,
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

			result, err := app.CreateProposal.Execute(cmd.Context(), usecase.CreateProposalParams{
				Creator:          caller,
				Title:            args[0],
				Description:      description,
				DocumentRef:      documentRef,
				IncentiveRateBps: rateBps,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewProposalCreatedRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Proposal description")
	cmd.Flags().StringVar(&documentRef, "doc", "", "Reference to an off-chain document (URL, IPFS CID)")
	cmd.Flags().Uint64Var(&rateBps, "rate", 0, "Incentive rate per epoch in basis points of stake")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var (
		choice string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "vote [proposal]",
		Short: "Cast a staked vote on an open proposal",
		Long: `Cast a vote on a proposal, staking tokens into escrow.

The stake is pulled from the voter's balance under a prior allowance
grant (see "flexgov approve"). One vote per voter per proposal; each
vote consumes one voting right.

Without a proposal argument an interactive picker lists the open
proposals.`,
		Example: `  # Approve proposal 0 with a 100 token stake
  flexgov vote 0 --choice approve --amount 100 --from 0xf39F...

  # Reject by title fragment
  flexgov vote "audit" --choice reject --amount 50 --from 0xf39F...`,
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

			voteChoice, err := models.ParseVoteChoice(choice)
			if err != nil {
				return err
			}

			stake, err := parseAmount(amount)
			if err != nil {
				return err
			}

			proposal, err := resolveProposalArg(cmd, app, args, "Select a proposal to vote on",
				domain.ProposalFilter{Status: models.ProposalStatusOpen})
			if err != nil {
				return err
			}

			result, err := app.CastVote.Execute(cmd.Context(), usecase.CastVoteParams{
				Voter:      caller,
				ProposalID: proposal.ID,
				Choice:     voteChoice,
				Amount:     stake,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewVoteRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&choice, "choice", "c", "", "Vote choice (approve or reject)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Stake amount in base token units")
	_ = cmd.MarkFlagRequired("choice")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

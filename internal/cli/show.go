package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <proposal>",
		Short: "Show a proposal with its votes",
		Long: `Show detailed information about a proposal, including its tally
and every vote in voting order.

You can specify proposals using:
- Proposal id: "0"
- Title fragment: "audit"

A title fragment that matches several proposals is an error listing
the matching ids.`,
		Example: `  flexgov show 0
  flexgov show "audit"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{
				Reference: args[0],
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

			renderer := render.NewProposalRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml)")

	return cmd
}

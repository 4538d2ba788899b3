package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		status  string
		creator string
		output  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals",
		Long: `List proposals in creation order.

The list can be filtered by lifecycle status or creator account.`,
		Example: `  # List all proposals
  flexgov list

  # List open proposals only
  flexgov list --status open

  # List proposals by creator
  flexgov list --creator 0xf39F...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var proposalStatus models.ProposalStatus
			if status != "" {
				switch status {
				case "open":
					proposalStatus = models.ProposalStatusOpen
				case "accepted":
					proposalStatus = models.ProposalStatusAccepted
				case "rejected":
					proposalStatus = models.ProposalStatusRejected
				default:
					return fmt.Errorf("invalid status: %s (valid: open, accepted, rejected)", status)
				}
			}

			params := usecase.ListProposalsParams{
				Filter: domain.ProposalFilter{
					Status:  proposalStatus,
					Creator: creator,
				},
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				output = "json"
			}
			if done, err := renderStructured(cmd.OutOrStdout(), output, result); done || err != nil {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (open, accepted, rejected)")
	cmd.Flags().StringVar(&creator, "creator", "", "Filter by creator account")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml)")

	return cmd
}

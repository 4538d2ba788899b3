package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/app"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// resolveProposalArg turns an optional positional reference into a
// proposal. With an argument the reference is matched by id or title;
// without one the user picks interactively among proposals matching the
// filter.
func resolveProposalArg(cmd *cobra.Command, a *app.App, args []string, prompt string, filter domain.ProposalFilter) (*models.Proposal, error) {
	if len(args) > 0 {
		result, err := a.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{Reference: args[0]})
		if err != nil {
			return nil, err
		}
		return result.Proposal, nil
	}

	list, err := a.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{Filter: filter})
	if err != nil {
		return nil, err
	}
	if len(list.Proposals) == 0 {
		return nil, fmt.Errorf("no matching proposals: %w", domain.ErrProposalNotFound)
	}

	return a.Selector.SelectProposal(cmd.Context(), list.Proposals, prompt)
}

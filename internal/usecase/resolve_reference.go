package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/samber/lo"
)

// resolveProposalRef resolves a textual reference to a single proposal: a
// decimal id matches directly, anything else is treated as a title
// fragment. More than one title match surfaces as AmbiguousProposalErr so
// the CLI can fall back to interactive selection.
func resolveProposalRef(ctx context.Context, repo GovernanceRepository, ref string) (*models.Proposal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty proposal reference", domain.ErrProposalNotFound)
	}

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return repo.GetProposal(ctx, id)
	}

	proposals, err := repo.ListProposals(ctx, domain.ProposalFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	needle := strings.ToLower(ref)
	matches := lo.Filter(proposals, func(p *models.Proposal, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), needle)
	})

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no proposal matches %q", domain.ErrProposalNotFound, ref)
	case 1:
		return matches[0], nil
	}

	return nil, domain.AmbiguousProposalErr{
		Reference: ref,
		MatchIDs:  lo.Map(matches, func(p *models.Proposal, _ int) uint64 { return p.ID }),
	}
}

package render

import (
	"fmt"
	"io"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/usecase"
)

// ResolutionRenderer renders the result of resolving a proposal
type ResolutionRenderer struct {
	out io.Writer
}

// NewResolutionRenderer creates a new resolution renderer
func NewResolutionRenderer(out io.Writer) *ResolutionRenderer {
	return &ResolutionRenderer{out: out}
}

// Render renders the resolution outcome and any refunds performed
func (r *ResolutionRenderer) Render(result *usecase.ResolveProposalResult) error {
	p := result.Proposal

	fmt.Fprintln(r.out, FormatSuccess(domain.ProposalSettledMessage))
	fmt.Fprintf(r.out, "  Proposal: #%d %s\n", p.ID, p.Title)
	fmt.Fprintf(r.out, "  Outcome: %s (%d approve / %d reject)\n",
		FormatStatus(p.Status()), p.ApproveCount, p.RejectCount)

	if len(result.Refunds) > 0 {
		fmt.Fprintf(r.out, "  Refunded %d approving voters:\n", len(result.Refunds))
		for _, refund := range result.Refunds {
			fmt.Fprintf(r.out, "    %s  %s\n", refund.Voter.Hex(), FormatAmount(refund.Amount))
		}
	}

	return nil
}

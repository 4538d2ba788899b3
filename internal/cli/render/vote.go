package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/usecase"
)

// VoteRenderer renders the result of casting a vote
type VoteRenderer struct {
	out io.Writer
}

// NewVoteRenderer creates a new vote renderer
func NewVoteRenderer(out io.Writer) *VoteRenderer {
	return &VoteRenderer{out: out}
}

// Render renders the vote outcome
func (r *VoteRenderer) Render(result *usecase.CastVoteResult) error {
	fmt.Fprintln(r.out, FormatSuccess(domain.VoteSuccessMessage))
	fmt.Fprintf(r.out, "  Proposal: #%d %s\n", result.Proposal.ID, result.Proposal.Title)
	fmt.Fprintf(r.out, "  Choice: %s\n", result.Record.Choice.Label())
	fmt.Fprintf(r.out, "  Stake: %s (in escrow)\n", FormatAmount(result.Record.Amount))
	fmt.Fprintf(r.out, "  Tally: %s approve / %s reject\n",
		color.New(color.FgGreen).Sprintf("%d", result.Proposal.ApproveCount),
		color.New(color.FgRed).Sprintf("%d", result.Proposal.RejectCount))
	fmt.Fprintf(r.out, "  Remaining voting rights: %d\n", result.Voter.VoteRight)
	return nil
}

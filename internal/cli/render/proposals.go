package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// ProposalsRenderer renders proposal lists as formatted tables
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// Render renders proposals in creation order with a summary footer
func (r *ProposalsRenderer) Render(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Status", "Approve", "Reject", "Stake", "Deadline"})

	for _, p := range result.Proposals {
		t.AppendRow(table.Row{
			p.ID,
			p.Title,
			FormatStatus(p.Status()),
			p.ApproveCount,
			p.RejectCount,
			FormatAmount(p.TotalStake),
			FormatTime(p.Deadline),
		})
	}

	t.Render()

	faint := color.New(color.Faint)
	faint.Fprintf(r.out, "%d proposals (%d open, %d accepted, %d rejected), escrow balance %s\n",
		result.Summary.Total,
		result.Summary.ByStatus[models.ProposalStatusOpen],
		result.Summary.ByStatus[models.ProposalStatusAccepted],
		result.Summary.ByStatus[models.ProposalStatusRejected],
		FormatAmount(result.Summary.EscrowBalance),
	)

	return nil
}

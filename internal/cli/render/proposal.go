package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/flexdao/flexgov/internal/usecase"
)

// ProposalRenderer renders detailed information about a single proposal
type ProposalRenderer struct {
	out io.Writer
}

// NewProposalRenderer creates a new proposal renderer
func NewProposalRenderer(out io.Writer) *ProposalRenderer {
	return &ProposalRenderer{out: out}
}

// Render renders the proposal with its votes in voting order
func (r *ProposalRenderer) Render(result *usecase.ShowProposalResult) error {
	p := result.Proposal

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Proposal #%d: %s\n", p.ID, p.Title)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintf(r.out, "\n  Status: %s\n", FormatStatus(p.Status()))
	fmt.Fprintf(r.out, "  Creator: %s\n", p.Creator.Hex())
	fmt.Fprintf(r.out, "  Created: %s\n", FormatTime(p.CreatedAt))
	fmt.Fprintf(r.out, "  Deadline: %s\n", FormatTime(p.Deadline))
	if p.ResolvedAt != nil {
		fmt.Fprintf(r.out, "  Resolved: %s\n", FormatTime(*p.ResolvedAt))
	}
	if p.Description != "" {
		fmt.Fprintf(r.out, "  Description: %s\n", p.Description)
	}
	if p.DocumentRef != "" {
		fmt.Fprintf(r.out, "  Document: %s\n", p.DocumentRef)
	}
	fmt.Fprintf(r.out, "  Incentive Rate: %d bps per epoch\n", p.IncentiveRateBps)

	fmt.Fprintln(r.out, "\nTally:")
	fmt.Fprintf(r.out, "  Approve: %s\n", color.New(color.FgGreen).Sprintf("%d", p.ApproveCount))
	fmt.Fprintf(r.out, "  Reject: %s\n", color.New(color.FgRed).Sprintf("%d", p.RejectCount))
	fmt.Fprintf(r.out, "  Total Stake: %s\n", FormatAmount(p.TotalStake))

	if len(result.Votes) == 0 {
		fmt.Fprintln(r.out, "\nNo votes cast")
		return nil
	}

	fmt.Fprintln(r.out, "\nVotes:")
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Voter", "Choice", "Stake"})
	for _, vote := range result.Votes {
		t.AppendRow(table.Row{
			vote.Voter.Hex(),
			vote.Choice.Label(),
			FormatAmount(vote.Amount),
		})
	}
	t.Render()

	return nil
}

// ProposalCreatedRenderer renders the result of creating a proposal
type ProposalCreatedRenderer struct {
	out io.Writer
}

// NewProposalCreatedRenderer creates a new proposal created renderer
func NewProposalCreatedRenderer(out io.Writer) *ProposalCreatedRenderer {
	return &ProposalCreatedRenderer{out: out}
}

// Render renders the created proposal
func (r *ProposalCreatedRenderer) Render(result *usecase.CreateProposalResult) error {
	p := result.Proposal

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created proposal #%d: %s", p.ID, p.Title)))
	fmt.Fprintf(r.out, "  Voting closes: %s\n", FormatTime(p.Deadline))
	fmt.Fprintf(r.out, "  Incentive rate: %d bps per epoch\n", p.IncentiveRateBps)
	return nil
}

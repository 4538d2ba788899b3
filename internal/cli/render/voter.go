package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/flexdao/flexgov/internal/usecase"
)

// VoterRenderer renders a voter's rights, records and token position
type VoterRenderer struct {
	out io.Writer
}

// NewVoterRenderer creates a new voter renderer
func NewVoterRenderer(out io.Writer) *VoterRenderer {
	return &VoterRenderer{out: out}
}

// Render renders the voter details
func (r *VoterRenderer) Render(result *usecase.ShowVoterResult) error {
	voter := result.Voter

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Voter: %s\n", voter.Account.Hex())
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintf(r.out, "\n  Voting rights: %d\n", voter.VoteRight)
	fmt.Fprintf(r.out, "  Token balance: %s\n", FormatAmount(result.Balance))
	fmt.Fprintf(r.out, "  Escrow allowance: %s\n", FormatAmount(result.Allowance))

	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "\nNo votes cast")
		return nil
	}

	fmt.Fprintln(r.out, "\nVotes:")
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Proposal", "Choice", "Stake", "Epochs Claimed", "Settled"})
	for _, record := range result.Records {
		settled := ""
		if record.Settled {
			settled = "yes"
		}
		t.AppendRow(table.Row{
			record.ProposalID,
			record.Choice.Label(),
			FormatAmount(record.Amount),
			record.ClaimedEpochs,
			settled,
		})
	}
	t.Render()

	return nil
}

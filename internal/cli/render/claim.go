package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fatih/color"

	"github.com/flexdao/flexgov/internal/domain/models"
)

// ClaimRenderer renders incentive claim and settlement payouts
type ClaimRenderer struct {
	out io.Writer
}

// NewClaimRenderer creates a new claim renderer
func NewClaimRenderer(out io.Writer) *ClaimRenderer {
	return &ClaimRenderer{out: out}
}

// RenderClaim renders an incremental claim payout
func (r *ClaimRenderer) RenderClaim(epochs uint64, payment *big.Int, record *models.VoteRecord) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Claimed %d epochs: %s", epochs, FormatAmount(payment))))
	r.renderRecord(record)
	return nil
}

// RenderSettlement renders a terminal settlement payout
func (r *ClaimRenderer) RenderSettlement(epochs uint64, payment *big.Int, record *models.VoteRecord) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Settled %d remaining epochs: %s", epochs, FormatAmount(payment))))
	r.renderRecord(record)
	return nil
}

func (r *ClaimRenderer) renderRecord(record *models.VoteRecord) {
	fmt.Fprintf(r.out, "  Proposal: #%d\n", record.ProposalID)
	fmt.Fprintf(r.out, "  Stake: %s\n", FormatAmount(record.Amount))
	fmt.Fprintf(r.out, "  Epochs claimed: %d\n", record.ClaimedEpochs)
	if record.Settled {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.Faint).Sprint("Record settled, no further claims"))
	}
}

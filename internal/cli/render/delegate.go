package render

import (
	"fmt"
	"io"

	"github.com/flexdao/flexgov/internal/usecase"
)

// DelegateRenderer renders the result of a delegation
type DelegateRenderer struct {
	out io.Writer
}

// NewDelegateRenderer creates a new delegate renderer
func NewDelegateRenderer(out io.Writer) *DelegateRenderer {
	return &DelegateRenderer{out: out}
}

// Render renders the voter state after delegation
func (r *DelegateRenderer) Render(result *usecase.DelegateResult) error {
	voter := result.Voter
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Granted one voting right to %s", voter.Account.Hex())))
	fmt.Fprintf(r.out, "  Voting rights: %d\n", voter.VoteRight)
	return nil
}

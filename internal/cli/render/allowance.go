package render

import (
	"fmt"
	"io"

	"github.com/flexdao/flexgov/internal/usecase"
)

// AllowanceRenderer renders the result of an allowance grant
type AllowanceRenderer struct {
	out io.Writer
}

// NewAllowanceRenderer creates a new allowance renderer
func NewAllowanceRenderer(out io.Writer) *AllowanceRenderer {
	return &AllowanceRenderer{out: out}
}

// Render renders the allowance after the grant
func (r *AllowanceRenderer) Render(result *usecase.ApproveStakeResult) error {
	fmt.Fprintln(r.out, FormatSuccess("Escrow allowance updated"))
	fmt.Fprintf(r.out, "  Owner: %s\n", result.Owner.Hex())
	fmt.Fprintf(r.out, "  Spender: %s\n", result.Spender.Hex())
	fmt.Fprintf(r.out, "  Allowance: %s\n", FormatAmount(result.Allowance))
	return nil
}

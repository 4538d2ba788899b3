package authz

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// OpenPolicy permits every caller. Delegation, creation and resolution
// are restricted by deployment convention only; a deployment that wants
// to narrow them swaps this adapter for one that checks callers.
type OpenPolicy struct{}

// NewOpenPolicy creates the allow-all authorization policy
func NewOpenPolicy() *OpenPolicy {
	return &OpenPolicy{}
}

func (OpenPolicy) CanDelegate(ctx context.Context, caller, account common.Address) error {
	return nil
}

func (OpenPolicy) CanCreateProposal(ctx context.Context, caller common.Address) error {
	return nil
}

func (OpenPolicy) CanResolve(ctx context.Context, caller common.Address, proposal *models.Proposal) error {
	return nil
}

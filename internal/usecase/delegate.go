package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

// Delegate grants one unit of voting right to an account
type Delegate struct {
	repo GovernanceRepository
	auth AuthorizationPolicy
	lock Serializer
}

// NewDelegate creates a new delegate use case
func NewDelegate(repo GovernanceRepository, auth AuthorizationPolicy, lock Serializer) *Delegate {
	return &Delegate{repo: repo, auth: auth, lock: lock}
}

// DelegateParams contains parameters for delegation
type DelegateParams struct {
	// Caller is the account invoking the operation
	Caller common.Address
	// Account receives the voting right
	Account common.Address
}

// DelegateResult contains the voter state after delegation
type DelegateResult struct {
	Voter *models.Voter
}

// Execute increments the account's voting right by one. Repeated
// delegation accumulates; there is no upper bound.
func (d *Delegate) Execute(ctx context.Context, params DelegateParams) (*DelegateResult, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.auth.CanDelegate(ctx, params.Caller, params.Account); err != nil {
		return nil, err
	}

	voter, err := d.repo.GetVoter(ctx, params.Account)
	if errors.Is(err, domain.ErrVoterNotFound) {
		voter = &models.Voter{Account: params.Account}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	voter.VoteRight++

	if err := d.repo.SaveVoter(ctx, voter); err != nil {
		return nil, fmt.Errorf("failed to save voter: %w", err)
	}

	return &DelegateResult{Voter: voter}, nil
}

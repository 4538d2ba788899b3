package domain

import (
	"github.com/flexdao/flexgov/internal/domain/models"
)

// ProposalFilter narrows proposal listings
type ProposalFilter struct {
	// Status filters by lifecycle state; empty matches all
	Status models.ProposalStatus

	// Creator filters by creator account (hex string); empty matches all
	Creator string
}

package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalStatus represents the lifecycle state of a proposal
type ProposalStatus string

const (
	ProposalStatusOpen     ProposalStatus = "open"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Proposal represents a governance proposal record for persistence
type Proposal struct {
	// Identification: index in creation order, never reused
	ID uint64 `json:"id"`

	// Immutable metadata
	Creator          common.Address `json:"creator"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	DocumentRef      string         `json:"documentRef,omitempty"`
	IncentiveRateBps uint64         `json:"incentiveRateBps"`
	CreatedAt        time.Time      `json:"createdAt"`
	Deadline         time.Time      `json:"deadline"`

	// Tallies
	ApproveCount uint64   `json:"approveCount"`
	RejectCount  uint64   `json:"rejectCount"`
	TotalStake   *big.Int `json:"totalStake"`

	// Resolution outcome (Accepted is meaningful only once Resolved)
	Resolved   bool       `json:"resolved"`
	Accepted   bool       `json:"accepted"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// Status derives the lifecycle state from the resolution fields
func (p *Proposal) Status() ProposalStatus {
	if !p.Resolved {
		return ProposalStatusOpen
	}
	if p.Accepted {
		return ProposalStatusAccepted
	}
	return ProposalStatusRejected
}

// AcceptsVotes reports whether a vote cast at the given time is still valid
func (p *Proposal) AcceptsVotes(now time.Time) bool {
	return !p.Resolved && now.Before(p.Deadline)
}

// TotalVotes returns the number of distinct voters who voted
func (p *Proposal) TotalVotes() uint64 {
	return p.ApproveCount + p.RejectCount
}

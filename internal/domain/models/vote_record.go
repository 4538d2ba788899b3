package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// VoteChoice is the two-variant choice of a vote. The wire encoding
// matches the historical contract: 0 = Approve, 1 = Reject.
type VoteChoice uint8

const (
	VoteApprove VoteChoice = 0
	VoteReject  VoteChoice = 1
)

// ParseVoteChoice parses a choice from its human-readable label or
// numeric encoding.
func ParseVoteChoice(s string) (VoteChoice, error) {
	switch s {
	case "approve", "Approve", "0":
		return VoteApprove, nil
	case "reject", "Reject", "1":
		return VoteReject, nil
	}
	return 0, fmt.Errorf("invalid vote choice %q (want approve or reject)", s)
}

// Valid reports whether c is one of the two defined variants.
func (c VoteChoice) Valid() bool {
	return c == VoteApprove || c == VoteReject
}

// Label returns the human-readable choice label used in events
func (c VoteChoice) Label() string {
	if c == VoteApprove {
		return "Approve"
	}
	return "Reject"
}

func (c VoteChoice) String() string { return c.Label() }

// MarshalText encodes the choice by label so persisted records stay readable
func (c VoteChoice) MarshalText() ([]byte, error) {
	return []byte(c.Label()), nil
}

func (c *VoteChoice) UnmarshalText(text []byte) error {
	parsed, err := ParseVoteChoice(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// VoteRecord represents one voter's stake on one proposal. Choice and
// Amount are immutable after creation; the claim fields mutate only
// through the incentive operations.
type VoteRecord struct {
	ProposalID uint64         `json:"proposalId"`
	Voter      common.Address `json:"voter"`
	Choice     VoteChoice     `json:"choice"`
	Amount     *big.Int       `json:"amount"`

	// Incentive accrual bookkeeping
	ClaimedEpochs uint64     `json:"claimedEpochs"`
	LastClaimAt   *time.Time `json:"lastClaimAt,omitempty"`
	Settled       bool       `json:"settled"`
}

// VoteRecordKey identifies a record by (proposal, voter)
type VoteRecordKey struct {
	ProposalID uint64
	Voter      common.Address
}

func (k VoteRecordKey) String() string {
	return fmt.Sprintf("%d/%s", k.ProposalID, k.Voter.Hex())
}

// Key returns the record's (proposal, voter) identity
func (r *VoteRecord) Key() VoteRecordKey {
	return VoteRecordKey{ProposalID: r.ProposalID, Voter: r.Voter}
}

package models

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// Voter represents a registered voter and their delegated voting rights
type Voter struct {
	Account common.Address `json:"account"`

	// VoteRight is incremented by delegation and consumed one unit per vote
	VoteRight uint64 `json:"voteRight"`

	// Proposals holds the ids of proposals this voter has voted on,
	// in voting order
	Proposals []uint64 `json:"proposals,omitempty"`
}

// HasVoted reports whether the voter already voted on the given proposal
func (v *Voter) HasVoted(proposalID uint64) bool {
	return slices.Contains(v.Proposals, proposalID)
}

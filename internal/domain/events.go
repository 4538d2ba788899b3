package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type EventType string

const (
	EventTypeProposalCreated  EventType = "ProposalCreated"
	EventTypeVoteCast         EventType = "VoteCast"
	EventTypeProposalResolved EventType = "ProposalResolved"
	EventTypeStakeRefunded    EventType = "StakeRefunded"
	EventTypeIncentiveClaimed EventType = "IncentiveClaimed"
)

// Fixed notification messages carried by the corresponding events
const (
	VoteSuccessMessage     = "Vote successful"
	ProposalSettledMessage = "Proposal settled successfully"
)

// Event is the interface for all engine notifications
type Event interface {
	EventName() string
	String() string
}

// ProposalCreatedEvent is emitted when a proposal is appended to the registry
type ProposalCreatedEvent struct {
	ProposalID       uint64
	Creator          common.Address
	Title            string
	Description      string
	IncentiveRateBps uint64
}

func (ProposalCreatedEvent) EventName() string {
	return string(EventTypeProposalCreated)
}

func (e *ProposalCreatedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, creator=%s, title=%q, rate=%dbps",
		e.EventName(), e.ProposalID, e.Creator.Hex(), e.Title, e.IncentiveRateBps)
}

// VoteCastEvent is emitted when a vote is accepted
type VoteCastEvent struct {
	ProposalID  uint64
	Voter       common.Address
	ChoiceLabel string
	Message     string
}

func (VoteCastEvent) EventName() string {
	return string(EventTypeVoteCast)
}

func (e *VoteCastEvent) String() string {
	return fmt.Sprintf("%s: id=%d, voter=%s, choice=%s, %s",
		e.EventName(), e.ProposalID, e.Voter.Hex(), e.ChoiceLabel, e.Message)
}

// ProposalResolvedEvent is emitted when a proposal reaches its terminal state
type ProposalResolvedEvent struct {
	ProposalID uint64
	Accepted   bool
	Message    string
}

func (ProposalResolvedEvent) EventName() string {
	return string(EventTypeProposalResolved)
}

func (e *ProposalResolvedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, accepted=%t, %s",
		e.EventName(), e.ProposalID, e.Accepted, e.Message)
}

// StakeRefundedEvent is emitted once per refunded approve-voter on rejection
type StakeRefundedEvent struct {
	ProposalID uint64
	Voter      common.Address
	Amount     *big.Int
}

func (StakeRefundedEvent) EventName() string {
	return string(EventTypeStakeRefunded)
}

func (e *StakeRefundedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, voter=%s, amount=%s",
		e.EventName(), e.ProposalID, e.Voter.Hex(), e.Amount)
}

// IncentiveClaimedEvent is emitted on each incentive payout
type IncentiveClaimedEvent struct {
	Voter  common.Address
	Amount *big.Int
}

func (IncentiveClaimedEvent) EventName() string {
	return string(EventTypeIncentiveClaimed)
}

func (e *IncentiveClaimedEvent) String() string {
	return fmt.Sprintf("%s: voter=%s, amount=%s",
		e.EventName(), e.Voter.Hex(), e.Amount)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine operations. Every failure an operation can
// produce maps to exactly one of these so callers and tests can assert on
// cause rather than on message text.
var (
	// ErrProposalNotFound is returned when a proposal id doesn't exist
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrVoterNotFound is returned when an account has no voter record
	ErrVoterNotFound = errors.New("voter not found")

	// ErrInvalidProposal is returned when proposal inputs fail validation
	ErrInvalidProposal = errors.New("invalid proposal")

	// ErrInvalidAmount is returned for nil, zero or negative token amounts
	ErrInvalidAmount = errors.New("invalid token amount")

	// ErrInvalidChoice is returned for a vote choice outside the two
	// defined variants
	ErrInvalidChoice = errors.New("invalid vote choice")

	// ErrUnauthorized is returned when the authorization policy denies a caller
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDeadlinePassed is returned when voting after the proposal deadline
	ErrDeadlinePassed = errors.New("voting deadline has passed")

	// ErrDeadlineNotReached is returned when resolving before the deadline
	ErrDeadlineNotReached = errors.New("voting deadline not reached")

	// ErrClaimWindowNotReached is returned when claiming before a full
	// epoch has elapsed
	ErrClaimWindowNotReached = errors.New("claim window not reached")

	// ErrNoVotingRight is returned when the voter has no voting rights left
	ErrNoVotingRight = errors.New("no voting right")

	// ErrAlreadyVoted is returned on a second vote for the same proposal
	ErrAlreadyVoted = errors.New("already voted on this proposal")

	// ErrAlreadyResolved is returned on re-resolution of a proposal
	ErrAlreadyResolved = errors.New("proposal already resolved")

	// ErrAlreadyClaimed is returned once a vote record is fully settled
	ErrAlreadyClaimed = errors.New("incentive already claimed in full")

	// ErrProposalRejected is returned when claiming against a proposal
	// that did not pass
	ErrProposalRejected = errors.New("proposal was rejected")

	// ErrNotAValidVoter is returned when the caller holds no vote record
	// for the proposal
	ErrNotAValidVoter = errors.New("not a voter on this proposal")

	// ErrMustHaveVotedApprove is returned when a reject-voter claims
	ErrMustHaveVotedApprove = errors.New("must have voted approve to claim")

	// ErrInsufficientBalance is returned when the token ledger cannot
	// cover a transfer
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientAllowance is returned when the engine's spending
	// grant cannot cover a stake pull
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// ErrorKind groups the sentinel errors into the engine's failure taxonomy
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindState      ErrorKind = "state"
	KindTiming     ErrorKind = "timing"
	KindResource   ErrorKind = "resource"
	KindUnknown    ErrorKind = "unknown"
)

// KindOf classifies an error by its sentinel cause
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidProposal),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidChoice),
		errors.Is(err, ErrProposalNotFound),
		errors.Is(err, ErrVoterNotFound),
		errors.Is(err, ErrUnauthorized):
		return KindValidation
	case errors.Is(err, ErrAlreadyVoted),
		errors.Is(err, ErrAlreadyResolved),
		errors.Is(err, ErrAlreadyClaimed),
		errors.Is(err, ErrNoVotingRight),
		errors.Is(err, ErrProposalRejected),
		errors.Is(err, ErrNotAValidVoter),
		errors.Is(err, ErrMustHaveVotedApprove):
		return KindState
	case errors.Is(err, ErrDeadlinePassed),
		errors.Is(err, ErrDeadlineNotReached),
		errors.Is(err, ErrClaimWindowNotReached):
		return KindTiming
	case errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInsufficientAllowance):
		return KindResource
	}
	return KindUnknown
}

// AmbiguousProposalErr is returned when a textual proposal reference
// matches more than one proposal.
type AmbiguousProposalErr struct {
	Reference string
	MatchIDs  []uint64
}

func (e AmbiguousProposalErr) Error() string {
	return fmt.Sprintf("multiple proposals match %q: %v - use a numeric id to disambiguate", e.Reference, e.MatchIDs)
}

package errors

import (
	"errors"
	"fmt"
)

// Stable error kinds surfaced to callers alongside the human readable reason.
const (
	KindValidation          = "validation"
	KindLockedElection      = "locked-election"
	KindHasVotes            = "has-votes"
	KindProviderUnavailable = "provider-unavailable"
	KindUserRejected        = "user-rejected"
	KindPartialSync         = "partial-sync"
	KindNetworkMismatch     = "network-mismatch"
)

// CodeUserRejected is the rejection code wallet backends report when the user
// explicitly declines an approval prompt.
const CodeUserRejected = 4001

type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", KindValidation, err.Field, err.Reason)
}

func (err *ValidationError) Kind() string {
	return KindValidation
}

type LockedElectionError struct {
	ElectionId string
}

func (err *LockedElectionError) Error() string {
	return fmt.Sprintf("%s: candidate list of election %s is locked", KindLockedElection, err.ElectionId)
}

func (err *LockedElectionError) Kind() string {
	return KindLockedElection
}

type HasVotesError struct {
	LocalId string
	Votes   int64
}

func (err *HasVotesError) Error() string {
	return fmt.Sprintf("%s: candidate %s has %d on-chain votes", KindHasVotes, err.LocalId, err.Votes)
}

func (err *HasVotesError) Kind() string {
	return KindHasVotes
}

type ProviderUnavailableError struct {
	Reason string
}

func (err *ProviderUnavailableError) Error() string {
	if err.Reason == "" {
		return fmt.Sprintf("%s: no signing backend present", KindProviderUnavailable)
	}
	return fmt.Sprintf("%s: %s", KindProviderUnavailable, err.Reason)
}

func (err *ProviderUnavailableError) Kind() string {
	return KindProviderUnavailable
}

type UserRejectedError struct {
	Code int
}

func (err *UserRejectedError) Error() string {
	return fmt.Sprintf("%s: user rejected request (code %d)", KindUserRejected, err.Code)
}

func (err *UserRejectedError) Kind() string {
	return KindUserRejected
}

// PartialSyncError reports that the off-chain write succeeded but the on-chain
// registration did not. The off-chain record named by LocalId is preserved so
// that an explicit resync can complete it later.
type PartialSyncError struct {
	LocalId string
	Cause   error
}

func (err *PartialSyncError) Error() string {
	return fmt.Sprintf("%s: candidate %s created off-chain but not registered on-chain: %v", KindPartialSync, err.LocalId, err.Cause)
}

func (err *PartialSyncError) Kind() string {
	return KindPartialSync
}

func (err *PartialSyncError) Unwrap() error {
	return err.Cause
}

type NetworkMismatchError struct {
	Have int64
	Want int64
}

func (err *NetworkMismatchError) Error() string {
	return fmt.Sprintf("%s: wallet session is on chain %d, registry expects chain %d", KindNetworkMismatch, err.Have, err.Want)
}

func (err *NetworkMismatchError) Kind() string {
	return KindNetworkMismatch
}

type kinder interface {
	Kind() string
}

// Kind extracts the stable kind of err, unwrapping as needed. Errors outside
// the taxonomy report an empty kind.
func Kind(err error) string {
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

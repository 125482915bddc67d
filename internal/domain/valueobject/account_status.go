package valueobject

import (
	"fmt"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
)

// ErrInvalidAccountStatus is returned by AccountStatusFromString for
// unrecognized literals.
var ErrInvalidAccountStatus = fmt.Errorf("invalid account status")

// AccountStatusPolicy wraps an account status and answers the single
// business question attached to it: may this account log in.
type AccountStatusPolicy struct {
	status entity.AccountStatus
}

// AccountStatusFrom wraps a known enum value (trusted input from the domain).
func AccountStatusFrom(status entity.AccountStatus) AccountStatusPolicy {
	return AccountStatusPolicy{status: status}
}

// AccountStatusFromString parses an untrusted literal into a policy.
func AccountStatusFromString(s string) (AccountStatusPolicy, error) {
	switch entity.AccountStatus(s) {
	case entity.StatusActive, entity.StatusInactive, entity.StatusSuspended, entity.StatusPendingVerification:
		return AccountStatusPolicy{status: entity.AccountStatus(s)}, nil
	}
	return AccountStatusPolicy{}, fmt.Errorf("%w: %q", ErrInvalidAccountStatus, s)
}

// Value returns the wrapped status.
func (p AccountStatusPolicy) Value() entity.AccountStatus { return p.status }

// CanAuthenticate is the single authorization gate for login. Only
// ACTIVE accounts may authenticate.
func (p AccountStatusPolicy) CanAuthenticate() bool {
	return p.status == entity.StatusActive
}

// Reason explains, for a human, why the account cannot log in.
func (p AccountStatusPolicy) Reason() string {
	switch p.status {
	case entity.StatusInactive:
		return "account is inactive; contact support to reactivate"
	case entity.StatusSuspended:
		return "account is suspended; contact support"
	case entity.StatusPendingVerification:
		return "account is awaiting verification; check your email"
	default:
		return "account cannot authenticate"
	}
}

func (p AccountStatusPolicy) String() string { return string(p.status) }

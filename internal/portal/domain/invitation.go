package domain

import "time"

// DefaultInvitationTTL is how long a freshly minted code stays redeemable.
const DefaultInvitationTTL = 30 * 24 * time.Hour

// InvitationCode is a single-use, time limited token gating registration.
// Whether it was used is not stored on the code itself; it is derived from
// membership in the used-codes set.
type InvitationCode struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the code can no longer be redeemed at now.
func (c InvitationCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// InvitationCodeStatus is the administrative view of a code.
type InvitationCodeStatus struct {
	InvitationCode
	Used    bool `json:"used"`
	Expired bool `json:"expired"`
}

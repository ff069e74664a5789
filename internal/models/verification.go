package models

import "time"

// PhoneVerification is the cached session for one phone verification flow,
// keyed by sanitized phone number. It lives in Redis under a TTL; the
// attempts counter is bounded by the configured maximum.
type PhoneVerification struct {
	Code      string    `json:"code"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}

package dto

import "time"

type AccountOutput struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	MFAEnabled bool   `json:"mfa_enabled"`
	MFAMethod  string `json:"mfa_method,omitempty"`
}

type SessionOutput struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClientMetadata is the optional request context recorded alongside a
// refresh token for session listings.
type ClientMetadata struct {
	IPAddress string
	UserAgent string
}

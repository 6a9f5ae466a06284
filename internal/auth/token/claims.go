package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Purpose discriminates what a signed token may be exchanged for. Every
// token carries exactly one purpose and verifiers must check it, so a
// challenge can never be replayed as an access or refresh credential.
type Purpose string

const (
	PurposeAccess       Purpose = "access"
	PurposeRefresh      Purpose = "refresh"
	PurposeMFAChallenge Purpose = "mfa"
)

// Claims is the closed claim set used for every token this service signs.
type Claims struct {
	jwt.RegisteredClaims
	Username   string  `json:"usr,omitempty"`
	Purpose    Purpose `json:"purpose"`
	MFAEnabled bool    `json:"mfa_enabled,omitempty"`
	MFAMethod  string  `json:"mfa_method,omitempty"`
}

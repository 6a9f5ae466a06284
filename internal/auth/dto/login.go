package dto

type LoginInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResult is the phase-one outcome: either a full token pair, or an
// MFA challenge to be exchanged in phase two.
type LoginResult struct {
	NeedMFA        bool     `json:"need_mfa"`
	AccessToken    string   `json:"access_token,omitempty"`
	RefreshToken   string   `json:"refresh_token,omitempty"`
	LoginChallenge string   `json:"login_challenge,omitempty"`
	Methods        []string `json:"methods,omitempty"`
}

package dto

type MFAVerifyInput struct {
	LoginChallenge string `json:"login_challenge"`
	Code           string `json:"code"`
	IPAddress      string `json:"-"`
	UserAgent      string `json:"-"`
}

type MFASetupOutput struct {
	Base32     string `json:"base32"`
	OtpauthURL string `json:"otpauth_url"`
}

type MFAEnableInput struct {
	Code string `json:"code"`
}

type MFAEnableOutput struct {
	OK            bool     `json:"ok"`
	RecoveryCodes []string `json:"recovery_codes"`
}

// MFADisableInput carries the re-proof of possession: any one of the
// current password, a valid TOTP code, or an unused recovery code.
type MFADisableInput struct {
	Password     string `json:"password,omitempty"`
	Code         string `json:"code,omitempty"`
	RecoveryCode string `json:"recovery_code,omitempty"`
}

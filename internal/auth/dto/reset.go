package dto

import "time"

type ForgotPasswordInput struct {
	Username string `json:"username"`
}

type ForgotPasswordOutput struct {
	OK         bool      `json:"ok"`
	ResetToken string    `json:"reset_token"`
	ExpiresAt  time.Time `json:"exp"`
}

type ResetPasswordInput struct {
	Username    string `json:"username"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

package model

import "github.com/passmint/passmint-go/strength"

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a password strength check response. The
// report carries the canonical four-factor scores and verdict; the
// estimate is advisory only and never feeds the verdict.
type StrengthResponse struct {
	Report   strength.Report `json:"report"`
	Estimate EntropyEstimate `json:"estimate"`
}

// EntropyEstimate is an advisory zxcvbn-style strength estimate.
type EntropyEstimate struct {
	Entropy   float64 `json:"entropy"`
	Score     int     `json:"score"`
	CrackTime string  `json:"crack_time_display"`
}

package models

import "strings"

// ActivationCode is an admin-minted code that unlocks the app for one user.
type ActivationCode struct {
	Code        string `json:"code"`
	IsUsed      bool   `json:"is_used"`
	UsedByEmail string `json:"used_by_email,omitempty"`
}

// Limits for batch code generation.
const (
	MinActivationCodes = 1
	MaxActivationCodes = 100
)

// NormalizeActivationCode trims surrounding whitespace and uppercases the
// code, matching how codes are entered on the activation screen.
func NormalizeActivationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

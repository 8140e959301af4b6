package service

import "unicode/utf8"

// ViolationKind identifies which password rule a candidate failed.
type ViolationKind string

const (
	ViolationTooShort      ViolationKind = "TOO_SHORT"
	ViolationMissingDigit  ViolationKind = "MISSING_DIGIT"
	ViolationMissingLetter ViolationKind = "MISSING_LETTER"
)

// PolicyViolation describes why a candidate password was rejected.
// It implements error so it can flow through the usecase layer unchanged.
type PolicyViolation struct {
	Kind   ViolationKind
	Reason string
}

// Error returns the human-readable reason for the violation.
func (v *PolicyViolation) Error() string {
	return v.Reason
}

// PasswordPolicy validates candidate passwords against the registration rules.
// It is pure: no state, no side effects.
type PasswordPolicy struct {
	minLength int
}

// NewPasswordPolicy returns a policy with the default minimum length of 8.
func NewPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{minLength: 8}
}

// Validate checks the rules in order and returns the first violation, or nil
// if the password is acceptable. Rules: minimum length, at least one decimal
// digit, at least one ASCII letter. There are no other rules.
// Length counts characters, not bytes, so multibyte input is not undercounted.
func (p *PasswordPolicy) Validate(password string) *PolicyViolation {
	if utf8.RuneCountInString(password) < p.minLength {
		return &PolicyViolation{
			Kind:   ViolationTooShort,
			Reason: "password must be at least 8 characters long",
		}
	}

	if !containsDigit(password) {
		return &PolicyViolation{
			Kind:   ViolationMissingDigit,
			Reason: "password must contain at least one number",
		}
	}

	if !containsLetter(password) {
		return &PolicyViolation{
			Kind:   ViolationMissingLetter,
			Reason: "password must contain at least one letter",
		}
	}

	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}

	return false
}

package auth

import (
	"crypto/subtle"
	"strings"
)

// Outcome classifies a single authentication attempt. The distinction between
// NoCredential and InvalidCredential is part of the HTTP contract: the former
// maps to 401, the latter to 403.
type Outcome int

const (
	OutcomeNoCredential Outcome = iota
	OutcomeInvalidCredential
	OutcomeValidCredential
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoCredential:
		return "no_credential"
	case OutcomeInvalidCredential:
		return "invalid_credential"
	case OutcomeValidCredential:
		return "valid_credential"
	default:
		return "unknown"
	}
}

// Authenticator decides the outcome for a raw Authorization header value.
// Implementations must be safe for concurrent use.
type Authenticator interface {
	Authenticate(authorization string) (token string, outcome Outcome)
}

// BearerAuthenticator validates opaque bearer tokens against an immutable
// set fixed at construction. It keeps no per-request state and never expires
// tokens; the set lives as long as the process configuration.
type BearerAuthenticator struct {
	tokens []string
}

func NewBearerAuthenticator(tokens []string) *BearerAuthenticator {
	set := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			set = append(set, t)
		}
	}
	return &BearerAuthenticator{tokens: set}
}

const bearerScheme = "Bearer"

// Authenticate parses "Bearer <token>" with a case-sensitive scheme and
// exactly one space separator. Anything that does not match that shape is
// NoCredential; a well-formed but unrecognized token is InvalidCredential.
func (a *BearerAuthenticator) Authenticate(authorization string) (string, Outcome) {
	scheme, token, found := strings.Cut(authorization, " ")
	if !found || scheme != bearerScheme || token == "" || strings.HasPrefix(token, " ") {
		return "", OutcomeNoCredential
	}
	if !a.contains(token) {
		return "", OutcomeInvalidCredential
	}
	return token, OutcomeValidCredential
}

// contains checks membership with a constant-time comparison per entry so a
// near-miss token takes the same time as a full mismatch.
func (a *BearerAuthenticator) contains(token string) bool {
	match := 0
	for _, t := range a.tokens {
		if len(t) == len(token) {
			match |= subtle.ConstantTimeCompare([]byte(t), []byte(token))
		}
	}
	return match == 1
}

package auth

import "testing"

func TestBearerAuthenticatorOutcomes(t *testing.T) {
	a := NewBearerAuthenticator([]string{"t1", "t2", "t2"})

	cases := []struct {
		name        string
		header      string
		wantOutcome Outcome
		wantToken   string
	}{
		{name: "missing header", header: "", wantOutcome: OutcomeNoCredential},
		{name: "bare scheme", header: "Bearer", wantOutcome: OutcomeNoCredential},
		{name: "empty token", header: "Bearer ", wantOutcome: OutcomeNoCredential},
		{name: "double space", header: "Bearer  t1", wantOutcome: OutcomeNoCredential},
		{name: "lowercase scheme", header: "bearer t1", wantOutcome: OutcomeNoCredential},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantOutcome: OutcomeNoCredential},
		{name: "unknown token", header: "Bearer t3", wantOutcome: OutcomeInvalidCredential},
		{name: "near miss token", header: "Bearer t1x", wantOutcome: OutcomeInvalidCredential},
		{name: "first token", header: "Bearer t1", wantOutcome: OutcomeValidCredential, wantToken: "t1"},
		{name: "duplicated token", header: "Bearer t2", wantOutcome: OutcomeValidCredential, wantToken: "t2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, outcome := a.Authenticate(tc.header)
			if outcome != tc.wantOutcome {
				t.Fatalf("outcome=%v want %v", outcome, tc.wantOutcome)
			}
			if token != tc.wantToken {
				t.Fatalf("token=%q want %q", token, tc.wantToken)
			}
		})
	}
}

func TestBearerAuthenticatorEmptySetRejectsEverything(t *testing.T) {
	a := NewBearerAuthenticator(nil)
	if _, outcome := a.Authenticate("Bearer anything"); outcome != OutcomeInvalidCredential {
		t.Fatalf("outcome=%v want invalid", outcome)
	}
}

func TestBearerAuthenticatorDropsEmptyConfiguredTokens(t *testing.T) {
	a := NewBearerAuthenticator([]string{"", "ok", ""})
	if _, outcome := a.Authenticate("Bearer ok"); outcome != OutcomeValidCredential {
		t.Fatalf("outcome=%v want valid", outcome)
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeNoCredential.String() != "no_credential" ||
		OutcomeInvalidCredential.String() != "invalid_credential" ||
		OutcomeValidCredential.String() != "valid_credential" {
		t.Fatal("unexpected outcome strings")
	}
}

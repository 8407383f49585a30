package auth

import (
	"testing"
)

func TestGenerateSessionTokenIsRandom(t *testing.T) {
	a, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	b, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if len(a) != tokenBytes*2 {
		t.Fatalf("expected %d hex chars, got %d", tokenBytes*2, len(a))
	}
	if a == b {
		t.Fatal("two generated tokens were identical")
	}
}

func TestVerifySessionPair(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if !VerifySessionPair(token, HashToken(token)) {
		t.Fatal("expected matching pair to verify")
	}
	if VerifySessionPair(token, HashToken("other-token")) {
		t.Fatal("expected mismatched hash to fail")
	}
	if VerifySessionPair("", HashToken(token)) {
		t.Fatal("expected empty token to fail")
	}
	if VerifySessionPair(token, "") {
		t.Fatal("expected empty hash to fail")
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatal("hash of same token differed")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatal("hash of different tokens collided")
	}
}

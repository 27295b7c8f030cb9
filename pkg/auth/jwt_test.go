package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("s3cret", 7, "alice", "sess-1", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAccessToken("s3cret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.SessionID != "sess-1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateAccessTokenRejects(t *testing.T) {
	token, _ := GenerateAccessToken("s3cret", 7, "alice", "", time.Minute)
	if _, err := ValidateAccessToken("other", token); err == nil {
		t.Fatalf("expected wrong secret to fail")
	}

	expired, _ := GenerateAccessToken("s3cret", 7, "alice", "", -time.Minute)
	if _, err := ValidateAccessToken("s3cret", expired); err == nil {
		t.Fatalf("expected expired token to fail")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 7})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ValidateAccessToken("s3cret", unsigned); err == nil {
		t.Fatalf("expected unsigned token to fail")
	}
}

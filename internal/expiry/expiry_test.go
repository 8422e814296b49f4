package expiry

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"
)

func TestDeadline_FallbackTTL(t *testing.T) {
	issued := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	if got := Deadline(issued, 0); !got.Equal(issued.Add(DefaultTTL)) {
		t.Fatalf("got %v want issued+DefaultTTL", got)
	}
	if got := Deadline(issued, 10*time.Minute); !got.Equal(issued.Add(10*time.Minute)) {
		t.Fatalf("got %v want issued+10m", got)
	}
}

func TestExpired(t *testing.T) {
	deadline := time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC)
	skew := 30 * time.Second

	if Expired(deadline, deadline.Add(-time.Minute), skew) {
		t.Fatal("a minute before the deadline should not be expired")
	}
	if !Expired(deadline, deadline.Add(-skew), skew) {
		t.Fatal("inside the skew window should be expired")
	}
	if !Expired(deadline, deadline.Add(time.Second), skew) {
		t.Fatal("past the deadline should be expired")
	}
	if !Expired(time.Time{}, deadline, skew) {
		t.Fatal("zero deadline should always be expired")
	}
}

func TestFromJWTExp(t *testing.T) {
	exp := time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC)
	tok := makeJWT(t, fmt.Sprintf(`{"exp":%d}`, exp.Unix()))

	got, err := FromJWTExp(tok)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("got %v want %v", got, exp)
	}
}

func TestFromJWTExp_Opaque(t *testing.T) {
	if _, err := FromJWTExp("not-a-jwt"); err == nil {
		t.Fatal("opaque token should not yield a deadline")
	}
	if _, err := FromJWTExp(makeJWT(t, `{"sub":"merchant"}`)); err == nil {
		t.Fatal("missing exp claim should be an error")
	}
}

func makeJWT(t *testing.T, claims string) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(claims))
	return header + "." + payload + "." + enc.EncodeToString([]byte("sig"))
}

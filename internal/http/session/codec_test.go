package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "sess", false, time.Hour)

	in := Session{
		Token:    "tok-123",
		Name:     "Ada",
		Email:    "ada@example.com",
		IsAdmin:  true,
		IssuedAt: time.Now(),
	}
	v, err := codec.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := codec.Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Token != in.Token || got.Name != in.Name || got.Email != in.Email || !got.IsAdmin {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestCodecRejectsExpiredSession(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "sess", false, 7*24*time.Hour)

	v, err := codec.Encode(Session{
		Token:    "tok-123",
		IssuedAt: time.Now().Add(-8 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := codec.Decode(v); err == nil {
		t.Error("session past its TTL should not decode")
	}
}

func TestCodecRejectsEmptyToken(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "sess", false, time.Hour)

	v, err := codec.Encode(Session{Name: "Ada", IssuedAt: time.Now()})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := codec.Decode(v); err == nil {
		t.Error("session without a token should not decode")
	}
}

func TestCodecRejectsForgedPayload(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), "sess", false, time.Hour)

	v, err := codec.Encode(Session{Token: "tok-123", IssuedAt: time.Now()})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := strings.SplitN(v, ".", 2)

	// Forge an admin payload but keep the original signature.
	forged, _ := json.Marshal(Session{Token: "tok-123", IsAdmin: true, IssuedAt: time.Now()})
	payload := base64.RawURLEncoding.EncodeToString(forged)
	if _, err := codec.Decode(payload + "." + parts[1]); err == nil {
		t.Error("forged payload should not verify against the old signature")
	}

	if _, err := codec.Decode("no-dot-here"); err == nil {
		t.Error("malformed value should not decode")
	}
}

package sealer

import (
	"encoding/base64"
	"strings"
	"testing"
)

const testKey = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

func TestSealRoundTrip(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := s.Seal("sess-4f2c1a")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if strings.Contains(token, "sess-4f2c1a") {
		t.Fatal("sealed token leaks the plaintext")
	}

	got, err := s.Open(token)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got != "sess-4f2c1a" {
		t.Errorf("Open = %q, want %q", got, "sess-4f2c1a")
	}
}

func TestSealProducesUniqueTokens(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, _ := s.Seal("same")
	b, _ := s.Seal("same")
	if a == b {
		t.Error("expected random nonces to produce distinct tokens")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, _ := s.Seal("sess-4f2c1a")
	raw, _ := base64.RawURLEncoding.DecodeString(token)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := s.Open(tampered); err == nil {
		t.Error("expected tampered token to fail authentication")
	}
}

func TestNewRejectsBadKeys(t *testing.T) {
	if _, err := New("not base64!!"); err == nil {
		t.Error("expected invalid base64 key to be rejected")
	}
	short := base64.StdEncoding.EncodeToString([]byte("tooshort"))
	if _, err := New(short); err == nil {
		t.Error("expected short key to be rejected")
	}
}

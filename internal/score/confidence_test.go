package score

import (
	"testing"

	"github.com/leakhound/leakhound/internal/types"
)

func TestConfidenceAccessKeyOverride(t *testing.T) {
	got := Confidence(types.KindAWSAccessKey, "AKIA1234567890ABCDEF", "")
	if got != 95.0 {
		t.Fatalf("confidence = %v, want 95", got)
	}
}

func TestConfidenceSecretKeyOverride(t *testing.T) {
	got := Confidence(types.KindAWSSecretKey, "AbCdEfGhIjKlMnOpQrStUvWxYz0123456789ABCD", "")
	if got != 90.0 {
		t.Fatalf("confidence = %v, want 90", got)
	}
}

func TestConfidenceJWTOverride(t *testing.T) {
	if got := Confidence(types.KindJWTToken, "eyJa.eyJb.sig", ""); got != 85.0 {
		t.Fatalf("confidence = %v, want 85", got)
	}
	// A malformed token with the wrong dot count keeps the base score.
	if got := Confidence(types.KindJWTToken, "eyJa.eyJb", ""); got != 70.0 {
		t.Fatalf("confidence = %v, want 70", got)
	}
}

func TestConfidenceSendGridOverride(t *testing.T) {
	if got := Confidence(types.KindSendGridKey, "SG.a.b.c.d", ""); got != 80.0 {
		t.Fatalf("confidence = %v, want 80", got)
	}
}

func TestConfidenceKeywordBonuses(t *testing.T) {
	// "production" also contains "prod", and "api" matches on its own:
	// three distinct keywords, each worth 2.5.
	got := Confidence(types.KindGenericAPIKey, "tok_abcdefghijklmnopqrstuvwxyz123456", "production api")
	if got != 77.5 {
		t.Fatalf("confidence = %v, want 77.5", got)
	}
}

func TestConfidenceCrossValidationBonus(t *testing.T) {
	// A 39-char value skips the length override, isolating the pairing
	// bonus granted when the matching access key sits in the same blob.
	value := "AbCdEfGhIjKlMnOpQrStUvWxYz0123456789ABC"
	without := Confidence(types.KindAWSSecretKey, value, "AKIA is mentioned but truncated")
	with := Confidence(types.KindAWSSecretKey, value, "AKIA1234567890ABCDEF")
	if without != 70.0 {
		t.Fatalf("baseline confidence = %v, want 70", without)
	}
	if with != 80.0 {
		t.Fatalf("corroborated confidence = %v, want 80", with)
	}
}

func TestConfidenceFileHintBonusOnce(t *testing.T) {
	// Multiple hints still add a single bonus; "credentials" also trips
	// the "credential" keyword.
	got := Confidence(types.KindGenericAPIKey, "tok_abcdefghijklmnopqrstuvwxyz123456", "loaded from .env and config and credentials")
	if got != 74.5 {
		t.Fatalf("confidence = %v, want 74.5", got)
	}
}

func TestConfidenceClamp(t *testing.T) {
	got := Confidence(types.KindAWSAccessKey, "AKIA1234567890ABCDEF", "production api key secret credential")
	if got != 99.0 {
		t.Fatalf("confidence = %v, want clamp at 99", got)
	}
}

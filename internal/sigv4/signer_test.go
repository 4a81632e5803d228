package sigv4

import (
	"strings"
	"testing"
)

func baseHeaders() map[string]string {
	return map[string]string{
		"Host":         "email.us-east-1.amazonaws.com",
		DateHeader:     "20240115T120000Z",
		"Content-Type": "application/x-www-form-urlencoded",
	}
}

func TestSignDeterministic(t *testing.T) {
	h1, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", baseHeaders(),
		"Action=GetSendQuota&Version=2010-12-01", "AKIA1234567890ABCDEF", "secret", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	h2, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", baseHeaders(),
		"Action=GetSendQuota&Version=2010-12-01", "AKIA1234567890ABCDEF", "secret", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if h1["Authorization"] != h2["Authorization"] {
		t.Fatalf("same inputs produced different signatures:\n%s\n%s", h1["Authorization"], h2["Authorization"])
	}
}

func TestSignAuthorizationShape(t *testing.T) {
	signed, err := Sign("POST", "https://email.eu-west-1.amazonaws.com/", baseHeaders(),
		"Action=GetSendQuota&Version=2010-12-01", "AKIA1234567890ABCDEF", "secret", "eu-west-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	auth := signed["Authorization"]
	if !strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIA1234567890ABCDEF/20240115/eu-west-1/ses/aws4_request, ") {
		t.Fatalf("unexpected credential scope: %s", auth)
	}
	if !strings.Contains(auth, "SignedHeaders=content-type;host;x-amz-date, ") {
		t.Fatalf("unexpected signed header list: %s", auth)
	}
	sigIdx := strings.Index(auth, "Signature=")
	if sigIdx < 0 {
		t.Fatalf("no signature component: %s", auth)
	}
	sig := auth[sigIdx+len("Signature="):]
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64 hex chars", len(sig))
	}
}

func TestSignLeavesInputUntouched(t *testing.T) {
	headers := baseHeaders()
	signed, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", headers,
		"", "AKIA1234567890ABCDEF", "secret", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, ok := headers["Authorization"]; ok {
		t.Fatalf("input header map was mutated")
	}
	if _, ok := signed["Authorization"]; !ok {
		t.Fatalf("signed map is missing Authorization")
	}
	if signed["Host"] != headers["Host"] {
		t.Fatalf("original headers not carried over")
	}
}

func TestSignSecretChangesSignature(t *testing.T) {
	a, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", baseHeaders(),
		"payload", "AKIA1234567890ABCDEF", "secret-one", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	b, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", baseHeaders(),
		"payload", "AKIA1234567890ABCDEF", "secret-two", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if a["Authorization"] == b["Authorization"] {
		t.Fatalf("different secrets produced the same signature")
	}
}

func TestSignMissingDateHeader(t *testing.T) {
	headers := map[string]string{"Host": "email.us-east-1.amazonaws.com"}
	if _, err := Sign("POST", "https://email.us-east-1.amazonaws.com/", headers,
		"", "AKIA1234567890ABCDEF", "secret", "us-east-1"); err == nil {
		t.Fatalf("expected error for missing %s header", DateHeader)
	}
}

func TestSignEmptyPathDefaultsToRoot(t *testing.T) {
	// A URL with no path still yields a valid canonical request.
	signed, err := Sign("GET", "https://email.us-east-1.amazonaws.com", baseHeaders(),
		"", "AKIA1234567890ABCDEF", "secret", "us-east-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if signed["Authorization"] == "" {
		t.Fatalf("empty Authorization")
	}
}

func TestCanonicalizeQueryOrdering(t *testing.T) {
	got := canonicalizeQuery("b=2&a=1&a=0")
	if got != "a=1&a=0&b=2" {
		t.Fatalf("canonical query = %q", got)
	}
	if canonicalizeQuery("") != "" {
		t.Fatalf("empty query should stay empty")
	}
}

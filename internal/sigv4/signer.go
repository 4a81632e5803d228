// Package sigv4 implements the AWS Signature Version 4 request signing
// scheme, scoped to the SES service used for credential verification. A
// signed request authenticates a verification call without ever sending
// the secret key over the wire.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	algorithm   = "AWS4-HMAC-SHA256"
	serviceName = "ses"
	terminator  = "aws4_request"
	// DateHeader carries the request timestamp in YYYYMMDD'T'HHMMSS'Z'
	// form; its first eight characters scope the derived signing key.
	DateHeader = "X-Amz-Date"
)

// Sign returns a copy of headers with an Authorization value computed over
// (method, rawURL, headers, payload). The result is a pure function of its
// inputs: the timestamp is read from the X-Amz-Date header, so identical
// inputs always produce identical signatures.
func Sign(method, rawURL string, headers map[string]string, payload, accessKey, secretKey, region string) (map[string]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	timestamp, ok := headers[DateHeader]
	if !ok || len(timestamp) < 8 {
		return nil, fmt.Errorf("missing or short %s header", DateHeader)
	}
	date := timestamp[:8]

	canonicalHeaders, signedHeaders := canonicalizeHeaders(headers)
	payloadHash := hexSHA256([]byte(payload))
	canonicalRequest := strings.Join([]string{
		method,
		path,
		canonicalizeQuery(u.RawQuery),
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")

	scope := strings.Join([]string{date, region, serviceName, terminator}, "/")
	stringToSign := strings.Join([]string{
		algorithm,
		timestamp,
		scope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	kDate := hmacSHA256([]byte("AWS4"+secretKey), date)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, serviceName)
	kSigning := hmacSHA256(kService, terminator)
	signature := hex.EncodeToString(hmacSHA256(kSigning, stringToSign))

	signed := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		signed[k] = v
	}
	signed["Authorization"] = fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, accessKey, scope, signedHeaders, signature)
	return signed, nil
}

// canonicalizeHeaders lowercases names, trims values and joins them as
// name:value lines in ascending name order, each terminated by a newline.
// The second return value is the semicolon-joined signed-header list.
func canonicalizeHeaders(headers map[string]string) (string, string) {
	names := make([]string, 0, len(headers))
	byName := make(map[string]string, len(headers))
	for k, v := range headers {
		lk := strings.ToLower(k)
		names = append(names, lk)
		byName[lk] = strings.TrimSpace(v)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte(':')
		b.WriteString(byName[n])
		b.WriteByte('\n')
	}
	return b.String(), strings.Join(names, ";")
}

// canonicalizeQuery sorts query parameters lexicographically by key,
// keeping the relative order of duplicate keys and the original encoding.
func canonicalizeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	params := strings.Split(rawQuery, "&")
	sort.SliceStable(params, func(i, j int) bool {
		ki, _, _ := strings.Cut(params[i], "=")
		kj, _, _ := strings.Cut(params[j], "=")
		return ki < kj
	})
	return strings.Join(params, "&")
}

func hexSHA256(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, msg string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msg))
	return mac.Sum(nil)
}

package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign returns the lowercase hex HMAC-SHA256 of body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the supplied hex signature against the HMAC of the exact bytes received.
// The comparison runs in constant time over the decoded digests.
func Verify(secret, body []byte, supplied string) bool {
	if len(secret) == 0 || supplied == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(supplied))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), got)
}

// CorrelationRef binds a set of identifiers under secret so they cannot be edited
// independently once they have travelled through a third party.
func CorrelationRef(secret []byte, parts ...string) string {
	return Sign(secret, []byte(strings.Join(parts, "|")))
}

func VerifyCorrelationRef(secret []byte, ref string, parts ...string) bool {
	return Verify(secret, []byte(strings.Join(parts, "|")), ref)
}

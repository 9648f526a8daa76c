//go:build unit

package signature_test

import (
	"testing"

	"ticket-marketplace/internal/pkg/signature"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	secret := []byte("whsec_test")
	body := []byte(`{"event":"payment.captured"}`)
	valid := signature.Sign(secret, body)

	testCases := []struct {
		name     string
		secret   []byte
		body     []byte
		supplied string
		want     bool
	}{
		{name: "success: matching signature", secret: secret, body: body, supplied: valid, want: true},
		{name: "success: uppercase hex is accepted", secret: secret, body: body, supplied: upper(valid), want: true},
		{name: "error: body altered by one byte", secret: secret, body: []byte(`{"event":"payment.captureD"}`), supplied: valid, want: false},
		{name: "error: different secret", secret: []byte("other"), body: body, supplied: valid, want: false},
		{name: "error: empty signature", secret: secret, body: body, supplied: "", want: false},
		{name: "error: not hex", secret: secret, body: body, supplied: "zz-not-hex", want: false},
		{name: "error: truncated digest", secret: secret, body: body, supplied: valid[:32], want: false},
		{name: "error: empty secret never verifies", secret: nil, body: body, supplied: signature.Sign(nil, body), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, signature.Verify(tc.secret, tc.body, tc.supplied))
		})
	}
}

func TestCorrelationRef(t *testing.T) {
	secret := []byte("key_secret")
	ref := signature.CorrelationRef(secret, "event", "user", "entry")

	assert.True(t, signature.VerifyCorrelationRef(secret, ref, "event", "user", "entry"))
	assert.False(t, signature.VerifyCorrelationRef(secret, ref, "event", "other-user", "entry"))
	assert.False(t, signature.VerifyCorrelationRef(secret, ref, "event", "user"))
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

package superfeedr

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// DeriveSecret returns the lowercase hex SHA-1 of raw.
// This is what the hub receives as hub.secret and signs notifications with.
func DeriveSecret(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Sign returns the lowercase hex HMAC-SHA1 of content keyed by derivedSecret,
// i.e. the signature the hub attaches to a notification carrying content.
func Sign(derivedSecret string, content []byte) string {
	mac := hmac.New(sha1.New, []byte(derivedSecret))
	mac.Write(content)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateRequest reports whether signature is the hub's signature of content.
// It never fails: an empty or malformed signature is simply not valid.
func (c *Client) ValidateRequest(signature string, content []byte) bool {
	expected := Sign(c.secret, content)
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
}

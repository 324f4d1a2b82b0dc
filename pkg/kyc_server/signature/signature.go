// Package signature implements the HMAC-SHA256 scheme used to sign outbound
// webhook payloads and to verify inbound webhooks on the consumer side.
//
// The digest is computed over "<timestamp>.<payload>" where timestamp is unix
// milliseconds. Outbound deliveries carry the digest and the timestamp in
// separate headers. Consumers verify the composite "<timestamp>.<hexdigest>"
// form against the raw request body.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sign returns the lowercase hex HMAC-SHA256 digest of "<ts>.<payload>".
func Sign(ts int64, payload []byte, secret string) string {
	return sign(strconv.FormatInt(ts, 10), payload, secret)
}

// Composite returns the "<ts>.<hexdigest>" form consumed by Verify.
func Composite(ts int64, payload []byte, secret string) string {
	return fmt.Sprintf("%d.%s", ts, Sign(ts, payload, secret))
}

// Verify checks a composite signature against the payload and secret.
// The digest is recomputed with the timestamp embedded in the composite, so
// a tampered timestamp fails the comparison. A malformed composite (no
// separator, empty parts) is a verification failure, not an error.
func Verify(composite string, payload []byte, secret string) bool {
	ts, digest, ok := splitComposite(composite)
	if !ok {
		return false
	}

	supplied, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	expected, err := hex.DecodeString(sign(ts, payload, secret))
	if err != nil {
		return false
	}
	return hmac.Equal(expected, supplied)
}

// VerifyWithMaxAge is Verify with a bound on how old the embedded timestamp
// may be. It rejects replayed signatures older than maxAge relative to now.
func VerifyWithMaxAge(composite string, payload []byte, secret string, maxAge time.Duration, now time.Time) bool {
	tsRaw, _, ok := splitComposite(composite)
	if !ok {
		return false
	}
	ts, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return false
	}
	if now.UnixMilli()-ts > maxAge.Milliseconds() {
		return false
	}
	return Verify(composite, payload, secret)
}

func sign(ts string, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func splitComposite(composite string) (string, string, bool) {
	idx := strings.Index(composite, ".")
	if idx <= 0 || idx == len(composite)-1 {
		return "", "", false
	}
	return composite[:idx], composite[idx+1:], true
}

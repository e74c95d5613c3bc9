package referral

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
)

// ErrNotConfigured is returned when either signing secret is absent. This is
// an operational fault, callers must not report it as a bad request.
var ErrNotConfigured = errors.New("referral fingerprint secrets are not configured")

// FingerprinterI signs (timestamp, referral code) pairs so that pixel
// callbacks can prove the pair was minted by this server.
type FingerprinterI interface {
	Sign(tsMillis int64, referralCode string) (string, error)
	Verify(tsMillis int64, referralCode, signature string) (bool, error)
}

type Fingerprinter struct {
	secret    string
	extraSalt string
}

func NewFingerprinter(secret, extraSalt string) *Fingerprinter {
	return &Fingerprinter{secret: secret, extraSalt: extraSalt}
}

// Sign computes hex(HMAC_SHA256(secret, ts || code || salt || code)).
// Deterministic: freshness and one-time use are the caller's concern.
func (f *Fingerprinter) Sign(tsMillis int64, referralCode string) (string, error) {
	if f.secret == "" || f.extraSalt == "" {
		return "", ErrNotConfigured
	}
	message := strconv.FormatInt(tsMillis, 10) + referralCode + f.extraSalt + referralCode
	mac := hmac.New(sha256.New, []byte(f.secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (f *Fingerprinter) Verify(tsMillis int64, referralCode, signature string) (bool, error) {
	expected, err := f.Sign(tsMillis, referralCode)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

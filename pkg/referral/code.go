package referral

import (
	"crypto/rand"
	"math/big"
)

const (
	codePrefix     = "MUMB"
	codeRandomLen  = 8
	codeCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateCode returns a fresh referral code: MUMB followed by 8 random
// uppercase-alphanumeric characters. Uniqueness is the caller's job.
func GenerateCode() string {
	buf := make([]byte, codeRandomLen)
	max := big.NewInt(int64(len(codeCharacters)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken
			panic(err)
		}
		buf[i] = codeCharacters[n.Int64()]
	}
	return codePrefix + string(buf)
}

package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s passes the Luhn check. Used for partner payout
// card numbers.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

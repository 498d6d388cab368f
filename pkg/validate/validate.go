package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s passes the Luhn check (card numbers).
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsFiscalNumber validates a 9-digit fiscal number with a mod-11 check
// digit over the first eight positions.
func IsFiscalNumber(s string) bool {
	if len(s) != 9 {
		return false
	}
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		if i < 8 {
			sum += int(r-'0') * (9 - i)
		}
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == int(s[8]-'0')
}

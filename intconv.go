package bigint

import (
	"fmt"
)

// IntFromString creates an Int of the given bit width from a decimal
// string: an optional leading '+' or '-' followed by one or more
// digits. Values that do not fit the width wrap modulo 2^bits. Only
// decimal strings are supported.
func IntFromString(bits uint, s string) (out Int, err error) {
	out = New(bits)
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return New(bits), fmt.Errorf("bigint: string %q invalid", s)
	}
	for k := 0; k < len(digits); k++ {
		c := digits[k]
		if c < '0' || c > '9' {
			return New(bits), fmt.Errorf("bigint: string %q invalid", s)
		}
		magMulAdd(out.limbs, 10, uint64(c-'0'))
	}
	if neg {
		magNeg(out.limbs)
	}
	signExtend(out.limbs, bits)
	return out, nil
}

// String returns the canonical decimal representation of i: an optional
// leading '-', then digits with no leading zeros. Zero is "0".
func (i Int) String() string {
	mag := i.magnitude()
	if magIsZero(mag) {
		return "0"
	}

	// 20 digits per limb always suffices, plus one byte for the sign.
	buf := make([]byte, 0, len(mag)*20+1)
	for !magIsZero(mag) {
		buf = append(buf, byte('0'+magQuoRemSmall(mag, 10)))
	}
	if i.isNeg() {
		buf = append(buf, '-')
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}

func (i Int) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

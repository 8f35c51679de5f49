package bigint

import (
	"math/bits"
)

// Add returns i + n. Overflow wraps modulo 2^width.
func (i Int) Add(n Int) (out Int) {
	i.mustMatch(n)
	out = New(i.bits)
	var carry uint64
	for k := range out.limbs {
		out.limbs[k], carry = bits.Add64(i.limbs[k], n.limbs[k], carry)
	}
	signExtend(out.limbs, i.bits)
	return out
}

// Sub returns i - n. Overflow wraps modulo 2^width.
func (i Int) Sub(n Int) (out Int) {
	i.mustMatch(n)
	out = New(i.bits)
	var borrow uint64
	for k := range out.limbs {
		out.limbs[k], borrow = bits.Sub64(i.limbs[k], n.limbs[k], borrow)
	}
	signExtend(out.limbs, i.bits)
	return out
}

// Neg returns -i. The minimum value of a width has no positive
// counterpart and negates to itself; this is the documented wraparound,
// not an error.
func (i Int) Neg() (out Int) {
	out = New(i.bits)
	copy(out.limbs, i.limbs)
	magNeg(out.limbs)
	signExtend(out.limbs, i.bits)
	return out
}

// Abs returns |i|. Like Neg, the minimum value of a width is its own
// absolute value.
func (i Int) Abs() Int {
	if !i.isNeg() {
		return i
	}
	return i.Neg()
}

func (i Int) Inc() (out Int) {
	out = New(i.bits)
	carry := uint64(1)
	for k, l := range i.limbs {
		out.limbs[k], carry = bits.Add64(l, 0, carry)
	}
	signExtend(out.limbs, i.bits)
	return out
}

func (i Int) Dec() (out Int) {
	out = New(i.bits)
	borrow := uint64(1)
	for k, l := range i.limbs {
		out.limbs[k], borrow = bits.Sub64(l, 0, borrow)
	}
	signExtend(out.limbs, i.bits)
	return out
}

// Mul returns the product i * n: schoolbook multiplication of the
// operand magnitudes into a double-width accumulator, truncated to the
// operand width. The result sign is the XOR of the operand signs.
func (i Int) Mul(n Int) (out Int) {
	i.mustMatch(n)
	neg := i.isNeg() != n.isNeg()
	prod := magMul(i.magnitude(), n.magnitude())
	out = Int{bits: i.bits, limbs: prod[:len(i.limbs)]}
	if neg {
		magNeg(out.limbs)
	}
	signExtend(out.limbs, i.bits)
	return out
}

// QuoRem returns the quotient q and remainder r for by != 0. If by ==
// 0, a division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated to zero
//	r = i - by*q
//
// so the remainder takes the sign of the dividend and |r| < |by|.
// QuoRem does not support big.Int.DivMod()-style Euclidean division.
func (i Int) QuoRem(by Int) (q, r Int) {
	i.mustMatch(by)
	if by.IsZero() {
		panic("bigint: division by zero")
	}
	qNeg := i.isNeg() != by.isNeg()
	rNeg := i.isNeg()

	qm, rm := magQuoRem(i.magnitude(), by.magnitude())
	q = Int{bits: i.bits, limbs: qm}
	r = Int{bits: i.bits, limbs: rm}
	if qNeg {
		magNeg(q.limbs)
	}
	if rNeg {
		magNeg(r.limbs)
	}
	signExtend(q.limbs, i.bits)
	signExtend(r.limbs, i.bits)
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (i Int) Quo(by Int) (q Int) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (i Int) Rem(by Int) (r Int) {
	_, r = i.QuoRem(by)
	return r
}

// Limb kernels. All mag* functions treat their arguments as unsigned
// little-endian limb sequences of equal length.

func limbsFor(bits uint) int { return int((bits + 63) / 64) }

// signPos returns the limb index and in-limb bit position of the sign
// bit for the given width. The sign bit always lives in the top limb.
func signPos(bits uint) (limb int, shift uint) {
	if bits == 0 {
		panic("bigint: use of uninitialized Int")
	}
	return int((bits - 1) / 64), (bits - 1) % 64
}

// signExtend reduces limbs modulo 2^bits in place by replicating the
// sign bit through every position above it. Every operation funnels its
// result through here; this is the single point where wraparound
// happens.
func signExtend(limbs []uint64, bits uint) {
	top, shift := signPos(bits)
	keep := ^uint64(0) >> (63 - shift)
	if limbs[top]&(1<<shift) != 0 {
		limbs[top] |= ^keep
	} else {
		limbs[top] &= keep
	}
}

func magIsZero(limbs []uint64) bool {
	for _, l := range limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// magNeg negates limbs in place: complement of every limb, plus one.
func magNeg(limbs []uint64) {
	carry := uint64(1)
	for k, l := range limbs {
		limbs[k], carry = bits.Add64(^l, 0, carry)
	}
}

// magCmp compares a and b as unsigned values, most significant limb
// first.
func magCmp(a, b []uint64) int {
	for k := len(a) - 1; k >= 0; k-- {
		if a[k] > b[k] {
			return 1
		} else if a[k] < b[k] {
			return -1
		}
	}
	return 0
}

// magSub sets a = a - b. a must be >= b.
func magSub(a, b []uint64) {
	var borrow uint64
	for k := range a {
		a[k], borrow = bits.Sub64(a[k], b[k], borrow)
	}
}

// magShl1 shifts limbs left by one bit in place, discarding the bit
// shifted out of the top limb.
func magShl1(limbs []uint64) {
	var carry uint64
	for k, l := range limbs {
		limbs[k] = l<<1 | carry
		carry = l >> 63
	}
}

// magBitLen returns the position of the highest set bit plus one, or 0
// if all limbs are zero.
func magBitLen(limbs []uint64) int {
	for k := len(limbs) - 1; k >= 0; k-- {
		if limbs[k] != 0 {
			return k*64 + bits.Len64(limbs[k])
		}
	}
	return 0
}

// magMulAdd sets limbs = limbs*m + a, discarding any carry out of the
// top limb.
func magMulAdd(limbs []uint64, m, a uint64) {
	carry := a
	for k, l := range limbs {
		hi, lo := bits.Mul64(l, m)
		lo, c := bits.Add64(lo, carry, 0)
		limbs[k] = lo
		carry = hi + c
	}
}

// magMul returns the full unsigned product of a and b as a fresh
// len(a)+len(b) limb sequence.
func magMul(a, b []uint64) []uint64 {
	out := make([]uint64, len(a)+len(b))
	for i, x := range a {
		var carry uint64
		for j, y := range b {
			hi, lo := bits.Mul64(x, y)
			lo, c := bits.Add64(lo, out[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			out[i+j] = lo
			carry = hi
		}
		out[i+len(b)] = carry
	}
	return out
}

// magQuoRemSmall sets mag = mag / by in place and returns mag % by.
// by must be nonzero.
func magQuoRemSmall(mag []uint64, by uint64) (rem uint64) {
	for k := len(mag) - 1; k >= 0; k-- {
		mag[k], rem = bits.Div64(rem, mag[k], by)
	}
	return rem
}

// magQuoRem computes the unsigned quotient and remainder of u by `by`
// using binary long division: the remainder is built up one dividend
// bit at a time from the most significant end, subtracting the divisor
// whenever it fits and recording a quotient bit. by must be nonzero.
func magQuoRem(u, by []uint64) (q, r []uint64) {
	q = make([]uint64, len(u))
	r = make([]uint64, len(u))

	uLen, byLen := magBitLen(u), magBitLen(by)
	if uLen <= 64 && byLen <= 64 {
		q[0], r[0] = u[0]/by[0], u[0]%by[0]
		return q, r
	}
	if byLen > uLen {
		copy(r, u) // it's 100% remainder
		return q, r
	}

	for k := uLen - 1; k >= 0; k-- {
		magShl1(r)
		r[0] |= u[k/64] >> (uint(k) % 64) & 1
		if magCmp(r, by) >= 0 {
			magSub(r, by)
			q[k/64] |= 1 << (uint(k) % 64)
		}
	}
	return q, r
}

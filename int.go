package bigint

import (
	"fmt"
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var bigMaxUint64 = new(big.Int).SetUint64(maxUint64)

// Int is an immutable signed integer of a fixed bit width, interpreted
// as a two's-complement value modulo 2^width. The width is chosen at
// construction time and carried by every value; operands of an
// operation must share it, and every result keeps it.
//
// The limbs are stored little-endian and kept in canonical form: every
// bit above the sign bit replicates it, so the top limb is always fully
// sign-extended.
//
// The zero value of Int has no width and is not usable; its methods
// panic. Construct Ints with New or one of the IntFrom constructors. Use Equal or Cmp for
// comparisons; '==' does not work on Ints.
type Int struct {
	bits  uint
	limbs []uint64
}

// New returns the zero Int of the given bit width. It panics if bits is
// zero.
func New(bits uint) Int {
	if bits == 0 {
		panic("bigint: zero bit width")
	}
	return Int{bits: bits, limbs: make([]uint64, limbsFor(bits))}
}

// IntFrom64 creates an Int of the given bit width from v. Values that
// do not fit the width wrap modulo 2^bits.
func IntFrom64(bits uint, v int64) Int {
	out := New(bits)
	out.limbs[0] = uint64(v)
	if v < 0 {
		for k := 1; k < len(out.limbs); k++ {
			out.limbs[k] = maxUint64
		}
	}
	signExtend(out.limbs, bits)
	return out
}

func IntFrom32(bits uint, v int32) Int { return IntFrom64(bits, int64(v)) }
func IntFrom16(bits uint, v int16) Int { return IntFrom64(bits, int64(v)) }
func IntFrom8(bits uint, v int8) Int   { return IntFrom64(bits, int64(v)) }
func IntFromInt(bits uint, v int) Int  { return IntFrom64(bits, int64(v)) }

// IntFromRaw is the complement to Int.Raw(); it creates an Int of the
// given width from little-endian limbs. Input beyond the width is
// truncated, shorter input is zero-extended.
func IntFromRaw(bits uint, limbs []uint64) Int {
	out := New(bits)
	copy(out.limbs, limbs)
	signExtend(out.limbs, bits)
	return out
}

// IntFromBigInt creates an Int of the given width from a big.Int.
// Values outside the width wrap modulo 2^bits; accurate reports whether
// v was representable without wrapping.
func IntFromBigInt(bits uint, v *big.Int) (out Int, accurate bool) {
	out = New(bits)
	abs := new(big.Int).Abs(v)
	var word big.Int
	for k := range out.limbs {
		out.limbs[k] = word.And(abs, bigMaxUint64).Uint64()
		abs.Rsh(abs, 64)
	}
	if v.Sign() < 0 {
		magNeg(out.limbs)
	}
	signExtend(out.limbs, bits)
	return out, out.AsBigInt().Cmp(v) == 0
}

// MaxInt returns the largest Int representable at the given width,
// 2^(bits-1) - 1.
func MaxInt(bits uint) Int {
	out := New(bits)
	top, shift := signPos(bits)
	for k := 0; k < top; k++ {
		out.limbs[k] = maxUint64
	}
	out.limbs[top] = 1<<shift - 1
	return out
}

// MinInt returns the smallest Int representable at the given width,
// -2^(bits-1).
func MinInt(bits uint) Int {
	out := New(bits)
	top, shift := signPos(bits)
	out.limbs[top] = ^uint64(0) << shift
	return out
}

// BitWidth returns the fixed width of the Int in bits.
func (i Int) BitWidth() uint { return i.bits }

// Raw returns a copy of the Int's little-endian limbs. See IntFromRaw()
// for the counterpart.
func (i Int) Raw() []uint64 {
	out := make([]uint64, len(i.limbs))
	copy(out, i.limbs)
	return out
}

func (i Int) IsZero() bool { return magIsZero(i.limbs) }

func (i Int) Sign() int {
	if magIsZero(i.limbs) {
		return 0
	} else if i.isNeg() {
		return -1
	}
	return 1
}

func (i Int) isNeg() bool {
	top, shift := signPos(i.bits)
	return i.limbs[top]&(1<<shift) != 0
}

// magnitude returns |i| as a fresh unsigned little-endian limb
// sequence.
func (i Int) magnitude() []uint64 {
	out := make([]uint64, len(i.limbs))
	copy(out, i.limbs)
	if i.isNeg() {
		magNeg(out)
	}
	return out
}

func (i Int) mustMatch(n Int) {
	if i.bits != n.bits {
		panic(fmt.Sprintf("bigint: mismatched bit widths %d and %d", i.bits, n.bits))
	}
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed
// to satisfy the above constraints. Cmp panics if n has a different
// width.
func (i Int) Cmp(n Int) int {
	i.mustMatch(n)
	in, nn := i.isNeg(), n.isNeg()
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	// Same sign: canonical sign extension makes two's-complement order
	// identical to unsigned limb order.
	return magCmp(i.limbs, n.limbs)
}

func (i Int) Equal(n Int) bool {
	i.mustMatch(n)
	for k, l := range i.limbs {
		if l != n.limbs[k] {
			return false
		}
	}
	return true
}

func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	neg := i.isNeg()
	mag := i.magnitude()
	b.SetUint64(0)
	var t big.Int
	for k := len(mag) - 1; k >= 0; k-- {
		b.Lsh(b, 64)
		b.Or(b, t.SetUint64(mag[k]))
	}
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64. Values outside the
// range will over/underflow. See IsInt64() if you want to check before
// you convert.
func (i Int) AsInt64() int64 {
	return int64(i.limbs[0])
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	ext := uint64(int64(i.limbs[0]) >> 63)
	for _, l := range i.limbs[1:] {
		if l != ext {
			return false
		}
	}
	return true
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	if i.bits == 0 {
		return fmt.Errorf("bigint: cannot unmarshal into zero-width Int")
	}
	v, err := IntFromString(i.bits, string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}

package bigint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func magBig(mag []uint64) *big.Int {
	b := new(big.Int)
	var t big.Int
	for k := len(mag) - 1; k >= 0; k-- {
		b.Lsh(b, 64)
		b.Or(b, t.SetUint64(mag[k]))
	}
	return b
}

func TestMagMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b []uint64
	}{
		{[]uint64{0}, []uint64{0}},
		{[]uint64{2}, []uint64{3}},
		{[]uint64{maxUint64}, []uint64{maxUint64}},
		{[]uint64{maxUint64, maxUint64}, []uint64{maxUint64, maxUint64}},
		{[]uint64{1, 2, 3}, []uint64{maxUint64, 0, maxUint64}},
		{[]uint64{0x8AC7230489E7FFFF, 0x1}, []uint64{0xDE0B6B3A7640000, 0x2}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			exp := new(big.Int).Mul(magBig(tc.a), magBig(tc.b))
			tt.MustEqual(exp.String(), magBig(magMul(tc.a, tc.b)).String())
		})
	}
}

func TestMagQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by []uint64
	}{
		{[]uint64{5}, []uint64{2}},
		{[]uint64{0}, []uint64{3}},
		{[]uint64{maxUint64, maxUint64}, []uint64{10, 0}},
		{[]uint64{maxUint64, maxUint64}, []uint64{maxUint64, 1}},
		{[]uint64{1, 0, 1}, []uint64{0, 1, 0}},
		{[]uint64{0x1, 0x2, 0x3}, []uint64{0xFFFF, 0x0, 0x0}},
		{[]uint64{7, 0}, []uint64{0, 1}}, // dividend smaller than divisor
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			expq, expr := new(big.Int).QuoRem(magBig(tc.u), magBig(tc.by), new(big.Int))
			q, r := magQuoRem(tc.u, tc.by)
			tt.MustEqual(expq.String(), magBig(q).String())
			tt.MustEqual(expr.String(), magBig(r).String())
		})
	}
}

func TestMagQuoRemSmall(t *testing.T) {
	tt := assert.WrapTB(t)
	mag := []uint64{maxUint64, maxUint64, maxUint64}
	exp, expRem := new(big.Int).QuoRem(magBig(mag), new(big.Int).SetUint64(10), new(big.Int))
	rem := magQuoRemSmall(mag, 10)
	tt.MustEqual(expRem.Uint64(), rem)
	tt.MustEqual(exp.String(), magBig(mag).String())
}

func TestMagMulAdd(t *testing.T) {
	tt := assert.WrapTB(t)
	mag := []uint64{maxUint64, maxUint64 >> 8}
	exp := new(big.Int).Mul(magBig(mag), new(big.Int).SetUint64(10))
	exp.Add(exp, new(big.Int).SetUint64(7))
	magMulAdd(mag, 10, 7)
	tt.MustEqual(exp.String(), magBig(mag).String())
}

func TestMagBitLen(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, magBitLen([]uint64{0, 0}))
	tt.MustEqual(1, magBitLen([]uint64{1, 0}))
	tt.MustEqual(64, magBitLen([]uint64{1 << 63, 0}))
	tt.MustEqual(65, magBitLen([]uint64{0, 1}))
	tt.MustEqual(128, magBitLen([]uint64{0, 1 << 63}))
}

func TestSignExtend(t *testing.T) {
	for idx, tc := range []struct {
		bits uint
		in   []uint64
		out  []uint64
	}{
		{8, []uint64{0x80}, []uint64{0xFFFFFFFFFFFFFF80}},
		{8, []uint64{0x7F}, []uint64{0x7F}},
		{8, []uint64{0x17F}, []uint64{0x7F}},
		{64, []uint64{maxUint64}, []uint64{maxUint64}},
		{65, []uint64{0, 1}, []uint64{0, maxUint64}},
		{65, []uint64{maxUint64, 0}, []uint64{maxUint64, 0}},
		{100, []uint64{0, 1 << 35}, []uint64{0, 0xFFFFFFF800000000}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			limbs := make([]uint64, len(tc.in))
			copy(limbs, tc.in)
			signExtend(limbs, tc.bits)
			tt.MustEqual(tc.out, limbs)
		})
	}
}

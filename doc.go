/*
Package bigint provides a signed integer type (Int) of fixed,
caller-chosen bit width, implementing wrapping two's-complement
arithmetic.

Int is a value type; all operations return new values and never mutate
their operands, so independent Ints may be used from multiple goroutines
without synchronisation.

Simple example:

	a, _ := bigint.IntFromString(200, "1234567890001")
	b, _ := bigint.IntFromString(200, "9876543210001")
	fmt.Println(a.Mul(b))
	// Output: 12193263111274638011100001

Ints can be created from a variety of sources:

	New(bits uint) Int
	IntFrom64(bits uint, v int64) Int
	IntFrom32(bits uint, v int32) Int
	IntFrom16(bits uint, v int16) Int
	IntFrom8(bits uint, v int8) Int
	IntFromInt(bits uint, v int) Int
	IntFromRaw(bits uint, limbs []uint64) Int
	IntFromString(bits uint, s string) (out Int, err error)
	IntFromBigInt(bits uint, v *big.Int) (out Int, accurate bool)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Overflow is never an error: every result is reduced modulo 2^width
before it is returned, for every operation. Division by zero panics.
Decimal parsing is the only operation that returns an error.
*/
package bigint

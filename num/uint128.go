// Package num provides Uint128, the unsigned 128-bit integer used for raw
// amounts and for the atomics of decimal values.
//
// Uint128 is an immutable value type backed by [uint256.Int] whose two upper
// limbs are always zero. Arithmetic methods report overflow through an ok flag
// instead of wrapping around.
package num

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Uint128 is an unsigned 128-bit integer.
// The zero value is 0.
type Uint128 struct {
	u uint256.Int
}

var (
	errInvalidUint = errors.New("invalid unsigned integer")
	errUintRange   = errors.New("unsigned integer out of 128-bit range")
)

// NewUint128 returns a Uint128 equal to v.
func NewUint128(v uint64) Uint128 {
	return Uint128{u: uint256.Int{v, 0, 0, 0}}
}

// Uint128FromParts returns hi * 2^64 + lo.
func Uint128FromParts(hi, lo uint64) Uint128 {
	return Uint128{u: uint256.Int{lo, hi, 0, 0}}
}

// MaxUint128 returns 2^128 - 1.
func MaxUint128() Uint128 {
	return Uint128FromParts(^uint64(0), ^uint64(0))
}

// FromUint256 narrows x to 128 bits.
// ok is false if x does not fit.
func FromUint256(x *uint256.Int) (z Uint128, ok bool) {
	if x.BitLen() > 128 {
		return Uint128{}, false
	}
	z.u.Set(x)
	return z, true
}

// FromBig converts a non-negative big.Int to Uint128.
// ok is false if x is negative or does not fit.
func FromBig(x *big.Int) (z Uint128, ok bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Uint128{}, false
	}
	u, overflow := uint256.FromBig(x)
	if overflow {
		return Uint128{}, false
	}
	return FromUint256(u)
}

// ParseUint128 converts a string of decimal digits to Uint128.
// Signs, whitespace and an empty string are rejected.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, errors.Wrap(errInvalidUint, "empty string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint128{}, errors.Wrapf(errInvalidUint, "invalid character %q", s[i])
		}
	}
	// 2^128 has 39 digits; strip leading zeros so long zero padding is accepted.
	t := s
	for len(t) > 1 && t[0] == '0' {
		t = t[1:]
	}
	if len(t) > 39 {
		return Uint128{}, errors.Wrapf(errUintRange, "%q", s)
	}
	u, err := uint256.FromDecimal(t)
	if err != nil {
		return Uint128{}, errors.Wrapf(errInvalidUint, "%q: %v", s, err)
	}
	z, ok := FromUint256(u)
	if !ok {
		return Uint128{}, errors.Wrapf(errUintRange, "%q", s)
	}
	return z, nil
}

// MustParseUint128 is like [ParseUint128] but panics if the string cannot be parsed.
func MustParseUint128(s string) Uint128 {
	z, err := ParseUint128(s)
	if err != nil {
		panic(errors.Wrapf(err, "MustParseUint128(%q) failed", s))
	}
	return z
}

// Uint256 returns x widened to a freshly allocated 256-bit integer.
func (x Uint128) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&x.u)
}

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	return x.u.ToBig()
}

// Hi returns the upper 64 bits of x.
func (x Uint128) Hi() uint64 {
	return x.u[1]
}

// Lo returns the lower 64 bits of x.
func (x Uint128) Lo() uint64 {
	return x.u[0]
}

// IsUint64 reports whether x fits in a uint64.
func (x Uint128) IsUint64() bool {
	return x.u[1] == 0
}

// Uint64 returns the lower 64 bits of x.
func (x Uint128) Uint64() uint64 {
	return x.u[0]
}

// IsZero returns true if x == 0.
func (x Uint128) IsZero() bool {
	return x.u.IsZero()
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Uint128) Cmp(y Uint128) int {
	return x.u.Cmp(&y.u)
}

// Lt returns true if x < y.
func (x Uint128) Lt(y Uint128) bool {
	return x.u.Lt(&y.u)
}

// Add calculates x + y and checks overflow.
func (x Uint128) Add(y Uint128) (z Uint128, ok bool) {
	w := new(uint256.Int).Add(&x.u, &y.u)
	return FromUint256(w)
}

// Sub calculates x - y and checks underflow.
func (x Uint128) Sub(y Uint128) (z Uint128, ok bool) {
	if x.u.Lt(&y.u) {
		return Uint128{}, false
	}
	z.u.Sub(&x.u, &y.u)
	return z, true
}

// Mul calculates x * y and checks overflow.
func (x Uint128) Mul(y Uint128) (z Uint128, ok bool) {
	w := new(uint256.Int).Mul(&x.u, &y.u) // cannot overflow 256 bits
	return FromUint256(w)
}

// QuoRem calculates q = ⌊x / y⌋, r = x - y * q.
// ok is false if y is 0.
func (x Uint128) QuoRem(y Uint128) (q, r Uint128, ok bool) {
	if y.IsZero() {
		return Uint128{}, Uint128{}, false
	}
	q.u.Div(&x.u, &y.u)
	r.u.Mod(&x.u, &y.u)
	return q, r, true
}

// Quo calculates ⌊x / y⌋.
// ok is false if y is 0.
func (x Uint128) Quo(y Uint128) (z Uint128, ok bool) {
	z, _, ok = x.QuoRem(y)
	return z, ok
}

// Rem calculates x mod y.
// ok is false if y is 0.
func (x Uint128) Rem(y Uint128) (z Uint128, ok bool) {
	_, z, ok = x.QuoRem(y)
	return z, ok
}

// String returns the decimal representation of x.
func (x Uint128) String() string {
	if x.IsUint64() {
		return new(big.Int).SetUint64(x.u[0]).String()
	}
	return x.u.ToBig().String()
}

// MarshalText implements [encoding.TextMarshaler].
func (x Uint128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (x *Uint128) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseUint128(string(text))
	return err
}

// MarshalJSON encodes x as a JSON string, since 128-bit integers do not
// survive JSON number decoding in most consumers.
func (x Uint128) MarshalJSON() ([]byte, error) {
	s := x.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON accepts both a JSON string and a bare JSON integer.
func (x *Uint128) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	return x.UnmarshalText(data)
}

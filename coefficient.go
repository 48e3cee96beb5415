package decimal

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// MaxPlaces is the maximum number of decimal places a precision tag may declare.
// 10^38 is the largest power of 10 below 2^128.
const MaxPlaces = 38

// refPlaces is the number of decimal places of the reference decimal type.
const refPlaces = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = func() (p [MaxPlaces + 1]num.Uint128) {
	ten := num.NewUint128(10)
	p[0] = num.NewUint128(1)
	for i := 1; i < len(p); i++ {
		var ok bool
		p[i], ok = p[i-1].Mul(ten)
		if !ok {
			panic(fmt.Sprintf("pow10(%v) overflows 128 bits", i))
		}
	}
	return p
}()

// unit returns 10^places, the atomics of 1.0 at the given precision.
// unit panics if places is greater than [MaxPlaces].
func unit(places uint32) num.Uint128 {
	if places > MaxPlaces {
		panic(fmt.Sprintf("decimal places %v out of range [0, %v]", places, MaxPlaces))
	}
	return pow10[places]
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func lsh(x num.Uint128, shift uint32) (z num.Uint128, ok bool) {
	// Special cases
	switch {
	case shift == 0 || x.IsZero():
		return x, true
	case shift > MaxPlaces:
		return num.Uint128{}, false
	}
	// General case
	return x.Mul(pow10[shift])
}

// rshDown (Right Shift) calculates ⌊x / 10^shift⌋ and rounds result towards zero.
func rshDown(x num.Uint128, shift uint32) num.Uint128 {
	// Special cases
	switch {
	case shift == 0 || x.IsZero():
		return x
	case shift > MaxPlaces:
		return num.Uint128{}
	}
	// General case
	z, _ := x.Quo(pow10[shift])
	return z
}

// rescale reinterprets atomics given with from decimal places as atomics with
// to decimal places.
// Scaling up checks overflow, scaling down truncates and never fails.
func rescale(x num.Uint128, from, to uint32) (z num.Uint128, ok bool) {
	switch {
	case from < to:
		return lsh(x, to-from)
	case from > to:
		return rshDown(x, from-to), true
	}
	return x, true
}

// mulQuoRem calculates q = ⌊x * y / d⌋ and r = x * y mod d using
// a 256-bit intermediate, so x * y itself never overflows.
// It fails with [ErrDivisionByZero] if d is 0 and with [ErrRangeExceeded]
// if q does not fit in 128 bits.
func mulQuoRem(x, y, d num.Uint128) (q, r num.Uint128, err error) {
	if d.IsZero() {
		return num.Uint128{}, num.Uint128{}, ErrDivisionByZero
	}
	var (
		wx = x.Uint256()
		wy = y.Uint256()
		wd = d.Uint256()
		wr = new(uint256.Int)
	)
	wx.Mul(wx, wy) // at most 256 bits
	wr.Mod(wx, wd)
	wx.Div(wx, wd)
	q, ok := num.FromUint256(wx)
	if !ok {
		return num.Uint128{}, num.Uint128{}, ErrRangeExceeded
	}
	r, _ = num.FromUint256(wr) // r < d
	return q, r, nil
}

// mulQuo calculates ⌊x * y / d⌋, see [mulQuoRem].
func mulQuo(x, y, d num.Uint128) (num.Uint128, error) {
	q, _, err := mulQuoRem(x, y, d)
	return q, err
}

// isqrt calculates ⌊√x⌋.
func isqrt(x num.Uint128) num.Uint128 {
	w := x.Uint256()
	w.Sqrt(w)
	z, _ := num.FromUint256(w)
	return z
}

package decimal

import (
	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// Add returns the sum of d and e.
//
// Add returns [ErrOverflow] if the sum does not fit in the atomics.
func (d Decimal[P]) Add(e Decimal[P]) (Decimal[P], error) {
	z, ok := d.atomics.Add(e.atomics)
	if !ok {
		return Decimal[P]{}, ErrOverflow
	}
	return Decimal[P]{atomics: z}, nil
}

// Sub returns the difference of d and e.
//
// Sub returns [ErrUnderflow] if e is greater than d.
func (d Decimal[P]) Sub(e Decimal[P]) (Decimal[P], error) {
	z, ok := d.atomics.Sub(e.atomics)
	if !ok {
		return Decimal[P]{}, ErrUnderflow
	}
	return Decimal[P]{atomics: z}, nil
}

// Mul returns the product of d and e truncated to the precision of the decimal.
// The product of the atomics is calculated with 256-bit precision.
//
// Mul returns [ErrRangeExceeded] if the product does not fit in the atomics.
func (d Decimal[P]) Mul(e Decimal[P]) (Decimal[P], error) {
	z, err := mulQuo(d.atomics, e.atomics, Fractional[P]())
	if err != nil {
		return Decimal[P]{}, err
	}
	return Decimal[P]{atomics: z}, nil
}

// Quo returns the quotient of d and e truncated to the precision of the decimal.
// The dividend d * 10^D is calculated with 256-bit precision.
//
// Quo returns an error if:
//   - e is 0;
//   - the quotient does not fit in the atomics.
func (d Decimal[P]) Quo(e Decimal[P]) (Decimal[P], error) {
	z, err := mulQuo(d.atomics, Fractional[P](), e.atomics)
	if err != nil {
		return Decimal[P]{}, err
	}
	return Decimal[P]{atomics: z}, nil
}

// Rem returns the remainder of d divided by e, that is d - e * ⌊d / e⌋.
//
// Rem returns [ErrDivisionByZero] if e is 0.
func (d Decimal[P]) Rem(e Decimal[P]) (Decimal[P], error) {
	z, ok := d.atomics.Rem(e.atomics)
	if !ok {
		return Decimal[P]{}, ErrDivisionByZero
	}
	return Decimal[P]{atomics: z}, nil
}

// Pow returns d raised to the power of exp, calculated by repeated
// multiplication.
// Every intermediate product is truncated like in [Decimal.Mul].
//
// Pow returns an error if any intermediate product does not fit in the atomics.
func (d Decimal[P]) Pow(exp uint32) (Decimal[P], error) {
	// Special cases
	switch {
	case exp == 0:
		return One[P](), nil
	case exp == 1:
		return d, nil
	case d.IsZero():
		return Decimal[P]{}, nil
	}
	// General case
	f := d
	var err error
	for i := uint32(1); i < exp; i++ {
		f, err = f.Mul(d)
		if err != nil {
			return Decimal[P]{}, err
		}
		if f.IsZero() {
			break
		}
	}
	return f, nil
}

// SaturatingAdd returns the sum of d and e, or [Max] if the sum overflows.
func (d Decimal[P]) SaturatingAdd(e Decimal[P]) Decimal[P] {
	f, err := d.Add(e)
	if err != nil {
		return Max[P]()
	}
	return f
}

// SaturatingSub returns the difference of d and e, or 0 if e is greater than d.
func (d Decimal[P]) SaturatingSub(e Decimal[P]) Decimal[P] {
	f, err := d.Sub(e)
	if err != nil {
		return Decimal[P]{}
	}
	return f
}

// SaturatingMul returns the product of d and e, or [Max] if the product overflows.
func (d Decimal[P]) SaturatingMul(e Decimal[P]) Decimal[P] {
	f, err := d.Mul(e)
	if err != nil {
		return Max[P]()
	}
	return f
}

// Neg returns -d.
// Decimals are unsigned, so only 0 can be negated.
//
// Neg returns [ErrUnderflow] if d is not 0.
func (d Decimal[P]) Neg() (Decimal[P], error) {
	if !d.IsZero() {
		return Decimal[P]{}, ErrUnderflow
	}
	return d, nil
}

// Floor returns the largest integer value less than or equal to d.
func (d Decimal[P]) Floor() Decimal[P] {
	whole, _ := d.split()
	z, _ := whole.Mul(Fractional[P]()) // cannot exceed d.atomics
	return Decimal[P]{atomics: z}
}

// Ceil returns the smallest integer value greater than or equal to d.
//
// Ceil returns [ErrOverflow] if the result does not fit in the atomics.
func (d Decimal[P]) Ceil() (Decimal[P], error) {
	f := d.Floor()
	if f == d {
		return f, nil
	}
	return f.Add(One[P]())
}

// Sqrt returns the square root of d.
// d is converted to the reference 18-decimal type, the root is calculated
// there and the result is truncated back to the precision of d.
//
// Sqrt returns [ErrOverflow] if d does not fit in the reference type.
func (d Decimal[P]) Sqrt() (Decimal[P], error) {
	ref, ok := rescale(d.atomics, d.DecimalPlaces(), refPlaces)
	if !ok {
		return Decimal[P]{}, ErrOverflow
	}
	root := sqrtRef(ref)
	z, ok := rescale(root, refPlaces, d.DecimalPlaces())
	if !ok {
		return Decimal[P]{}, ErrOverflow
	}
	return Decimal[P]{atomics: z}, nil
}

// sqrtRef calculates the square root of 18-decimal atomics.
// It uses the highest precision i in [9, 0] for which atomics * 100^i still
// fits in 128 bits, and then scales the integer root by 10^(9 - i).
// For i = 0 the result is ⌊√(2^128)⌋ * 10^9, which always fits.
func sqrtRef(atomics num.Uint128) num.Uint128 {
	for i := uint32(refPlaces / 2); ; i-- {
		inner, ok := lsh(atomics, 2*i)
		if ok {
			z, _ := lsh(isqrt(inner), refPlaces/2-i)
			return z
		}
	}
}

// MulUint returns d * a truncated to an integer.
// It applies a rate d to a raw amount a.
//
// MulUint returns [ErrRangeExceeded] if the result does not fit in 128 bits.
func (d Decimal[P]) MulUint(a num.Uint128) (num.Uint128, error) {
	return mulQuo(d.atomics, a, Fractional[P]())
}

// UintMul returns a * d truncated to an integer.
// It is the commutative form of [Decimal.MulUint].
func UintMul[P Places](a num.Uint128, d Decimal[P]) (num.Uint128, error) {
	return d.MulUint(a)
}

// MulUintFloor is an alias for [Decimal.MulUint] that names its rounding.
func (d Decimal[P]) MulUintFloor(a num.Uint128) (num.Uint128, error) {
	return d.MulUint(a)
}

// MulUintCeil returns d * a rounded up to an integer.
//
// MulUintCeil returns [ErrRangeExceeded] if the result does not fit in 128 bits.
func (d Decimal[P]) MulUintCeil(a num.Uint128) (num.Uint128, error) {
	q, r, err := mulQuoRem(d.atomics, a, Fractional[P]())
	if err != nil {
		return num.Uint128{}, err
	}
	if r.IsZero() {
		return q, nil
	}
	q, ok := q.Add(num.NewUint128(1))
	if !ok {
		return num.Uint128{}, ErrRangeExceeded
	}
	return q, nil
}

// QuoUint returns d / a truncated to the precision of the decimal.
// Since a is a plain integer the atomics are divided directly.
//
// QuoUint returns [ErrDivisionByZero] if a is 0.
func (d Decimal[P]) QuoUint(a num.Uint128) (Decimal[P], error) {
	z, ok := d.atomics.Quo(a)
	if !ok {
		return Decimal[P]{}, ErrDivisionByZero
	}
	return Decimal[P]{atomics: z}, nil
}

// ToUintFloor returns the integer part of d.
func (d Decimal[P]) ToUintFloor() num.Uint128 {
	whole, _ := d.split()
	return whole
}

// ToUintCeil returns the smallest integer greater than or equal to d.
func (d Decimal[P]) ToUintCeil() num.Uint128 {
	whole, frac := d.split()
	if frac.IsZero() {
		return whole
	}
	z, _ := whole.Add(num.NewUint128(1)) // whole < 2^128 / 10^D
	return z
}

// Sum returns the sum of all decimals, or 0 if there are none.
//
// Sum returns [ErrOverflow] if the sum does not fit in the atomics.
func Sum[P Places](ds ...Decimal[P]) (Decimal[P], error) {
	var (
		f   Decimal[P]
		err error
	)
	for _, d := range ds {
		f, err = f.Add(d)
		if err != nil {
			return Decimal[P]{}, err
		}
	}
	return f, nil
}

// Product returns the product of all decimals, or 1 if there are none.
//
// Product returns an error if any intermediate product does not fit in the atomics.
func Product[P Places](ds ...Decimal[P]) (Decimal[P], error) {
	var (
		f   = One[P]()
		err error
	)
	for _, d := range ds {
		f, err = f.Mul(d)
		if err != nil {
			return Decimal[P]{}, err
		}
		if f.IsZero() {
			break
		}
	}
	return f, nil
}

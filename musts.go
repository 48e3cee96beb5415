package decimal

import (
	"fmt"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// MustNewFromAtomics is like [NewFromAtomics] but panics if the value overflows.
func MustNewFromAtomics[P Places](value num.Uint128, places uint32) Decimal[P] {
	d, err := NewFromAtomics[P](value, places)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromAtomics(%v, %v) failed: %v", value, places, err))
	}
	return d
}

// MustNewFromRatio is like [NewFromRatio] but panics if computing error.
func MustNewFromRatio[P Places](numerator, denominator num.Uint128) Decimal[P] {
	d, err := NewFromRatio[P](numerator, denominator)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromRatio(%v, %v) failed: %v", numerator, denominator, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal[P]) MustAdd(e Decimal[P]) Decimal[P] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal[P]) MustSub(e Decimal[P]) Decimal[P] {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal[P]) MustMul(e Decimal[P]) Decimal[P] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal[P]) MustQuo(e Decimal[P]) Decimal[P] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal[P]) MustRem(e Decimal[P]) Decimal[P] {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal[P]) MustPow(exp uint32) Decimal[P] {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return f
}

// MustNeg is like [Decimal.Neg] but panics if d is not 0.
func (d Decimal[P]) MustNeg() Decimal[P] {
	if _, err := d.Neg(); err != nil {
		panic(fmt.Sprintf("MustNeg() failed: negation of non-zero decimal %v is not supported", d))
	}
	return d
}

// MustCeil is like [Decimal.Ceil] but panics if computing error.
func (d Decimal[P]) MustCeil() Decimal[P] {
	f, err := d.Ceil()
	if err != nil {
		panic(fmt.Sprintf("MustCeil() failed: %v", err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics if computing error.
func (d Decimal[P]) MustSqrt() Decimal[P] {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}

// MustMulUint is like [Decimal.MulUint] but panics if computing error.
func (d Decimal[P]) MustMulUint(a num.Uint128) num.Uint128 {
	z, err := d.MulUint(a)
	if err != nil {
		panic(fmt.Sprintf("MustMulUint(%v) failed: %v", a, err))
	}
	return z
}

// MustQuoUint is like [Decimal.QuoUint] but panics if computing error.
func (d Decimal[P]) MustQuoUint(a num.Uint128) Decimal[P] {
	f, err := d.QuoUint(a)
	if err != nil {
		panic(fmt.Sprintf("MustQuoUint(%v) failed: %v", a, err))
	}
	return f
}

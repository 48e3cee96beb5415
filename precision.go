package decimal

import (
	"math/big"

	shopspring "github.com/shopspring/decimal"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// ToPrecision converts d to a decimal with the precision of To.
//
//   - Same precision: the value is copied.
//   - More decimal places: the atomics are multiplied by 10^(To - From).
//     This is lossless, but ToPrecision panics with [*PrecisionOverflowError]
//     if the result does not fit in the atomics.
//   - Fewer decimal places: the atomics are divided by 10^(From - To) and
//     extra digits are truncated.
//
// Converting to more decimal places and back always returns the original value.
func ToPrecision[To, From Places](d Decimal[From]) Decimal[To] {
	f, err := TryToPrecision[To](d)
	if err != nil {
		panic(err)
	}
	return f
}

// TryToPrecision is like [ToPrecision] but returns [*PrecisionOverflowError]
// instead of panicking.
func TryToPrecision[To, From Places](d Decimal[From]) (Decimal[To], error) {
	from, to := DecimalPlaces[From](), DecimalPlaces[To]()
	atomics, ok := rescale(d.atomics, from, to)
	if !ok {
		return Decimal[To]{}, &PrecisionOverflowError{From: from, To: to}
	}
	return Decimal[To]{atomics: atomics}, nil
}

// BigDecimal converts d to an arbitrary-precision [shopspring.Decimal].
// The value goes through the reference 18-decimal type, so it is exact when
// d has up to 18 decimal places and truncated to 18 places otherwise.
func (d Decimal[P]) BigDecimal() shopspring.Decimal {
	places := d.DecimalPlaces()
	v := shopspring.NewFromBigInt(d.atomics.Big(), -int32(places))
	if places > refPlaces {
		v = v.Truncate(refPlaces)
	}
	return v
}

// NewFromBigDecimal converts an arbitrary-precision [shopspring.Decimal]
// to a decimal.
// The value is first truncated to the reference 18-decimal type and then
// converted with the rules of [ToPrecision].
//
// NewFromBigDecimal returns an error if:
//   - v is negative;
//   - v does not fit in the reference type;
//   - v does not fit in a decimal with more than 18 places.
func NewFromBigDecimal[P Places](v shopspring.Decimal) (Decimal[P], error) {
	if v.Sign() < 0 {
		return Decimal[P]{}, &ConversionError{Detail: "negative value " + v.String()}
	}
	ref, ok := num.FromBig(bigAtomics(v, refPlaces))
	if !ok {
		return Decimal[P]{}, &ConversionError{Detail: "value " + v.String() + " too large for Decimal18"}
	}
	atomics, ok := rescale(ref, refPlaces, DecimalPlaces[P]())
	if !ok {
		return Decimal[P]{}, ErrOverflow
	}
	return Decimal[P]{atomics: atomics}, nil
}

// bigAtomics returns v * 10^places truncated towards zero.
func bigAtomics(v shopspring.Decimal, places int32) *big.Int {
	return v.Shift(places).BigInt()
}

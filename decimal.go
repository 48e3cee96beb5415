package decimal

import (
	"fmt"
	"strings"

	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// Places binds a fixed number of decimal places into a [Decimal] type.
// Implementations are empty struct tags, such as [D6] or [D18].
// Places must return the same value on every call and it must not exceed
// [MaxPlaces].
type Places interface {
	Places() uint32
}

// Precision tags for the frequently used numbers of decimal places.
type (
	D0  struct{}
	D2  struct{}
	D4  struct{}
	D6  struct{}
	D8  struct{}
	D9  struct{}
	D12 struct{}
	D18 struct{}
)

func (D0) Places() uint32  { return 0 }
func (D2) Places() uint32  { return 2 }
func (D4) Places() uint32  { return 4 }
func (D6) Places() uint32  { return 6 }
func (D8) Places() uint32  { return 8 }
func (D9) Places() uint32  { return 9 }
func (D12) Places() uint32 { return 12 }
func (D18) Places() uint32 { return 18 }

// Decimal type is a representation of an unsigned fixed-point decimal number
// with the number of decimal places fixed by P.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal stores a single unsigned 128-bit integer, the atomics.
// The numerical value of a decimal is atomics / 10^D, where D is P.Places().
// For example, a Decimal[D6] with atomics 1_500_000 represents the value 1.5.
//
// Decimals with different P are different types, so they cannot be mixed in
// arithmetic by accident.
// Use [ToPrecision] to convert between them.
type Decimal[P Places] struct {
	atomics num.Uint128 // the value scaled by 10^D
}

type (
	// Decimal6 is a decimal with 6 decimal places.
	Decimal6 = Decimal[D6]
	// Decimal9 is a decimal with 9 decimal places.
	Decimal9 = Decimal[D9]
	// Decimal12 is a decimal with 12 decimal places.
	Decimal12 = Decimal[D12]
	// Decimal18 is a decimal with 18 decimal places.
	// It is the reference decimal type: its serialized form is the storage
	// format shared by all precisions.
	Decimal18 = Decimal[D18]
	// CustomDecimal is the default decimal type.
	CustomDecimal = Decimal6
)

// DecimalPlaces returns the number of decimal places of Decimal[P].
func DecimalPlaces[P Places]() uint32 {
	var p P
	return p.Places()
}

// Fractional returns 10^D, the atomics of 1.0.
func Fractional[P Places]() num.Uint128 {
	return unit(DecimalPlaces[P]())
}

// Zero returns a decimal with a value of 0.
func Zero[P Places]() Decimal[P] {
	return Decimal[P]{}
}

// One returns a decimal with a value of 1.
func One[P Places]() Decimal[P] {
	return Decimal[P]{atomics: Fractional[P]()}
}

// Max returns the largest representable decimal, (2^128 - 1) / 10^D.
func Max[P Places]() Decimal[P] {
	return Decimal[P]{atomics: num.MaxUint128()}
}

// Raw returns a decimal with the given atomics.
// For example, Raw[D6](num.NewUint128(1_500_000)) is 1.5.
func Raw[P Places](atomics num.Uint128) Decimal[P] {
	return Decimal[P]{atomics: atomics}
}

// NewFromAtomics returns a decimal equal to value / 10^places.
// If places is less than the precision of the decimal, value is scaled up
// and NewFromAtomics returns [ErrOverflow] if the result does not fit.
// If places is greater, value is scaled down and extra digits are truncated.
func NewFromAtomics[P Places](value num.Uint128, places uint32) (Decimal[P], error) {
	atomics, ok := rescale(value, places, DecimalPlaces[P]())
	if !ok {
		return Decimal[P]{}, ErrOverflow
	}
	return Decimal[P]{atomics: atomics}, nil
}

// NewFromUint64 returns a decimal with the integer value n.
func NewFromUint64[P Places](n uint64) (Decimal[P], error) {
	return NewFromUint128[P](num.NewUint128(n))
}

// NewFromUint128 returns a decimal with the integer value n.
func NewFromUint128[P Places](n num.Uint128) (Decimal[P], error) {
	return NewFromAtomics[P](n, 0)
}

// NewFromRatio returns numerator / denominator truncated to the precision
// of the decimal.
// The product numerator * 10^D is calculated with 256-bit precision.
//
// NewFromRatio returns an error if:
//   - denominator is 0;
//   - the result does not fit in the atomics.
func NewFromRatio[P Places](numerator, denominator num.Uint128) (Decimal[P], error) {
	atomics, err := mulQuo(numerator, Fractional[P](), denominator)
	if err != nil {
		return Decimal[P]{}, err
	}
	return Decimal[P]{atomics: atomics}, nil
}

// Percent returns x / 100.
// Percent panics if the result does not fit, which is only possible when
// the decimal has more than 20 decimal places.
func Percent[P Places](x uint64) Decimal[P] {
	return newFromPart[P]("Percent", x, 100)
}

// Permille returns x / 1000.
// See [Percent] for the overflow behaviour.
func Permille[P Places](x uint64) Decimal[P] {
	return newFromPart[P]("Permille", x, 1_000)
}

// Bps returns x basis points, that is x / 10000.
// See [Percent] for the overflow behaviour.
func Bps[P Places](x uint64) Decimal[P] {
	return newFromPart[P]("Bps", x, 10_000)
}

func newFromPart[P Places](name string, x, parts uint64) Decimal[P] {
	atomics, err := mulQuo(num.NewUint128(x), Fractional[P](), num.NewUint128(parts))
	if err != nil {
		panic(fmt.Sprintf("%v(%v) failed: %v", name, x, err))
	}
	return Decimal[P]{atomics: atomics}
}

// Atomics returns the atomics of d, which is d * 10^D.
func (d Decimal[P]) Atomics() num.Uint128 {
	return d.atomics
}

// DecimalPlaces returns the number of decimal places of d.
// Decimal[P] itself is not a precision tag.
func (d Decimal[P]) DecimalPlaces() uint32 {
	return DecimalPlaces[P]()
}

// IsZero returns true if d == 0.
func (d Decimal[P]) IsZero() bool {
	return d.atomics.IsZero()
}

// IsInt returns true if the fractional part of d is equal to 0.
func (d Decimal[P]) IsInt() bool {
	_, r, _ := d.atomics.QuoRem(Fractional[P]())
	return r.IsZero()
}

// split returns the integer part of d and its fractional part as atomics.
func (d Decimal[P]) split() (whole, frac num.Uint128) {
	whole, frac, _ = d.atomics.QuoRem(Fractional[P]())
	return whole, frac
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal[P]) Cmp(e Decimal[P]) int {
	return d.atomics.Cmp(e.atomics)
}

// Equal returns true if d == e.
func (d Decimal[P]) Equal(e Decimal[P]) bool {
	return d == e
}

// Min returns the smaller of d and e.
func (d Decimal[P]) Min(e Decimal[P]) Decimal[P] {
	if d.Cmp(e) < 0 {
		return d
	}
	return e
}

// Max returns the larger of d and e.
func (d Decimal[P]) Max(e Decimal[P]) Decimal[P] {
	if d.Cmp(e) > 0 {
		return d
	}
	return e
}

// AbsDiff returns |d - e|.
func (d Decimal[P]) AbsDiff(e Decimal[P]) Decimal[P] {
	if d.Cmp(e) < 0 {
		d, e = e, d
	}
	z, _ := d.atomics.Sub(e.atomics)
	return Decimal[P]{atomics: z}
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1234
//	1.234
//	0.000001
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digits         ::= digit { digit }
//	numeric-string ::= digits [ '.' digits ]
//
// Parse returns error:
//   - if the string does not match the grammar;
//   - if the fractional part has more digits than the decimal has places;
//   - if the value does not fit in the atomics.
//
// To accept any number of fractional digits use [Decimal.UnmarshalText].
func Parse[P Places](s string) (Decimal[P], error) {
	return parse[P](s, false)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse[P Places](s string) Decimal[P] {
	d, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// parse implements both the text and the storage codec.
// If truncate is true, fractional digits beyond the precision of the decimal
// are dropped, otherwise they are an error.
func parse[P Places](s string, truncate bool) (Decimal[P], error) {
	var (
		places = DecimalPlaces[P]()
		parts  = strings.Split(s, ".")
		whole  num.Uint128
		frac   num.Uint128
		err    error
		ok     bool
	)

	if len(parts) > 2 {
		return Decimal[P]{}, parseErrorf(s, "invalid decimal format: %v", s)
	}

	// Integer
	whole, err = num.ParseUint128(parts[0])
	if err != nil {
		return Decimal[P]{}, parseErrorf(s, "invalid integer: %v", parts[0])
	}
	whole, ok = lsh(whole, places)
	if !ok {
		return Decimal[P]{}, parseOverflow(s, truncate)
	}
	if len(parts) == 1 {
		return Decimal[P]{atomics: whole}, nil
	}

	// Fraction
	digits := parts[1]
	if len(digits) > int(places) && !truncate {
		return Decimal[P]{}, parseErrorf(s, "too many decimal places: %v (max %v)", len(digits), places)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Decimal[P]{}, parseErrorf(s, "invalid fractional: %v", digits)
		}
	}
	if len(digits) > int(places) {
		digits = digits[:places] // truncation towards zero
	}
	if digits == "" {
		// "1." and a truncated fraction of a Decimal[D0]
		if parts[1] == "" {
			return Decimal[P]{}, parseErrorf(s, "invalid fractional: %v", parts[1])
		}
		return Decimal[P]{atomics: whole}, nil
	}
	frac, err = num.ParseUint128(digits)
	if err != nil {
		return Decimal[P]{}, parseErrorf(s, "invalid fractional: %v", digits)
	}
	frac, _ = lsh(frac, places-uint32(len(digits))) // frac < 10^places

	atomics, ok := whole.Add(frac)
	if !ok {
		return Decimal[P]{}, parseOverflow(s, truncate)
	}
	return Decimal[P]{atomics: atomics}, nil
}

// parseOverflow reports a value that does not fit in the atomics.
// The storage codec reports it as a parse error.
func parseOverflow(s string, storage bool) error {
	if storage {
		return parseErrorf(s, "overflow in decimal value")
	}
	return ErrOverflow
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The integer part is printed without padding.
// The fractional part is printed only if it is not 0, without trailing zeros.
//
//	Raw[D6](1_500_000) // 1.5
//	Raw[D6](1_000_000) // 1
//	Raw[D6](123_456)   // 0.123456
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal[P]) String() string {
	whole, frac := d.split()
	return format(whole, frac, d.DecimalPlaces())
}

// GoString implements the [fmt.GoStringer] interface.
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (d Decimal[P]) GoString() string {
	return fmt.Sprintf("decimal.Decimal[%v](%v)", d.DecimalPlaces(), d.String())
}

// format writes whole.frac where frac has the given number of places.
func format(whole, frac num.Uint128, places uint32) string {
	if frac.IsZero() {
		return whole.String()
	}
	digits := frac.String()
	var b strings.Builder
	b.Grow(len(digits) + int(places) + 2)
	b.WriteString(whole.String())
	b.WriteByte('.')
	for i := len(digits); i < int(places); i++ {
		b.WriteByte('0')
	}
	b.WriteString(strings.TrimRight(digits, "0"))
	return b.String()
}

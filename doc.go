/*
Package decimal implements immutable unsigned fixed-point decimal numbers
with a number of decimal places chosen at compile time.
It is specifically designed for deterministic ledger and contract execution,
where floating-point arithmetic is not allowed and arbitrary precision is
too expensive.

# Representation

[Decimal] is a struct with a single field, the atomics: an unsigned 128-bit
integer holding the value multiplied by 10^D.
D is the number of decimal places, and it is part of the type:

	Decimal[D6]  // 1.5 is stored as 1_500_000
	Decimal[D9]  // 1.5 is stored as 1_500_000_000
	Decimal[D18] // 1.5 is stored as 1_500_000_000_000_000_000

The numerical value of a decimal is calculated as atomics / 10^D.
Every value has exactly one representation, so decimals can be compared
with ==.

Decimals of different precision are different types and cannot be mixed in
arithmetic.
Precision tags are provided for 0, 2, 4, 6, 8, 9, 12, and 18 decimal places,
and new tags can be declared by implementing [Places].

# Constraints

The range of a decimal is determined by its precision:

	| Type         | Places | Maximum                                            |
	| ------------ | ------ | -------------------------------------------------- |
	| Decimal[D6]  | 6      | 340,282,366,920,938,463,463,374,607,431,768.211455 |
	| Decimal[D9]  | 9      | 340,282,366,920,938,463,463,374,607,431.768211455  |
	| Decimal[D18] | 18     | 340,282,366,920,938,463,463.374607431768211455     |

Negative values are not supported.
Negation is only defined for 0.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String].
  - from/to storage format:
    [ParseStorage], [Decimal.Storage], and the JSON, text, and SQL interfaces.
  - between precisions:
    [ToPrecision], [TryToPrecision], [NewFromAtomics].
  - from/to integers:
    [Raw], [NewFromUint64], [NewFromUint128], [Decimal.ToUintFloor], [Decimal.ToUintCeil].
  - from/to arbitrary-precision decimals:
    [NewFromBigDecimal], [Decimal.BigDecimal].

# Operations

Multiplication and division are carried out with a 256-bit intermediate,
so the product of two atomics never overflows before it is scaled back.
The result is then truncated to the precision of the decimal.
If the truncated result does not fit in 128 bits, [ErrRangeExceeded] is
returned.

Every arithmetic operation comes in up to three forms:

  - [Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Quo], ...:
    return an error.
  - [Decimal.MustAdd], [Decimal.MustSub], [Decimal.MustMul], [Decimal.MustQuo], ...:
    panic instead.
  - [Decimal.SaturatingAdd], [Decimal.SaturatingSub], [Decimal.SaturatingMul]:
    clamp the result to [Zero] or [Max].

# Rounding

Results are always truncated towards zero.
In addition, the package provides [Decimal.Floor] and [Decimal.Ceil] for
rounding to integers, and [Decimal.MulUintFloor] and [Decimal.MulUintCeil]
for applying a rate to an integer amount.

# Storage

Decimals are serialized as if they had 18 decimal places, which is the
format of the reference type [Decimal18].
For example, 1.5 is stored as "1.5" regardless of the precision, and a
stored "1.123456789012345678" is read by a Decimal[D6] as 1.123456.
This allows a stored value to be read back with any precision.

# Errors

Errors are returned in the following cases:

  - Overflow ([ErrOverflow]): addition and scaling overflow the atomics.
  - Underflow ([ErrUnderflow]): subtraction would produce a negative value.
  - Division by zero ([ErrDivisionByZero]).
  - Range exceeded ([ErrRangeExceeded]): a product or quotient computed with
    256 bits does not fit back into 128 bits.
  - Invalid input ([*ParseError], [*ConversionError]).
  - Precision overflow ([*PrecisionOverflowError]): converting to more decimal
    places overflows the atomics.

Parsing and decoding never panic.
*/
package decimal

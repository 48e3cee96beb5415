package decimal

import (
	"database/sql/driver"
	"fmt"

	"github.com/pkg/errors"
)

// Storage format
//
// Decimals are stored as if they had exactly 18 decimal places, regardless of
// their own precision.
// A Decimal[D6] and a Decimal[D18] with the same value therefore produce the
// same bytes, which allows stored values to migrate between precisions.
// Trailing zeros of the fractional part are trimmed and the integer part is
// not padded:
//
//	"0"
//	"1.5"
//	"123.456789012345678"

// Storage returns the storage representation of d.
// Decimals with more than 18 places are truncated to 18 places.
func (d Decimal[P]) Storage() string {
	whole, frac := d.split()
	if !frac.IsZero() {
		frac, _ = rescale(frac, d.DecimalPlaces(), refPlaces) // frac < 10^D
	}
	return format(whole, frac, refPlaces)
}

// ParseStorage converts a storage representation to a decimal.
// Unlike [Parse] it accepts any number of fractional digits; digits beyond
// the precision of the decimal are truncated.
func ParseStorage[P Places](s string) (Decimal[P], error) {
	d, err := parse[P](s, true)
	if err != nil {
		return Decimal[P]{}, errors.Wrapf(err, "decoding decimal with %v places", d.DecimalPlaces())
	}
	return d, nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.Storage].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal[P]) MarshalText() ([]byte, error) {
	return []byte(d.Storage()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseStorage].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal[P]) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseStorage[P](string(text))
	return err
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is encoded as a JSON string in the storage format.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal[P]) MarshalJSON() ([]byte, error) {
	s := d.Storage()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Only JSON strings are accepted, JSON null leaves d unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal[P]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	n := len(data)
	if n < 2 || data[0] != '"' || data[n-1] != '"' {
		return errors.Wrapf(parseErrorf(string(data), "expected a JSON string, got %s", data), "decoding decimal with %v places", d.DecimalPlaces())
	}
	return d.UnmarshalText(data[1 : n-1])
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are decoded with [ParseStorage],
// int64 values are treated as integers.
// Floating-point values are rejected.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal[P]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseStorage[P](value)
	case []byte:
		*d, err = ParseStorage[P](string(value))
	case int64:
		if value < 0 {
			return &ConversionError{Detail: fmt.Sprintf("negative value %v", value)}
		}
		*d, err = NewFromUint64[P](uint64(value))
	default:
		err = &ConversionError{Detail: fmt.Sprintf("failed to convert from %T to %T", value, *d)}
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The decimal is stored as a string in the storage format.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal[P]) Value() (driver.Value, error) {
	return d.Storage(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is not thread-safe.
type NullDecimal[P Places] struct {
	Decimal Decimal[P]
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal[P]) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal[P]{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal[P]{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal[P]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

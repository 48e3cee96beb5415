package cmd

import (
	"github.com/pkg/errors"

	decimal "github.com/CryptoKage2306/cosmwasm-custom-decimal"
	"github.com/CryptoKage2306/cosmwasm-custom-decimal/internal/migrate"
	"github.com/CryptoKage2306/cosmwasm-custom-decimal/num"
)

// Description holds the three representations of a decimal.
type Description struct {
	Atomics string
	Display string
	Storage string
}

// engine runs the commands at a precision chosen at run time.
type engine interface {
	Places() uint32
	Describe(s string) (Description, error)
	Convert(s string, to uint32) (Description, error)
	Calc(a, op, b string) (Description, error)
	Codec() migrate.Codec

	fromAtomics(atomics num.Uint128, places uint32) (Description, error)
}

// engineFor returns the engine for one of the predefined precision tags.
func engineFor(places uint32) (engine, error) {
	switch places {
	case 0:
		return engineOf[decimal.D0]{}, nil
	case 2:
		return engineOf[decimal.D2]{}, nil
	case 4:
		return engineOf[decimal.D4]{}, nil
	case 6:
		return engineOf[decimal.D6]{}, nil
	case 8:
		return engineOf[decimal.D8]{}, nil
	case 9:
		return engineOf[decimal.D9]{}, nil
	case 12:
		return engineOf[decimal.D12]{}, nil
	case 18:
		return engineOf[decimal.D18]{}, nil
	}
	return nil, errors.Errorf("unsupported precision %v, want one of 0, 2, 4, 6, 8, 9, 12, 18", places)
}

type engineOf[P decimal.Places] struct{}

func (engineOf[P]) Places() uint32 {
	return decimal.DecimalPlaces[P]()
}

func (engineOf[P]) Describe(s string) (Description, error) {
	d, err := decimal.Parse[P](s)
	if err != nil {
		return Description{}, err
	}
	return describe(d), nil
}

// Convert parses s at P and converts it to the precision to.
// Narrowing truncates, widening fails with [*decimal.PrecisionOverflowError]
// if the result does not fit.
func (e engineOf[P]) Convert(s string, to uint32) (Description, error) {
	d, err := decimal.Parse[P](s)
	if err != nil {
		return Description{}, err
	}
	target, err := engineFor(to)
	if err != nil {
		return Description{}, err
	}
	return target.fromAtomics(d.Atomics(), e.Places())
}

func (engineOf[P]) fromAtomics(atomics num.Uint128, places uint32) (Description, error) {
	d, err := decimal.NewFromAtomics[P](atomics, places)
	if err != nil {
		return Description{}, &decimal.PrecisionOverflowError{From: places, To: decimal.DecimalPlaces[P]()}
	}
	return describe(d), nil
}

// Calc applies one of + - * / % with the checked operations.
func (engineOf[P]) Calc(a, op, b string) (Description, error) {
	x, err := decimal.Parse[P](a)
	if err != nil {
		return Description{}, errors.Wrap(err, "left operand")
	}
	y, err := decimal.Parse[P](b)
	if err != nil {
		return Description{}, errors.Wrap(err, "right operand")
	}

	var z decimal.Decimal[P]
	switch op {
	case "+":
		z, err = x.Add(y)
	case "-":
		z, err = x.Sub(y)
	case "*", "x":
		z, err = x.Mul(y)
	case "/":
		z, err = x.Quo(y)
	case "%":
		z, err = x.Rem(y)
	default:
		return Description{}, errors.Errorf("unknown operator %q, want one of + - * / %%", op)
	}
	if err != nil {
		return Description{}, err
	}
	return describe(z), nil
}

func (engineOf[P]) Codec() migrate.Codec {
	return migrate.StorageCodec[P]()
}

func describe[P decimal.Places](d decimal.Decimal[P]) Description {
	return Description{
		Atomics: d.Atomics().String(),
		Display: d.String(),
		Storage: d.Storage(),
	}
}

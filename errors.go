package decimal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOverflow       = errors.New("overflow in decimal operation")
	ErrUnderflow      = errors.New("underflow in decimal operation")
	ErrDivisionByZero = errors.New("division by zero")
	ErrRangeExceeded  = errors.New("value exceeds valid range for decimal")
	ErrParse          = errors.New("failed to parse decimal")
	ErrConversion     = errors.New("conversion error")
)

// ParseError is returned when a string is not a valid decimal.
// It matches [ErrParse] with [errors.Is].
type ParseError struct {
	Input  string // the complete input
	Detail string // names the offending part of the input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrParse, e.Detail)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func parseErrorf(input, format string, args ...any) error {
	return &ParseError{Input: input, Detail: fmt.Sprintf(format, args...)}
}

// ConversionError is returned when a value of another type cannot be
// represented as a decimal.
// It matches [ErrConversion] with [errors.Is].
type ConversionError struct {
	Detail string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrConversion, e.Detail)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// PrecisionOverflowError is returned when widening a decimal to more decimal
// places overflows the atomics.
type PrecisionOverflowError struct {
	From, To uint32
}

func (e *PrecisionOverflowError) Error() string {
	return fmt.Sprintf("precision conversion overflow: cannot convert from %v to %v decimals", e.From, e.To)
}

// HostError is the message-only error handed to a host platform that does not
// know about the error kinds of this package.
type HostError struct {
	Msg string
}

func (e *HostError) Error() string {
	return e.Msg
}

// ToHostError maps err to a [HostError].
// Unknown errors keep their message.
// ToHostError returns nil if err is nil.
func ToHostError(err error) *HostError {
	if err == nil {
		return nil
	}
	var (
		perr *ParseError
		cerr *ConversionError
		oerr *PrecisionOverflowError
	)
	switch {
	case errors.As(err, &perr):
		return &HostError{Msg: "Parse error: " + perr.Detail}
	case errors.As(err, &cerr):
		return &HostError{Msg: "Conversion error: " + cerr.Detail}
	case errors.As(err, &oerr):
		return &HostError{Msg: fmt.Sprintf("Precision conversion overflow: cannot convert from %v to %v decimals", oerr.From, oerr.To)}
	case errors.Is(err, ErrOverflow):
		return &HostError{Msg: "Decimal overflow"}
	case errors.Is(err, ErrUnderflow):
		return &HostError{Msg: "Decimal underflow"}
	case errors.Is(err, ErrDivisionByZero):
		return &HostError{Msg: "Division by zero"}
	case errors.Is(err, ErrRangeExceeded):
		return &HostError{Msg: "Value exceeds valid range"}
	}
	return &HostError{Msg: err.Error()}
}

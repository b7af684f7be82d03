package godem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBand is wrapped by the ConfigError returned when compiling
	// an option set whose input band is zero or negative. Bands are
	// 1-indexed.
	ErrInvalidBand = errors.New("invalid band number")

	// ErrUnsupportedAlgorithm is wrapped by the ConfigError returned when
	// compiling an option set that selects an algorithm the targeted gdal
	// version does not know about.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// SyntaxError is returned by ParseArgList for a source string containing an
// unterminated double quote.
type SyntaxError struct {
	Source string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unterminated quote at offset %d of %q", e.Offset, e.Source)
}

// EncodingError is returned by ArgList.Append and ArgList.Merge for a token
// that cannot be represented in the switch syntax, i.e. one containing a
// double quote.
type EncodingError struct {
	Token string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("token %q contains a double quote", e.Token)
}

// ConfigError is returned when an option set cannot be compiled to an
// ArgList. Option names the offending gdaldem switch. ConfigError wraps
// ErrInvalidBand, ErrUnsupportedAlgorithm or an option specific error, for
// use with errors.Is.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

package phonenumber

import (
	"errors"
	"fmt"
)

// Parse errors. These are value-returned from the parse entry points and
// never poison shared state.
var (
	// ErrNoNumber indicates the input did not look like a phone number at
	// all; generally this means it had fewer than three digits in it.
	ErrNoNumber = errors.New("phonenumber: not a number")

	// ErrInvalidCountryCode indicates no supported country or
	// non-geographical entity matched the supplied or inferred calling code.
	ErrInvalidCountryCode = errors.New("phonenumber: invalid country code")

	// ErrTooShortAfterIdd indicates the input started with an international
	// dialing prefix but too few digits followed it to hold a country code
	// and a number.
	ErrTooShortAfterIdd = errors.New("phonenumber: number too short after IDD")

	// ErrTooShortNsn indicates that, after any country code was stripped,
	// fewer digits remained than any valid phone number could have.
	ErrTooShortNsn = errors.New("phonenumber: number too short after country code")

	// ErrTooLong indicates the number had more digits than any valid phone
	// number could have.
	ErrTooLong = errors.New("phonenumber: number too long")

	// ErrMalformedInteger indicates digits that passed every pattern could
	// not be converted to an integer. Unreachable unless the patterns and
	// the digit tables disagree.
	ErrMalformedInteger = errors.New("phonenumber: malformed integer")
)

// ErrUnexpectedEOF indicates the metadata document ended before parsing was
// complete.
var ErrUnexpectedEOF = errors.New("phonenumber: unexpected end of metadata")

// MismatchedTagError reports a closing tag that does not match the element
// being parsed.
type MismatchedTagError struct {
	Tag string
}

func (e *MismatchedTagError) Error() string {
	return fmt.Sprintf("phonenumber: mismatched tag: %s", e.Tag)
}

// MissingValueError reports a required metadata field that was absent.
type MissingValueError struct {
	Phase string
	Name  string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("phonenumber: %s: missing value: %s", e.Phase, e.Name)
}

// UnhandledElementError reports a metadata element the loader does not know.
type UnhandledElementError struct {
	Phase string
	Name  string
}

func (e *UnhandledElementError) Error() string {
	return fmt.Sprintf("phonenumber: %s: unhandled element: %s", e.Phase, e.Name)
}

// UnhandledAttributeError reports a metadata attribute the loader does not
// know.
type UnhandledAttributeError struct {
	Phase string
	Name  string
	Value string
}

func (e *UnhandledAttributeError) Error() string {
	return fmt.Sprintf("phonenumber: %s: unhandled attribute: %s=%s", e.Phase, e.Name, e.Value)
}

// UnhandledEventError reports an XML event the loader does not expect.
type UnhandledEventError struct {
	Phase string
	Event string
}

func (e *UnhandledEventError) Error() string {
	return fmt.Sprintf("phonenumber: %s: unhandled event: %s", e.Phase, e.Event)
}

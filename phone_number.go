package phonenumber

import (
	"strconv"
	"strings"
)

// CountryCode is a country calling code together with a record of how it was
// found in the input.
type CountryCode struct {
	value  uint16
	source CountryCodeSource
}

// Value returns the numeric calling code, for example 44 for the United
// Kingdom.
func (c CountryCode) Value() uint16 {
	return c.value
}

// Source reports how the calling code was determined during parsing.
func (c CountryCode) Source() CountryCodeSource {
	return c.source
}

// NationalNumber is the national significant number: its numeric value plus
// the count of leading zeros, which the integer cannot carry on its own.
// Italian numbers make the leading zero significant.
type NationalNumber struct {
	value uint64
	zeros uint8
}

// Value returns the national number without its leading zeros.
func (n NationalNumber) Value() uint64 {
	return n.value
}

// Zeros returns how many leading zeros the national number carries.
func (n NationalNumber) Zeros() uint8 {
	return n.zeros
}

func (n NationalNumber) String() string {
	var b strings.Builder
	for i := uint8(0); i < n.zeros; i++ {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(n.value, 10))
	return b.String()
}

// PhoneNumber is a parsed phone number.
type PhoneNumber struct {
	code      CountryCode
	national  NationalNumber
	extension string
	carrier   string
}

// Code returns the country calling code of the number.
func (p *PhoneNumber) Code() CountryCode {
	return p.code
}

// National returns the national significant number.
func (p *PhoneNumber) National() NationalNumber {
	return p.national
}

// Extension returns the extension, or the empty string when there is none.
func (p *PhoneNumber) Extension() string {
	return p.extension
}

// Carrier returns the carrier selection code stripped from the number, or
// the empty string when there was none.
func (p *PhoneNumber) Carrier() string {
	return p.carrier
}

// Metadata returns the metadata of the number's region within the given
// database, or nil when the database does not know the calling code.
func (p *PhoneNumber) Metadata(db *Database) *Metadata {
	return sourceMetadata(db, p)
}

// RegionID returns the region the number belongs to, or UnknownRegion when
// it cannot be determined.
func (p *PhoneNumber) RegionID(db *Database) Region {
	meta := sourceMetadata(db, p)
	if meta == nil {
		return UnknownRegion
	}
	return meta.ID()
}

// Type classifies the number within the given database.
func (p *PhoneNumber) Type(db *Database) NumberType {
	meta := sourceMetadata(db, p)
	if meta == nil {
		return TypeUnknown
	}
	return numberType(meta, p.national.String())
}

// IsValid reports whether the number fully matches a descriptor of its
// region in the default database.
func (p *PhoneNumber) IsValid() bool {
	return p.IsValidWith(DefaultDatabase())
}

// IsValidWith reports whether the number fully matches a descriptor of its
// region in the given database.
func (p *PhoneNumber) IsValidWith(db *Database) bool {
	meta := sourceMetadata(db, p)
	if meta == nil {
		return false
	}
	return numberType(meta, p.national.String()) != TypeUnknown
}

// String renders the number in E.164 layout.
func (p *PhoneNumber) String() string {
	return Format(p, E164)
}

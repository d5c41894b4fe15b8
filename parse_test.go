package phonenumber

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		region   Region
		input    string
		code     uint16
		source   CountryCodeSource
		national uint64
	}{
		{NZ, "033316005", 64, SourceDefault, 33316005},
		{NZ, "03-331 6005", 64, SourceDefault, 33316005},
		{NZ, "03 331 6005", 64, SourceDefault, 33316005},
		{NZ, "0064 3 331 6005", 64, SourceIdd, 33316005},
		{NZ, "+64 3 331 6005", 64, SourcePlus, 33316005},
		{NZ, "tel:+64-3-331-6005", 64, SourcePlus, 33316005},
		{NZ, "64(0)64123456", 64, SourceNumber, 64123456},
		{US, "(650) 253-0000", 1, SourceDefault, 6502530000},
		{US, "(1 610) 619 4466", 1, SourceNumber, 6106194466},
		{US, "+1 650 253 0000", 1, SourcePlus, 6502530000},
		{DE, "301/23456", 49, SourceDefault, 30123456},
		{IT, "393298888888", 39, SourceNumber, 3298888888},
		{BR, "+55 31 2128 6979", 55, SourcePlus, 3121286979},
	}

	for _, tt := range tests {
		number, err := Parse(tt.region, tt.input)
		if err != nil {
			t.Fatalf("Parse(%q, %q): %v", tt.region, tt.input, err)
		}
		if got := number.Code().Value(); got != tt.code {
			t.Fatalf("Parse(%q, %q) code = %d, want %d", tt.region, tt.input, got, tt.code)
		}
		if got := number.Code().Source(); got != tt.source {
			t.Fatalf("Parse(%q, %q) source = %v, want %v", tt.region, tt.input, got, tt.source)
		}
		if got := number.National().Value(); got != tt.national {
			t.Fatalf("Parse(%q, %q) national = %d, want %d", tt.region, tt.input, got, tt.national)
		}
	}
}

func TestParseKeepsLeadingZeros(t *testing.T) {
	number, err := Parse(IT, "+39 0236618300")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := number.National().Value(); got != 236618300 {
		t.Fatalf("national value = %d, want 236618300", got)
	}
	if got := number.National().Zeros(); got != 1 {
		t.Fatalf("leading zeros = %d, want 1", got)
	}
	if got := number.National().String(); got != "0236618300" {
		t.Fatalf("national string = %q, want %q", got, "0236618300")
	}
}

func TestParseExtension(t *testing.T) {
	tests := []struct {
		input     string
		national  uint64
		extension string
	}{
		{"tel:+64-3-331-6005;ext=1234", 33316005, "1234"},
		{"tel:03-331-6005;phone-context=+64", 33316005, ""},
		{"03-331 6005 ext. 1234", 33316005, "1234"},
		{"03 331 6005 extn 4321", 33316005, "4321"},
	}

	for _, tt := range tests {
		number, err := Parse(NZ, tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got := number.National().Value(); got != tt.national {
			t.Fatalf("Parse(%q) national = %d, want %d", tt.input, got, tt.national)
		}
		if got := number.Extension(); got != tt.extension {
			t.Fatalf("Parse(%q) extension = %q, want %q", tt.input, got, tt.extension)
		}
	}
}

func TestParseCarrierCode(t *testing.T) {
	number, err := Parse(BR, "012 3121286979")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := number.Carrier(); got != "12" {
		t.Fatalf("carrier = %q, want %q", got, "12")
	}
	if got := number.National().Value(); got != 3121286979 {
		t.Fatalf("national = %d, want 3121286979", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		region Region
		input  string
		err    error
	}{
		{US, "", ErrNoNumber},
		{US, "This is not a phone number", ErrNoNumber},
		{US, " 2 22#:", ErrNoNumber},
		{"", "2345", ErrInvalidCountryCode},
		{"", "+0 64 3 331 6005", ErrInvalidCountryCode},
		{"", "+999 123 456 789", ErrInvalidCountryCode},
		{US, "+1 2530000", ErrTooShortNsn},
		{NZ, "0064", ErrTooShortAfterIdd},
		{US, "12", ErrTooShortNsn},
		{US, ".;phone-context=", ErrTooShortNsn},
		{GB, "+44 207946000000000000", ErrTooLong},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.region, tt.input); !errors.Is(err, tt.err) {
			t.Fatalf("Parse(%q, %q) error = %v, want %v", tt.region, tt.input, err, tt.err)
		}
	}
}

func TestParseRegionID(t *testing.T) {
	tests := []struct {
		input  string
		region Region
	}{
		{"+1 6502530000", US},
		{"+44 7912345678", GB},
		{"+64 3 331 6005", NZ},
		{"+800 12345678", RegionNonGeographic},
		{"+979 123456789", RegionNonGeographic},
	}

	db := DefaultDatabase()
	for _, tt := range tests {
		number, err := ParseWith(db, "", tt.input)
		if err != nil {
			t.Fatalf("ParseWith(%q): %v", tt.input, err)
		}
		if got := number.RegionID(db); got != tt.region {
			t.Fatalf("RegionID(%q) = %q, want %q", tt.input, got, tt.region)
		}
	}
}

func TestPhoneNumberString(t *testing.T) {
	number, err := Parse(US, "(650) 253-0000")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := number.String(); got != "+16502530000" {
		t.Fatalf("String() = %q, want %q", got, "+16502530000")
	}

	again, err := ParseString(number.String())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if again.Code().Value() != number.Code().Value() ||
		again.National().Value() != number.National().Value() {
		t.Fatalf("round trip = %v, want %v", again, number)
	}
}

package phonenumber

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"+1 6502530000", true},
		{"+1 8002530000", true},
		{"+39 0236618300", true},
		{"+44 7912345678", true},
		{"+44 2070313000", true},
		{"+64 33316005", true},
		{"+800 12345678", true},
		{"+979 123456789", true},

		// Possible lengths but no matching descriptor.
		{"+44 791234567", false},
		{"+39 023661830000", false},
		{"+61 999999999", false},
	}

	for _, tt := range tests {
		number, err := Parse("", tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got := number.IsValid(); got != tt.valid {
			t.Fatalf("IsValid(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestNumberType(t *testing.T) {
	tests := []struct {
		input string
		kind  NumberType
	}{
		{"+1 6502530000", TypeFixedLineOrMobile},
		{"+1 8002530000", TypeTollFree},
		{"+1 9002530000", TypePremiumRate},
		{"+44 7912345678", TypeMobile},
		{"+44 2070313000", TypeFixedLine},
		{"+52 3312345678", TypeFixedLineOrMobile},
		{"+800 12345678", TypeTollFree},
		{"+979 123456789", TypePremiumRate},
		{"+44 791234567", TypeUnknown},
	}

	db := DefaultDatabase()
	for _, tt := range tests {
		number, err := ParseWith(db, "", tt.input)
		if err != nil {
			t.Fatalf("ParseWith(%q): %v", tt.input, err)
		}
		if got := number.Type(db); got != tt.kind {
			t.Fatalf("Type(%q) = %v, want %v", tt.input, got, tt.kind)
		}
	}
}

func TestCheckLength(t *testing.T) {
	tests := []struct {
		region Region
		nsn    string
		kind   NumberType
		want   Validation
	}{
		{NZ, "33316005", TypeUnknown, IsPossible},
		{NZ, "3316005", TypeUnknown, IsPossibleLocalOnly},
		{US, "6502530000", TypeUnknown, IsPossible},
		{US, "253000", TypeUnknown, TooShort},
		{US, "65025300000", TypeUnknown, TooLong},
		{GB, "20705030", TypeUnknown, InvalidLength},
		{GB, "791234567", TypeMobile, TooShort},
		{US, "6502530000", TypeSharedCost, InvalidLength},
	}

	db := DefaultDatabase()
	for _, tt := range tests {
		meta := db.ByID(tt.region)
		if meta == nil {
			t.Fatalf("no metadata for %q", tt.region)
		}
		if got := CheckLength(meta, tt.nsn, tt.kind); got != tt.want {
			t.Fatalf("CheckLength(%q, %q, %v) = %v, want %v", tt.region, tt.nsn, tt.kind, got, tt.want)
		}
	}
}

func TestValidationPredicates(t *testing.T) {
	if !IsPossible.IsPossible() || IsPossible.IsInvalid() {
		t.Fatal("IsPossible misclassified")
	}
	if !IsPossibleLocalOnly.IsPossible() {
		t.Fatal("IsPossibleLocalOnly should count as possible")
	}
	if !TooShort.IsInvalid() || TooShort.IsPossible() {
		t.Fatal("TooShort misclassified")
	}
}

func TestIsViable(t *testing.T) {
	tests := []struct {
		input  string
		viable bool
	}{
		{"12", true},
		{"911", true},
		{"+1 650 253 0000", true},
		{"65 02 53 00 00", true},
		{"1", false},
		{"ab", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsViable(tt.input); got != tt.viable {
			t.Fatalf("IsViable(%q) = %v, want %v", tt.input, got, tt.viable)
		}
	}
}

func TestMobileToken(t *testing.T) {
	if got := MobileToken(54); got != "9" {
		t.Fatalf("MobileToken(54) = %q, want %q", got, "9")
	}
	if got := MobileToken(52); got != "1" {
		t.Fatalf("MobileToken(52) = %q, want %q", got, "1")
	}
	if got := MobileToken(1); got != "" {
		t.Fatalf("MobileToken(1) = %q, want empty", got)
	}

	if !IsGeographicMobile(55) {
		t.Fatal("IsGeographicMobile(55) = false, want true")
	}
	if IsGeographicMobile(44) {
		t.Fatal("IsGeographicMobile(44) = true, want false")
	}
}

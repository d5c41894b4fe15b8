package phonenumber

import "testing"

func TestParseRfc3966(t *testing.T) {
	tests := []struct {
		input     string
		national  string
		prefix    string
		hasPrefix bool
		extension string
	}{
		{"tel:+64-3-331-6005", "-3-331-6005", "64", true, ""},
		{"+64-3-331-6005", "-3-331-6005", "64", true, ""},
		{"tel:+64-3-331-6005;ext=1234", "-3-331-6005", "64", true, "1234"},
		{"tel:+64-3-331-6005;isub=123;ext=456", "-3-331-6005", "64", true, "456"},
		{"tel:03-331-6005;phone-context=+64", "03-331-6005", "64", true, ""},
		{"tel:03-331-6005", "03-331-6005", "", false, ""},
	}

	for _, tt := range tests {
		number, ok := parseRfc3966(tt.input)
		if !ok {
			t.Fatalf("parseRfc3966(%q) failed", tt.input)
		}
		if number.national != tt.national {
			t.Fatalf("parseRfc3966(%q) national = %q, want %q", tt.input, number.national, tt.national)
		}
		if number.prefix != tt.prefix || number.hasPrefix != tt.hasPrefix {
			t.Fatalf("parseRfc3966(%q) prefix = %q,%v, want %q,%v",
				tt.input, number.prefix, number.hasPrefix, tt.prefix, tt.hasPrefix)
		}
		if number.extension != tt.extension {
			t.Fatalf("parseRfc3966(%q) extension = %q, want %q", tt.input, number.extension, tt.extension)
		}
	}
}

func TestParseRfc3966Rejects(t *testing.T) {
	tests := []string{
		"",
		"tel:",
		"tel:+",
		"tel:+;ext=1",
		"tel:+64-3-331-6005 x1234",
		"tel:+64-3-331-6005;ext",
		"03-331 6005",
		"+64 3-331 6005",
		"+1 650-253-0000",
	}

	for _, input := range tests {
		if _, ok := parseRfc3966(input); ok {
			t.Fatalf("parseRfc3966(%q) = ok, want rejection", input)
		}
	}
}

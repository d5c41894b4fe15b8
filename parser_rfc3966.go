package phonenumber

import "strings"

// parseRfc3966 reads an RFC 3966 "tel" form, with or without the scheme:
// a global number like "tel:+64-3-331-6005", or a local number whose
// country comes from the phone-context parameter. The whole input has to
// be consumed, anything the grammar cannot account for hands the input
// over to the free text parser.
func parseRfc3966(input string) (parsedNumber, bool) {
	s := input
	if len(s) >= 4 && strings.EqualFold(s[:4], "tel:") {
		s = s[4:]
	}

	var number parsedNumber

	if strings.HasPrefix(s, "+") {
		// The country prefix is bare digits. Anything else after the
		// plus, a space included, is not a tel form.
		rest := s[1:]
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return parsedNumber{}, false
		}
		number.prefix = rest[:i]
		number.hasPrefix = true
		s = rest[i:]
	}

	j := 0
	for j < len(s) && isRfcNumber(s[j]) {
		j++
	}
	if j == 0 {
		return parsedNumber{}, false
	}
	number.national = s[:j]
	s = s[j:]

	if s != "" && s[0] != ';' {
		return parsedNumber{}, false
	}

	params := make(map[string]string)
	for s != "" {
		name, value, rest, ok := rfcParameter(s)
		if !ok {
			return parsedNumber{}, false
		}
		params[name] = value
		s = rest
	}

	if !number.hasPrefix {
		if context, ok := params["phone-context"]; ok {
			number.hasPrefix = true
			number.prefix = strings.TrimPrefix(context, "+")
		}
	}
	number.extension = params["ext"]

	return number, true
}

func rfcParameter(s string) (name, value, rest string, ok bool) {
	if s[0] != ';' {
		return "", "", "", false
	}
	s = s[1:]

	i := 0
	for i < len(s) && isRfcName(s[i]) {
		i++
	}
	name = s[:i]
	s = s[i:]

	if !strings.HasPrefix(s, "=") {
		return "", "", "", false
	}
	s = s[1:]

	j := 0
	for j < len(s) {
		if isRfcValue(s[j]) {
			j++
			continue
		}
		// Percent-encoded octet.
		if s[j] == '%' && j+2 < len(s) && isHexDigit(s[j+1]) && isHexDigit(s[j+2]) {
			j += 3
			continue
		}
		break
	}
	value = s[:j]

	return name, value, s[j:], true
}

func isRfcSeparator(c byte) bool {
	return c == '-' || c == '.' || c == '(' || c == ')'
}

func isRfcNumber(c byte) bool {
	return isHexDigit(c) || isRfcSeparator(c)
}

func isRfcName(c byte) bool {
	return isAlphanum(c) || c == '-'
}

func isRfcValue(c byte) bool {
	switch c {
	case '[', ']', '/', ':', '&', '+', '$':
		return true
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return isAlphanum(c)
}

func isAlphanum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

package phonenumber

import (
	"regexp"
	"strings"
	"unicode"
)

// Fixed patterns, compiled once. Metadata patterns go through the regex
// cache instead.
var (
	reValidStart     = regexp.MustCompile(validStartPattern)
	reSecondNumber   = regexp.MustCompile(secondNumberStartPattern)
	reUnwantedEnd    = regexp.MustCompile(unwantedEndPattern)
	reValidAlpha     = regexp.MustCompile(`^(?:` + validAlphaPhonePattern + `)$`)
	reViable         = regexp.MustCompile(viablePattern)
	reExtension      = regexp.MustCompile(extnPattern)
	reSeparator      = regexp.MustCompile(separatorPattern)
	reFirstGroup     = regexp.MustCompile(firstGroupPattern)
	rePlus           = regexp.MustCompile(`^[` + plusChars + `]+`)
)

// extractViableCandidate trims text to the portion that could be a phone
// number: it starts at the first plus or digit, drops trailing characters
// that are neither digits nor letters nor "#", and cuts before a second
// number introduced with "/x" or "\x".
func extractViableCandidate(s string) string {
	loc := reValidStart.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	s = s[loc[0]:]

	if loc := reUnwantedEnd.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	if loc := reSecondNumber.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return s
}

// isViable reports whether a candidate has the minimum shape of a phone
// number.
func isViable(s string) bool {
	if len(s) < minLengthNsn {
		return false
	}
	return reViable.MatchString(s)
}

// normalizeNumber converts a candidate to ASCII digits. When the candidate
// carries at least three letters the keypad mapping is applied so vanity
// numbers like "1-800-FLOWERS" survive, otherwise letters are dropped along
// with punctuation.
func normalizeNumber(s string) string {
	if reValidAlpha.MatchString(s) {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if d, ok := asciiDigit(r); ok {
				b.WriteByte(d)
				continue
			}
			if d, ok := alphaMappings[unicode.ToUpper(r)]; ok {
				b.WriteByte(d)
			}
		}
		return b.String()
	}
	return digitsOnly(s)
}

// digitsOnly keeps the digits of s, converting every supported script to
// ASCII.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := asciiDigit(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// asciiDigit maps a decimal digit of any supported script to its ASCII
// form.
func asciiDigit(r rune) (byte, bool) {
	for _, zero := range digitBlockZeros {
		if r >= zero && r <= zero+9 {
			return byte('0' + r - zero), true
		}
	}
	return 0, false
}

// maybeStripExtension splits an extension suffix off the candidate. The
// remainder must still be viable on its own, otherwise the candidate is
// returned untouched.
func maybeStripExtension(s string) (string, string) {
	m := reExtension.FindStringSubmatchIndex(s)
	if m == nil {
		return s, ""
	}
	if !isViable(s[:m[0]]) {
		return s, ""
	}
	for group := 1; group <= 3; group++ {
		if m[2*group] >= 0 {
			return s[:m[0]], s[m[2*group]:m[2*group+1]]
		}
	}
	return s, ""
}

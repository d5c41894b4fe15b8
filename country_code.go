package phonenumber

import (
	"regexp"
	"strconv"
	"strings"
)

// resolveCountryCode settles the country calling code of a parsed number:
// it strips any plus signs or international dialing prefix, validates an
// explicit code, scans the leading digits for one, or falls back to the
// default region.
func resolveCountryCode(db *Database, region Region, number parsedNumber) (parsedNumber, error) {
	var idd CachedPattern
	if meta := db.ByID(region); meta != nil {
		idd = meta.internationalPrefix
	}

	number = stripInternationalPrefix(idd, number)

	if number.source == SourceDefault {
		meta := db.ByID(region)
		if meta == nil {
			return number, ErrInvalidCountryCode
		}

		// A number in national form may still carry its country code in
		// front. Strip it when keeping it would make the number invalid.
		code := strconv.Itoa(int(meta.countryCode))
		if strings.HasPrefix(number.national, code) &&
			(!meta.general.Matches(number.national) ||
				!lengthFor(meta, number.national, TypeUnknown).IsPossible()) {
			number.source = SourceNumber
			number.national = number.national[len(code):]
		}

		number.prefix = code
		number.hasPrefix = true
		return number, nil
	}

	if len(number.national) <= minLengthNsn {
		if number.source == SourceIdd {
			return number, ErrTooShortAfterIdd
		}
		return number, ErrTooShortNsn
	}

	if number.hasPrefix {
		code, err := strconv.ParseUint(number.prefix, 10, 16)
		if err != nil {
			return number, ErrInvalidCountryCode
		}
		if len(db.ByCode(uint16(code))) == 0 {
			return number, ErrInvalidCountryCode
		}
		number.prefix = strconv.FormatUint(code, 10)
		return number, nil
	}

	// Codes never start with a zero.
	if strings.HasPrefix(number.national, "0") {
		return number, ErrInvalidCountryCode
	}

	for n := 1; n <= maxLengthCountryCode && n <= len(number.national); n++ {
		code, err := strconv.ParseUint(number.national[:n], 10, 16)
		if err != nil {
			break
		}
		all := db.ByCode(uint16(code))
		if len(all) == 0 {
			continue
		}

		rest := number.national[n:]
		if lengthFor(all[0], rest, TypeUnknown) == TooShort {
			return number, ErrTooShortNsn
		}

		number.national = rest
		number.prefix = strconv.FormatUint(code, 10)
		number.hasPrefix = true
		return number, nil
	}

	return number, ErrInvalidCountryCode
}

// stripInternationalPrefix removes leading plus signs or the region's
// international dialing prefix, records where the country code will come
// from, and normalizes the number to ASCII digits.
func stripInternationalPrefix(idd CachedPattern, number parsedNumber) parsedNumber {
	// An explicit prefix, from RFC 3966, counts as a plus.
	if number.hasPrefix {
		number.source = SourcePlus
		return normalizeParsed(number)
	}

	if loc := rePlus.FindStringIndex(number.national); loc != nil {
		number.source = SourcePlus
		number.national = number.national[loc[1]:]
		number = normalizeParsed(number)

		// A dialing prefix after the plus is redundant but accepted.
		if re, err := idd.Regexp(); err != nil || re == nil || !matchesAtStart(re, number.national) {
			return number
		}
	} else {
		number.source = SourceDefault
		number = normalizeParsed(number)
	}

	re, err := idd.Regexp()
	if err != nil || re == nil {
		return number
	}
	if m := re.FindStringIndex(number.national); m != nil && m[0] == 0 {
		// A zero after the dialing prefix cannot start a country code.
		if !strings.HasPrefix(number.national[m[1]:], "0") {
			if number.source != SourcePlus {
				number.source = SourceIdd
			}
			number.national = number.national[m[1]:]
		}
	}
	return number
}

func matchesAtStart(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

func normalizeParsed(number parsedNumber) parsedNumber {
	number.national = normalizeNumber(number.national)
	if number.hasPrefix {
		number.prefix = digitsOnly(number.prefix)
	}
	if number.extension != "" {
		number.extension = digitsOnly(number.extension)
	}
	return number
}

// mobileTokens maps calling codes to the digit dialed in front of a mobile
// national number when calling from abroad.
var mobileTokens = map[uint16]string{
	52: "1",
	54: "9",
}

// MobileToken returns the mobile dialing token of a calling code, or the
// empty string when the code has none.
func MobileToken(code uint16) string {
	return mobileTokens[code]
}

// geoMobileCodes lists the calling codes whose mobile numbers are assigned
// geographically, so a mobile number there still maps to an area.
var geoMobileCodes = map[uint16]bool{
	52: true,
	54: true,
	55: true,
	62: true,
}

// IsGeographicMobile reports whether mobile numbers under a calling code
// are tied to geographic areas.
func IsGeographicMobile(code uint16) bool {
	return geoMobileCodes[code]
}

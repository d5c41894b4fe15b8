package phonenumber

import "strconv"

// parsedNumber carries the pieces of a number through the parsing pipeline
// before they are validated and packed into a PhoneNumber.
type parsedNumber struct {
	source    CountryCodeSource
	national  string
	prefix    string
	hasPrefix bool
	extension string
	carrier   string
}

// Parse parses a phone number from text using the bundled metadata. The
// region resolves numbers written in national format; it may be empty when
// the input always carries its country code.
func Parse(region Region, input string) (*PhoneNumber, error) {
	return ParseWith(DefaultDatabase(), region, input)
}

// ParseString parses a number that carries its own country code, such as
// the E.164 form PhoneNumber.String produces.
func ParseString(input string) (*PhoneNumber, error) {
	return Parse("", input)
}

// ParseWith parses a phone number against a specific database.
//
// The input is first read as an RFC 3966 "tel" form, then as free text: the
// candidate is cut out of the surrounding characters, an extension suffix is
// split off, letters go through the keypad mapping and all digits normalize
// to ASCII. The country calling code comes from an explicit plus or
// phone-context, from the region's international dialing prefix, from the
// leading digits, or from the region itself.
func ParseWith(db *Database, region Region, input string) (*PhoneNumber, error) {
	number, ok := parseRfc3966(input)
	if !ok {
		if number, ok = parseNatural(input); !ok {
			return nil, ErrNoNumber
		}
	}

	number, err := resolveCountryCode(db, region, number)
	if err != nil {
		return nil, err
	}

	// Strip the national prefix and any carrier code using the default
	// region's plan. The stripped form is kept only while it stays long
	// enough to be a number.
	if meta := db.ByID(region); meta != nil {
		potential := stripNationalPrefix(meta, number)
		if lengthFor(meta, potential.national, TypeUnknown) != TooShort {
			number = potential
		}
	}

	if len(number.national) < minLengthNsn {
		return nil, ErrTooShortNsn
	}
	if len(number.national) > maxLengthNsn {
		return nil, ErrTooLong
	}

	var code uint64
	if number.hasPrefix {
		if code, err = strconv.ParseUint(number.prefix, 10, 16); err != nil {
			return nil, ErrMalformedInteger
		}
	}

	value, err := strconv.ParseUint(number.national, 10, 64)
	if err != nil {
		return nil, ErrMalformedInteger
	}

	zeros := 0
	for zeros < len(number.national) && number.national[zeros] == '0' {
		zeros++
	}

	return &PhoneNumber{
		code: CountryCode{
			value:  uint16(code),
			source: number.source,
		},
		national: NationalNumber{
			value: value,
			zeros: uint8(zeros),
		},
		extension: number.extension,
		carrier:   number.carrier,
	}, nil
}

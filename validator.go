package phonenumber

// IsViable reports whether text has the minimum shape of a phone number,
// without consulting any metadata.
func IsViable(s string) bool {
	return isViable(s)
}

// CheckLength classifies the length of a national significant number
// against the possible lengths of one of the region's number classes. Use
// TypeUnknown to check against the region as a whole.
func CheckLength(meta *Metadata, nsn string, kind NumberType) Validation {
	return lengthFor(meta, nsn, kind)
}

func lengthFor(meta *Metadata, nsn string, kind NumberType) Validation {
	desc := &meta.general
	if kind != TypeUnknown {
		if desc = meta.descriptorFor(kind); desc == nil {
			return InvalidLength
		}
	}

	possible := desc.lengths
	if len(possible) == 0 {
		possible = meta.general.lengths
	}
	if len(possible) == 0 {
		return InvalidLength
	}

	length := uint16(len(nsn))
	for _, l := range desc.localLengths {
		if l == length {
			return IsPossibleLocalOnly
		}
	}

	minimum := possible[0]
	switch {
	case length == minimum:
		return IsPossible
	case length < minimum:
		return TooShort
	case length > possible[len(possible)-1]:
		return TooLong
	}
	for _, l := range possible {
		if l == length {
			return IsPossible
		}
	}
	return InvalidLength
}

// sourceMetadata finds the region a number belongs to among those sharing
// its calling code. Regions with a leading digits pattern claim matching
// numbers outright, the others claim numbers they can classify.
func sourceMetadata(db *Database, number *PhoneNumber) *Metadata {
	all := db.ByCode(number.code.value)
	if len(all) == 0 {
		return nil
	}
	if len(all) == 1 {
		return all[0]
	}

	national := number.national.String()
	for _, meta := range all {
		if !meta.leadingDigits.IsZero() {
			if meta.leadingDigits.MatchesAt(national) {
				return meta
			}
		} else if numberType(meta, national) != TypeUnknown {
			return meta
		}
	}
	return nil
}

// numberType classifies a national significant number within a region. The
// probes run from the most specific services down to fixed line and mobile,
// which overlap in regions that cannot tell them apart.
func numberType(meta *Metadata, national string) NumberType {
	if !meta.general.Matches(national) {
		return TypeUnknown
	}

	matches := func(d *Descriptor) bool {
		return d != nil && d.Matches(national)
	}

	switch {
	case matches(meta.premiumRate):
		return TypePremiumRate
	case matches(meta.tollFree):
		return TypeTollFree
	case matches(meta.sharedCost):
		return TypeSharedCost
	case matches(meta.voip):
		return TypeVoip
	case matches(meta.personalNumber):
		return TypePersonalNumber
	case matches(meta.pager):
		return TypePager
	case matches(meta.uan):
		return TypeUan
	case matches(meta.voicemail):
		return TypeVoicemail
	}

	if matches(meta.fixedLine) {
		if meta.mobile != nil && meta.fixedLine.pattern.source == meta.mobile.pattern.source {
			return TypeFixedLineOrMobile
		}
		if matches(meta.mobile) {
			return TypeFixedLineOrMobile
		}
		return TypeFixedLine
	}
	if matches(meta.mobile) {
		return TypeMobile
	}

	return TypeUnknown
}

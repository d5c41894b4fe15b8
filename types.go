package phonenumber

// CountryCodeSource records how the country calling code of a parsed number
// was determined.
type CountryCodeSource int

const (
	// SourceDefault means the code was taken from the default region passed
	// to the parser rather than from the input itself.
	SourceDefault CountryCodeSource = iota

	// SourcePlus means the number began with a plus sign, possibly preceded
	// by formatting characters.
	SourcePlus

	// SourceIdd means the number began with an international direct dialing
	// prefix of the default region.
	SourceIdd

	// SourceNumber means the code was recognized from the leading digits of
	// the number without any prefix.
	SourceNumber
)

func (s CountryCodeSource) String() string {
	switch s {
	case SourcePlus:
		return "plus"
	case SourceIdd:
		return "idd"
	case SourceNumber:
		return "number"
	default:
		return "default"
	}
}

// NumberType classifies a phone number by the kind of service behind it.
type NumberType int

const (
	// TypeUnknown means the number does not match any descriptor of its
	// region, or no metadata was available to classify it.
	TypeUnknown NumberType = iota

	TypeFixedLine
	TypeMobile

	// TypeFixedLineOrMobile is used where fixed line and mobile ranges
	// cannot be told apart, for example in the US.
	TypeFixedLineOrMobile

	TypeTollFree
	TypePremiumRate

	// TypeSharedCost numbers split the call cost between caller and callee.
	TypeSharedCost
	TypePersonalNumber
	TypeVoip
	TypePager

	// TypeUan covers universal access numbers and company numbers that may
	// route to an office or a mobile.
	TypeUan
	TypeEmergency
	TypeVoicemail
	TypeShortCode
	TypeStandardRate

	// TypeCarrier numbers are carrier specific and only reachable from
	// within that carrier's network.
	TypeCarrier

	// TypeNoInternational numbers cannot be dialed from outside their
	// country.
	TypeNoInternational
)

func (t NumberType) String() string {
	switch t {
	case TypeFixedLine:
		return "fixed line"
	case TypeMobile:
		return "mobile"
	case TypeFixedLineOrMobile:
		return "fixed line or mobile"
	case TypeTollFree:
		return "toll free"
	case TypePremiumRate:
		return "premium rate"
	case TypeSharedCost:
		return "shared cost"
	case TypePersonalNumber:
		return "personal number"
	case TypeVoip:
		return "voip"
	case TypePager:
		return "pager"
	case TypeUan:
		return "uan"
	case TypeEmergency:
		return "emergency"
	case TypeVoicemail:
		return "voicemail"
	case TypeShortCode:
		return "short code"
	case TypeStandardRate:
		return "standard rate"
	case TypeCarrier:
		return "carrier"
	case TypeNoInternational:
		return "no international"
	default:
		return "unknown"
	}
}

// Mode selects an output layout for formatting.
type Mode int

const (
	// E164 produces "+<code><national>" with no separators and no
	// extension.
	E164 Mode = iota

	// International produces "+<code> <formatted national>[ ext]".
	International

	// National produces the formatted national number only.
	National

	// Rfc3966 produces a "tel:" URI.
	Rfc3966
)

// Validation is the outcome of a possible-length check.
type Validation int

const (
	// IsPossible means the length matches a possible national length.
	IsPossible Validation = iota

	// IsPossibleLocalOnly means the length is only valid for local dialing.
	IsPossibleLocalOnly

	// InvalidCountryCode means the calling code is not recognized.
	InvalidCountryCode

	// TooShort means the number has fewer digits than any possible length.
	TooShort

	// InvalidLength means the length is between possible lengths but does
	// not match any of them.
	InvalidLength

	// TooLong means the number has more digits than any possible length.
	TooLong
)

// IsPossible reports whether the validation allows the number, including the
// local-only case.
func (v Validation) IsPossible() bool {
	return v == IsPossible || v == IsPossibleLocalOnly
}

// IsInvalid reports whether the validation rejects the number outright.
func (v Validation) IsInvalid() bool {
	return !v.IsPossible()
}

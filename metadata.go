package phonenumber

// Metadata describes the numbering plan of one region: its calling code,
// prefixes, number descriptors per service type and formatting rules.
type Metadata struct {
	general         Descriptor
	fixedLine       *Descriptor
	mobile          *Descriptor
	tollFree        *Descriptor
	premiumRate     *Descriptor
	sharedCost      *Descriptor
	personalNumber  *Descriptor
	voip            *Descriptor
	pager           *Descriptor
	uan             *Descriptor
	emergency       *Descriptor
	voicemail       *Descriptor
	shortCode       *Descriptor
	standardRate    *Descriptor
	carrier         *Descriptor
	noInternational *Descriptor

	id          Region
	countryCode uint16

	internationalPrefix          CachedPattern
	preferredInternationalPrefix string
	nationalPrefix               string
	preferredExtensionPrefix     string
	nationalPrefixForParsing     CachedPattern
	nationalPrefixTransformRule  string

	formats              []FormatRule
	internationalFormats []FormatRule
	mainCountryForCode   bool
	leadingDigits        CachedPattern
	mobileNumberPortable bool
}

// ID returns the region this metadata belongs to.
func (m *Metadata) ID() Region {
	return m.id
}

// CountryCode returns the region's calling code.
func (m *Metadata) CountryCode() uint16 {
	return m.countryCode
}

// General returns the descriptor matching every valid number of the region.
func (m *Metadata) General() *Descriptor {
	return &m.general
}

// FixedLine returns the fixed line descriptor, or nil when the region has
// none.
func (m *Metadata) FixedLine() *Descriptor { return m.fixedLine }

// Mobile returns the mobile descriptor, or nil when the region has none.
func (m *Metadata) Mobile() *Descriptor { return m.mobile }

// TollFree returns the toll free descriptor, or nil when the region has
// none.
func (m *Metadata) TollFree() *Descriptor { return m.tollFree }

// PremiumRate returns the premium rate descriptor, or nil when the region
// has none.
func (m *Metadata) PremiumRate() *Descriptor { return m.premiumRate }

// SharedCost returns the shared cost descriptor, or nil when the region has
// none.
func (m *Metadata) SharedCost() *Descriptor { return m.sharedCost }

// PersonalNumber returns the personal number descriptor, or nil when the
// region has none.
func (m *Metadata) PersonalNumber() *Descriptor { return m.personalNumber }

// Voip returns the VoIP descriptor, or nil when the region has none.
func (m *Metadata) Voip() *Descriptor { return m.voip }

// Pager returns the pager descriptor, or nil when the region has none.
func (m *Metadata) Pager() *Descriptor { return m.pager }

// Uan returns the universal access number descriptor, or nil when the
// region has none.
func (m *Metadata) Uan() *Descriptor { return m.uan }

// Emergency returns the emergency descriptor, or nil when the region has
// none.
func (m *Metadata) Emergency() *Descriptor { return m.emergency }

// Voicemail returns the voicemail descriptor, or nil when the region has
// none.
func (m *Metadata) Voicemail() *Descriptor { return m.voicemail }

// ShortCode returns the short code descriptor, or nil when the region has
// none.
func (m *Metadata) ShortCode() *Descriptor { return m.shortCode }

// StandardRate returns the standard rate descriptor, or nil when the region
// has none.
func (m *Metadata) StandardRate() *Descriptor { return m.standardRate }

// Carrier returns the carrier specific descriptor, or nil when the region
// has none.
func (m *Metadata) Carrier() *Descriptor { return m.carrier }

// NoInternational returns the descriptor of numbers unreachable from
// abroad, or nil when the region has none.
func (m *Metadata) NoInternational() *Descriptor { return m.noInternational }

// InternationalPrefix returns the pattern matching the prefixes the region
// dials in front of international numbers.
func (m *Metadata) InternationalPrefix() CachedPattern {
	return m.internationalPrefix
}

// PreferredInternationalPrefix returns the prefix to show when several are
// possible, or the empty string.
func (m *Metadata) PreferredInternationalPrefix() string {
	return m.preferredInternationalPrefix
}

// NationalPrefix returns the digits dialed in front of national numbers, or
// the empty string when the region has none.
func (m *Metadata) NationalPrefix() string {
	return m.nationalPrefix
}

// PreferredExtensionPrefix returns the region's preferred marker before an
// extension, or the empty string for the default.
func (m *Metadata) PreferredExtensionPrefix() string {
	return m.preferredExtensionPrefix
}

// NationalPrefixForParsing returns the pattern used to strip national
// prefixes and carrier codes while parsing.
func (m *Metadata) NationalPrefixForParsing() CachedPattern {
	return m.nationalPrefixForParsing
}

// NationalPrefixTransformRule returns the template applied when stripping
// the parsing prefix rewrites the number, or the empty string.
func (m *Metadata) NationalPrefixTransformRule() string {
	return m.nationalPrefixTransformRule
}

// Formats returns the national formatting rules in priority order.
func (m *Metadata) Formats() []FormatRule {
	return m.formats
}

// InternationalFormats returns the formatting rules for international
// layout. When the region defines none the national rules apply.
func (m *Metadata) InternationalFormats() []FormatRule {
	if len(m.internationalFormats) == 0 {
		return m.formats
	}
	return m.internationalFormats
}

// IsMainCountryForCode reports whether this region is the main one for its
// calling code, like the US for 1.
func (m *Metadata) IsMainCountryForCode() bool {
	return m.mainCountryForCode
}

// LeadingDigits returns the pattern narrowing which numbers of a shared
// calling code belong to this region.
func (m *Metadata) LeadingDigits() CachedPattern {
	return m.leadingDigits
}

// IsMobileNumberPortable reports whether mobile numbers can move between
// carriers in this region.
func (m *Metadata) IsMobileNumberPortable() bool {
	return m.mobileNumberPortable
}

// descriptorFor maps a number type to its descriptor, nil when the region
// does not define it.
func (m *Metadata) descriptorFor(t NumberType) *Descriptor {
	switch t {
	case TypeFixedLine, TypeFixedLineOrMobile:
		return m.fixedLine
	case TypeMobile:
		return m.mobile
	case TypeTollFree:
		return m.tollFree
	case TypePremiumRate:
		return m.premiumRate
	case TypeSharedCost:
		return m.sharedCost
	case TypePersonalNumber:
		return m.personalNumber
	case TypeVoip:
		return m.voip
	case TypePager:
		return m.pager
	case TypeUan:
		return m.uan
	case TypeEmergency:
		return m.emergency
	case TypeVoicemail:
		return m.voicemail
	case TypeShortCode:
		return m.shortCode
	case TypeStandardRate:
		return m.standardRate
	case TypeCarrier:
		return m.carrier
	case TypeNoInternational:
		return m.noInternational
	default:
		return nil
	}
}

// Descriptor describes one class of numbers within a region.
type Descriptor struct {
	pattern      CachedPattern
	lengths      []uint16
	localLengths []uint16
	example      string
}

// Pattern returns the national number pattern of the descriptor.
func (d *Descriptor) Pattern() CachedPattern {
	return d.pattern
}

// PossibleLengths returns the lengths a number of this class may have.
func (d *Descriptor) PossibleLengths() []uint16 {
	return d.lengths
}

// PossibleLocalLengths returns lengths valid only for local dialing.
func (d *Descriptor) PossibleLocalLengths() []uint16 {
	return d.localLengths
}

// Example returns an example number of this class, or the empty string.
func (d *Descriptor) Example() string {
	return d.example
}

// Matches reports whether the whole of nsn matches the descriptor.
func (d *Descriptor) Matches(nsn string) bool {
	return d.pattern.MatchesFully(nsn)
}

// FormatRule is one formatting rule: the pattern a national number must match
// and the replacement template laying out its groups.
type FormatRule struct {
	pattern                CachedPattern
	format                 string
	leadingDigits          []CachedPattern
	nationalPrefixRule     string
	nationalPrefixOptional bool
	domesticCarrier        string
}

// Pattern returns the grouping pattern the national number must fully
// match.
func (f *FormatRule) Pattern() CachedPattern {
	return f.pattern
}

// Template returns the replacement template, with "$1" style group
// references.
func (f *FormatRule) Template() string {
	return f.format
}

// LeadingDigits returns the successively refined prefix patterns deciding
// whether this rule applies. The last one is authoritative.
func (f *FormatRule) LeadingDigits() []CachedPattern {
	return f.leadingDigits
}

// NationalPrefixRule returns the template prepending the national prefix to
// the first group, with "$NP" and "$FG" placeholders, or the empty string.
func (f *FormatRule) NationalPrefixRule() string {
	return f.nationalPrefixRule
}

// IsNationalPrefixOptional reports whether the national prefix may be
// omitted when formatting with this rule.
func (f *FormatRule) IsNationalPrefixOptional() bool {
	return f.nationalPrefixOptional
}

// DomesticCarrier returns the template used when formatting with a carrier
// code, with "$CC" marking the code, or the empty string.
func (f *FormatRule) DomesticCarrier() string {
	return f.domesticCarrier
}

// applies reports whether this rule is eligible for nsn: the most specific
// leading digits pattern must match at the start, and the grouping pattern
// must cover the whole number.
func (f *FormatRule) applies(nsn string) bool {
	if len(f.leadingDigits) > 0 {
		last := f.leadingDigits[len(f.leadingDigits)-1]
		if !last.MatchesAt(nsn) {
			return false
		}
	}
	return f.pattern.MatchesFully(nsn)
}

package phonenumber

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RawMetadata is the serialized form of one region's metadata. It decodes
// from the libphonenumber territory XML as well as from the JSON, YAML and
// binary forms this package emits.
type RawMetadata struct {
	ID          string `json:"id" yaml:"id" msgpack:"id"`
	CountryCode uint16 `json:"countryCode" yaml:"countryCode" msgpack:"cc"`

	General         *RawDescriptor `json:"general,omitempty" yaml:"general,omitempty" msgpack:"gen,omitempty"`
	FixedLine       *RawDescriptor `json:"fixedLine,omitempty" yaml:"fixedLine,omitempty" msgpack:"fl,omitempty"`
	Mobile          *RawDescriptor `json:"mobile,omitempty" yaml:"mobile,omitempty" msgpack:"mob,omitempty"`
	TollFree        *RawDescriptor `json:"tollFree,omitempty" yaml:"tollFree,omitempty" msgpack:"tf,omitempty"`
	PremiumRate     *RawDescriptor `json:"premiumRate,omitempty" yaml:"premiumRate,omitempty" msgpack:"pr,omitempty"`
	SharedCost      *RawDescriptor `json:"sharedCost,omitempty" yaml:"sharedCost,omitempty" msgpack:"sc,omitempty"`
	PersonalNumber  *RawDescriptor `json:"personalNumber,omitempty" yaml:"personalNumber,omitempty" msgpack:"pn,omitempty"`
	Voip            *RawDescriptor `json:"voip,omitempty" yaml:"voip,omitempty" msgpack:"vo,omitempty"`
	Pager           *RawDescriptor `json:"pager,omitempty" yaml:"pager,omitempty" msgpack:"pg,omitempty"`
	Uan             *RawDescriptor `json:"uan,omitempty" yaml:"uan,omitempty" msgpack:"uan,omitempty"`
	Emergency       *RawDescriptor `json:"emergency,omitempty" yaml:"emergency,omitempty" msgpack:"em,omitempty"`
	Voicemail       *RawDescriptor `json:"voicemail,omitempty" yaml:"voicemail,omitempty" msgpack:"vm,omitempty"`
	ShortCode       *RawDescriptor `json:"shortCode,omitempty" yaml:"shortCode,omitempty" msgpack:"sh,omitempty"`
	StandardRate    *RawDescriptor `json:"standardRate,omitempty" yaml:"standardRate,omitempty" msgpack:"sr,omitempty"`
	Carrier         *RawDescriptor `json:"carrier,omitempty" yaml:"carrier,omitempty" msgpack:"ca,omitempty"`
	NoInternational *RawDescriptor `json:"noInternational,omitempty" yaml:"noInternational,omitempty" msgpack:"ni,omitempty"`

	InternationalPrefix          string `json:"internationalPrefix,omitempty" yaml:"internationalPrefix,omitempty" msgpack:"ip,omitempty"`
	PreferredInternationalPrefix string `json:"preferredInternationalPrefix,omitempty" yaml:"preferredInternationalPrefix,omitempty" msgpack:"pip,omitempty"`
	NationalPrefix               string `json:"nationalPrefix,omitempty" yaml:"nationalPrefix,omitempty" msgpack:"np,omitempty"`
	PreferredExtensionPrefix     string `json:"preferredExtensionPrefix,omitempty" yaml:"preferredExtensionPrefix,omitempty" msgpack:"pep,omitempty"`
	NationalPrefixForParsing     string `json:"nationalPrefixForParsing,omitempty" yaml:"nationalPrefixForParsing,omitempty" msgpack:"npp,omitempty"`
	NationalPrefixTransformRule  string `json:"nationalPrefixTransformRule,omitempty" yaml:"nationalPrefixTransformRule,omitempty" msgpack:"npt,omitempty"`

	Formats              []RawFormat `json:"formats,omitempty" yaml:"formats,omitempty" msgpack:"fmt,omitempty"`
	InternationalFormats []RawFormat `json:"internationalFormats,omitempty" yaml:"internationalFormats,omitempty" msgpack:"ifmt,omitempty"`
	MainCountryForCode   bool        `json:"mainCountryForCode,omitempty" yaml:"mainCountryForCode,omitempty" msgpack:"main,omitempty"`
	LeadingDigits        string      `json:"leadingDigits,omitempty" yaml:"leadingDigits,omitempty" msgpack:"ld,omitempty"`
	MobileNumberPortable bool        `json:"mobileNumberPortable,omitempty" yaml:"mobileNumberPortable,omitempty" msgpack:"mnp,omitempty"`
}

// RawDescriptor is the serialized form of one number class.
type RawDescriptor struct {
	Pattern      string   `json:"pattern,omitempty" yaml:"pattern,omitempty" msgpack:"p,omitempty"`
	Lengths      []uint16 `json:"lengths,omitempty" yaml:"lengths,omitempty" msgpack:"l,omitempty"`
	LocalLengths []uint16 `json:"localLengths,omitempty" yaml:"localLengths,omitempty" msgpack:"ll,omitempty"`
	Example      string   `json:"example,omitempty" yaml:"example,omitempty" msgpack:"e,omitempty"`
}

// RawFormat is the serialized form of one formatting rule.
type RawFormat struct {
	Pattern                string   `json:"pattern" yaml:"pattern" msgpack:"p"`
	Format                 string   `json:"format" yaml:"format" msgpack:"f"`
	LeadingDigits          []string `json:"leadingDigits,omitempty" yaml:"leadingDigits,omitempty" msgpack:"ld,omitempty"`
	NationalPrefixRule     string   `json:"nationalPrefixRule,omitempty" yaml:"nationalPrefixRule,omitempty" msgpack:"npr,omitempty"`
	NationalPrefixOptional bool     `json:"nationalPrefixOptional,omitempty" yaml:"nationalPrefixOptional,omitempty" msgpack:"npo,omitempty"`
	DomesticCarrier        string   `json:"domesticCarrier,omitempty" yaml:"domesticCarrier,omitempty" msgpack:"dc,omitempty"`
}

// build turns the raw record into its runtime form with all patterns bound
// to the cache.
func (r *RawMetadata) build(cache *RegexCache) *Metadata {
	pattern := func(src string) CachedPattern {
		return CachedPattern{cache: cache, source: stripPatternSpace(src)}
	}
	descriptor := func(raw *RawDescriptor) *Descriptor {
		if raw == nil {
			return nil
		}
		return &Descriptor{
			pattern:      pattern(raw.Pattern),
			lengths:      raw.Lengths,
			localLengths: raw.LocalLengths,
			example:      raw.Example,
		}
	}
	formats := func(raws []RawFormat) []FormatRule {
		out := make([]FormatRule, 0, len(raws))
		for _, raw := range raws {
			leading := make([]CachedPattern, 0, len(raw.LeadingDigits))
			for _, ld := range raw.LeadingDigits {
				leading = append(leading, pattern(ld))
			}
			out = append(out, FormatRule{
				pattern:                pattern(raw.Pattern),
				format:                 raw.Format,
				leadingDigits:          leading,
				nationalPrefixRule:     raw.NationalPrefixRule,
				nationalPrefixOptional: raw.NationalPrefixOptional,
				domesticCarrier:        raw.DomesticCarrier,
			})
		}
		return out
	}

	meta := &Metadata{
		id:          Region(r.ID),
		countryCode: r.CountryCode,

		fixedLine:       descriptor(r.FixedLine),
		mobile:          descriptor(r.Mobile),
		tollFree:        descriptor(r.TollFree),
		premiumRate:     descriptor(r.PremiumRate),
		sharedCost:      descriptor(r.SharedCost),
		personalNumber:  descriptor(r.PersonalNumber),
		voip:            descriptor(r.Voip),
		pager:           descriptor(r.Pager),
		uan:             descriptor(r.Uan),
		emergency:       descriptor(r.Emergency),
		voicemail:       descriptor(r.Voicemail),
		shortCode:       descriptor(r.ShortCode),
		standardRate:    descriptor(r.StandardRate),
		carrier:         descriptor(r.Carrier),
		noInternational: descriptor(r.NoInternational),

		internationalPrefix:          pattern(r.InternationalPrefix),
		preferredInternationalPrefix: r.PreferredInternationalPrefix,
		nationalPrefix:               r.NationalPrefix,
		preferredExtensionPrefix:     r.PreferredExtensionPrefix,
		nationalPrefixForParsing:     pattern(r.NationalPrefixForParsing),
		nationalPrefixTransformRule:  r.NationalPrefixTransformRule,

		formats:              formats(r.Formats),
		internationalFormats: formats(r.InternationalFormats),
		mainCountryForCode:   r.MainCountryForCode,
		leadingDigits:        pattern(r.LeadingDigits),
		mobileNumberPortable: r.MobileNumberPortable,
	}

	if general := descriptor(r.General); general != nil {
		meta.general = *general
	}

	// Regions without an explicit parsing prefix strip their plain national
	// prefix.
	if meta.nationalPrefixForParsing.IsZero() && meta.nationalPrefix != "" {
		meta.nationalPrefixForParsing = pattern(meta.nationalPrefix)
	}

	return meta
}

// DecodeXML reads region records from a libphonenumber territory document.
func DecodeXML(r io.Reader) ([]RawMetadata, error) {
	dec := xml.NewDecoder(r)
	var out []RawMetadata

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("phonenumber: reading metadata: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			if text, isText := tok.(xml.CharData); isText && strings.TrimSpace(string(text)) != "" {
				return nil, &UnhandledEventError{Phase: "root", Event: "text"}
			}
			continue
		}

		switch start.Name.Local {
		case "phoneNumberMetadata", "territories":
			// Containers, descend.
		case "territory":
			meta, err := decodeTerritory(dec, start)
			if err != nil {
				return nil, err
			}
			out = append(out, *meta)
		default:
			return nil, &UnhandledElementError{Phase: "root", Name: start.Name.Local}
		}
	}
}

func decodeTerritory(dec *xml.Decoder, start xml.StartElement) (*RawMetadata, error) {
	var (
		meta           RawMetadata
		defaultRule    string
		defaultCarrier string
	)

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			meta.ID = attr.Value
		case "countryCode":
			code, err := strconv.ParseUint(attr.Value, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("phonenumber: territory %s: %w", meta.ID, err)
			}
			meta.CountryCode = uint16(code)
		case "internationalPrefix":
			meta.InternationalPrefix = attr.Value
		case "preferredInternationalPrefix":
			meta.PreferredInternationalPrefix = attr.Value
		case "nationalPrefix":
			meta.NationalPrefix = attr.Value
		case "preferredExtnPrefix":
			meta.PreferredExtensionPrefix = attr.Value
		case "nationalPrefixForParsing":
			meta.NationalPrefixForParsing = stripPatternSpace(attr.Value)
		case "nationalPrefixTransformRule":
			meta.NationalPrefixTransformRule = attr.Value
		case "nationalPrefixFormattingRule":
			defaultRule = attr.Value
		case "carrierCodeFormattingRule":
			defaultCarrier = attr.Value
		case "mainCountryForCode":
			meta.MainCountryForCode = attr.Value == "true"
		case "leadingDigits":
			meta.LeadingDigits = stripPatternSpace(attr.Value)
		case "mobileNumberPortableRegion":
			meta.MobileNumberPortable = attr.Value == "true"
		default:
			return nil, &UnhandledAttributeError{Phase: "territory", Name: attr.Name.Local, Value: attr.Value}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrUnexpectedEOF
		}
		if err != nil {
			return nil, fmt.Errorf("phonenumber: territory %s: %w", meta.ID, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "references", "areaCodeOptional":
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("phonenumber: territory %s: %w", meta.ID, err)
				}
			case "availableFormats":
				if err := decodeFormats(dec, &meta, defaultRule, defaultCarrier); err != nil {
					return nil, err
				}
			case "generalDesc":
				if meta.General, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "fixedLine":
				if meta.FixedLine, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "mobile":
				if meta.Mobile, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "tollFree":
				if meta.TollFree, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "premiumRate":
				if meta.PremiumRate, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "sharedCost":
				if meta.SharedCost, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "personalNumber":
				if meta.PersonalNumber, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "voip":
				if meta.Voip, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "pager":
				if meta.Pager, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "uan":
				if meta.Uan, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "emergency":
				if meta.Emergency, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "voicemail":
				if meta.Voicemail, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "shortCode":
				if meta.ShortCode, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "standardRate":
				if meta.StandardRate, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "carrierSpecific":
				if meta.Carrier, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			case "noInternationalDialling":
				if meta.NoInternational, err = decodeDescriptor(dec, t); err != nil {
					return nil, err
				}
			default:
				return nil, &UnhandledElementError{Phase: "territory", Name: t.Name.Local}
			}
		case xml.EndElement:
			if t.Name.Local != "territory" {
				return nil, &MismatchedTagError{Tag: t.Name.Local}
			}
			if meta.ID == "" {
				return nil, &MissingValueError{Phase: "territory", Name: "id"}
			}
			return &meta, nil
		}
	}
}

func decodeFormats(dec *xml.Decoder, meta *RawMetadata, defaultRule, defaultCarrier string) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return ErrUnexpectedEOF
		}
		if err != nil {
			return fmt.Errorf("phonenumber: formats: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "numberFormat" {
				return &UnhandledElementError{Phase: "formats", Name: t.Name.Local}
			}
			if err := decodeFormat(dec, t, meta, defaultRule, defaultCarrier); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local != "availableFormats" {
				return &MismatchedTagError{Tag: t.Name.Local}
			}
			return nil
		}
	}
}

func decodeFormat(dec *xml.Decoder, start xml.StartElement, meta *RawMetadata, defaultRule, defaultCarrier string) error {
	format := RawFormat{
		NationalPrefixRule: defaultRule,
		DomesticCarrier:    defaultCarrier,
	}

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "pattern":
			format.Pattern = stripPatternSpace(attr.Value)
		case "nationalPrefixFormattingRule":
			format.NationalPrefixRule = attr.Value
		case "nationalPrefixOptionalWhenFormatting":
			format.NationalPrefixOptional = attr.Value == "true"
		case "carrierCodeFormattingRule":
			format.DomesticCarrier = attr.Value
		default:
			return &UnhandledAttributeError{Phase: "format", Name: attr.Name.Local, Value: attr.Value}
		}
	}

	var intl string
	hasIntl := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return ErrUnexpectedEOF
		}
		if err != nil {
			return fmt.Errorf("phonenumber: format: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "format":
				if format.Format, err = readText(dec, t.Name.Local); err != nil {
					return err
				}
			case "intlFormat":
				if intl, err = readText(dec, t.Name.Local); err != nil {
					return err
				}
				hasIntl = true
			case "leadingDigits":
				text, err := readText(dec, t.Name.Local)
				if err != nil {
					return err
				}
				format.LeadingDigits = append(format.LeadingDigits, stripPatternSpace(text))
			default:
				return &UnhandledElementError{Phase: "format", Name: t.Name.Local}
			}
		case xml.EndElement:
			if t.Name.Local != "numberFormat" {
				return &MismatchedTagError{Tag: t.Name.Local}
			}
			if format.Pattern == "" {
				return &MissingValueError{Phase: "format", Name: "pattern"}
			}
			if format.Format == "" {
				return &MissingValueError{Phase: "format", Name: "format"}
			}
			meta.Formats = append(meta.Formats, format)
			if hasIntl && intl != "NA" {
				international := format
				international.Format = intl
				meta.InternationalFormats = append(meta.InternationalFormats, international)
			}
			return nil
		}
	}
}

func decodeDescriptor(dec *xml.Decoder, start xml.StartElement) (*RawDescriptor, error) {
	var desc RawDescriptor
	phase := start.Name.Local

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrUnexpectedEOF
		}
		if err != nil {
			return nil, fmt.Errorf("phonenumber: %s: %w", phase, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "nationalNumberPattern":
				text, err := readText(dec, t.Name.Local)
				if err != nil {
					return nil, err
				}
				desc.Pattern = stripPatternSpace(text)
			case "possibleLengths":
				for _, attr := range t.Attr {
					lengths, err := parseLengths(attr.Value)
					if err != nil {
						return nil, fmt.Errorf("phonenumber: %s: %w", phase, err)
					}
					switch attr.Name.Local {
					case "national":
						desc.Lengths = lengths
					case "localOnly":
						desc.LocalLengths = lengths
					default:
						return nil, &UnhandledAttributeError{Phase: phase, Name: attr.Name.Local, Value: attr.Value}
					}
				}
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("phonenumber: %s: %w", phase, err)
				}
			case "exampleNumber":
				if desc.Example, err = readText(dec, t.Name.Local); err != nil {
					return nil, err
				}
			case "possibleNumberPattern":
				// Superseded by possibleLengths, still present in old data.
				if _, err := readText(dec, t.Name.Local); err != nil {
					return nil, err
				}
			default:
				return nil, &UnhandledElementError{Phase: phase, Name: t.Name.Local}
			}
		case xml.EndElement:
			if t.Name.Local != phase {
				return nil, &MismatchedTagError{Tag: t.Name.Local}
			}
			return &desc, nil
		}
	}
}

// readText collects the character data of an element up to its closing tag.
func readText(dec *xml.Decoder, name string) (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", ErrUnexpectedEOF
		}
		if err != nil {
			return "", fmt.Errorf("phonenumber: %s: %w", name, err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			if t.Name.Local != name {
				return "", &MismatchedTagError{Tag: t.Name.Local}
			}
			return strings.TrimSpace(b.String()), nil
		case xml.StartElement:
			return "", &UnhandledElementError{Phase: name, Name: t.Name.Local}
		}
	}
}

// parseLengths expands a possible lengths attribute like "7,9,[11-13]" into
// the individual values.
func parseLengths(s string) ([]uint16, error) {
	var out []uint16
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			bounds := strings.SplitN(part[1:len(part)-1], "-", 2)
			if len(bounds) != 2 {
				return nil, fmt.Errorf("phonenumber: invalid length range %q", part)
			}
			low, err := strconv.ParseUint(bounds[0], 10, 16)
			if err != nil {
				return nil, fmt.Errorf("phonenumber: invalid length range %q: %w", part, err)
			}
			high, err := strconv.ParseUint(bounds[1], 10, 16)
			if err != nil {
				return nil, fmt.Errorf("phonenumber: invalid length range %q: %w", part, err)
			}
			for v := low; v <= high; v++ {
				out = append(out, uint16(v))
			}
			continue
		}
		v, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("phonenumber: invalid length %q: %w", part, err)
		}
		out = append(out, uint16(v))
	}
	return out, nil
}

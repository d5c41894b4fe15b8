package phonenumber

import (
	"strconv"
	"strings"
)

// Format renders a number with the bundled metadata.
func Format(number *PhoneNumber, mode Mode) string {
	return FormatWith(DefaultDatabase(), number, mode)
}

// FormatWith renders a number using a specific database. Numbers whose
// calling code the database does not know come out undecorated.
func FormatWith(db *Database, number *PhoneNumber, mode Mode) string {
	return formatNumber(db, number, mode, nil)
}

// FormatWithRule renders a number with a caller-supplied formatting rule
// instead of picking one from the metadata.
func FormatWithRule(db *Database, number *PhoneNumber, mode Mode, rule *FormatRule) string {
	return formatNumber(db, number, mode, rule)
}

func formatNumber(db *Database, number *PhoneNumber, mode Mode, rule *FormatRule) string {
	code := strconv.Itoa(int(number.code.value))
	national := number.national.String()

	all := db.ByCode(number.code.value)
	if len(all) == 0 {
		if mode == Rfc3966 {
			return "tel:+" + code + "-" + national
		}
		return "+" + code + national
	}
	meta := all[0]

	if rule == nil {
		formats := meta.Formats()
		if mode != National {
			formats = meta.InternationalFormats()
		}
		for i := range formats {
			if formats[i].applies(national) {
				rule = &formats[i]
				break
			}
		}
	}

	var b strings.Builder

	switch mode {
	case E164:
		b.WriteByte('+')
		b.WriteString(code)
		b.WriteString(national)

	case International:
		b.WriteByte('+')
		b.WriteString(code)
		b.WriteByte(' ')
		if rule != nil {
			b.WriteString(applyFormat(national, meta, rule, "", ""))
		} else {
			b.WriteString(national)
		}
		writeExtension(&b, meta, number)

	case National:
		switch {
		case rule == nil:
			b.WriteString(national)
		case number.carrier != "" && rule.domesticCarrier != "":
			b.WriteString(applyFormat(national, meta, rule, rule.domesticCarrier, number.carrier))
		case rule.nationalPrefixRule != "":
			b.WriteString(applyFormat(national, meta, rule, rule.nationalPrefixRule, ""))
		default:
			b.WriteString(applyFormat(national, meta, rule, "", ""))
		}
		writeExtension(&b, meta, number)

	case Rfc3966:
		b.WriteString("tel:+")
		b.WriteString(code)
		b.WriteByte('-')
		if rule != nil {
			formatted := applyFormat(national, meta, rule, "", "")
			b.WriteString(reSeparator.ReplaceAllString(formatted, "-"))
		} else {
			b.WriteString(national)
		}
		if number.extension != "" {
			b.WriteString(";ext=")
			b.WriteString(number.extension)
		}
	}

	return b.String()
}

// applyFormat rewrites the national number with the rule's template. A
// non-empty transform, a national prefix or carrier rule with "$NP", "$FG"
// and "$CC" placeholders, is expanded and spliced over the first group
// reference of the template.
func applyFormat(national string, meta *Metadata, rule *FormatRule, transform, carrier string) string {
	re, err := rule.pattern.Anchored()
	if err != nil || re == nil {
		return national
	}

	template := rule.format
	if transform != "" {
		loc := reFirstGroup.FindStringIndex(template)
		if loc == nil {
			return national
		}
		expanded := strings.ReplaceAll(transform, "$NP", meta.nationalPrefix)
		expanded = strings.ReplaceAll(expanded, "$FG", template[loc[0]:loc[1]])
		expanded = strings.ReplaceAll(expanded, "$CC", carrier)
		template = template[:loc[0]] + expanded + template[loc[1]:]
	}

	return re.ReplaceAllString(national, template)
}

func writeExtension(b *strings.Builder, meta *Metadata, number *PhoneNumber) {
	if number.extension == "" {
		return
	}
	prefix := meta.preferredExtensionPrefix
	if prefix == "" {
		prefix = " ext. "
	}
	b.WriteString(prefix)
	b.WriteString(number.extension)
}

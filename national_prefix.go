package phonenumber

import "strings"

// stripNationalPrefix removes the region's national prefix from the front
// of the number and pulls out a carrier selection code when the parsing
// pattern captures one. A strip that would turn a valid number into an
// invalid one is rolled back.
func stripNationalPrefix(meta *Metadata, number parsedNumber) parsedNumber {
	parsing := meta.nationalPrefixForParsing
	if parsing.IsZero() {
		if p := meta.nationalPrefix; p != "" && strings.HasPrefix(number.national, p) {
			number.national = number.national[len(p):]
		}
		return number
	}

	re, err := parsing.Regexp()
	if err != nil || re == nil {
		return number
	}

	m := re.FindStringSubmatchIndex(number.national)
	if m == nil || m[0] != 0 {
		return number
	}

	viable := meta.general.Matches(number.national)
	groups := re.NumSubexp()

	group := func(i int) (string, bool) {
		if 2*i+1 >= len(m) || m[2*i] < 0 {
			return "", false
		}
		return number.national[m[2*i]:m[2*i+1]], true
	}

	transform := meta.nationalPrefixTransformRule
	last, hasLast := group(groups)

	if transform == "" || groups == 0 || !hasLast {
		stripped := number.national[m[1]:]
		if viable && !meta.general.Matches(stripped) {
			return number
		}
		if groups > 0 && hasLast {
			number.carrier = last
		}
		number.national = stripped
		return number
	}

	transformed := string(re.ExpandString(nil, transform, number.national, m)) +
		number.national[m[1]:]
	if viable && !meta.general.Matches(transformed) {
		return number
	}

	first, _ := group(1)
	number.carrier = first
	number.national = transformed
	return number
}

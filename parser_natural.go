package phonenumber

// parseNatural reads a number written in free text, like "(650) 253-0000"
// or "0800 FOR PIZZA x1234".
func parseNatural(input string) (parsedNumber, bool) {
	candidate := extractViableCandidate(input)
	if candidate == "" {
		return parsedNumber{}, false
	}

	candidate, extension := maybeStripExtension(candidate)
	if !isViable(candidate) {
		return parsedNumber{}, false
	}

	return parsedNumber{national: candidate, extension: extension}, true
}

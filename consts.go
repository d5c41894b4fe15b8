package phonenumber

const (
	// minLengthNsn is the shortest national significant number anywhere,
	// for example the Isle of Man local numbers.
	minLengthNsn = 2

	// maxLengthNsn is the longest national significant number anywhere.
	maxLengthNsn = 17

	// maxLengthCountryCode is the longest country calling code.
	maxLengthCountryCode = 3
)

// plusChars matches the ASCII plus and its fullwidth variant.
const plusChars = `+\x{FF0B}`

// validPunctuation is the character class body of everything accepted as
// formatting between digits: dashes of every script, spaces including the
// non-breaking and ideographic ones, brackets, dots, slashes and tildes.
const validPunctuation = `-x\x{2010}-\x{2015}\x{2212}\x{30FC}\x{FF0D}-\x{FF0F}` +
	` \x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}()\x{FF08}\x{FF09}\x{FF3B}\x{FF3D}` +
	`.\[\]/~\x{2053}\x{223C}\x{FF5E}`

// validStartPattern matches the first character a phone number may begin
// with when extracting it from surrounding text.
const validStartPattern = `[` + plusChars + `\p{Nd}]`

// secondNumberStartPattern marks the point where a second number begins, as
// in "Call 65 6521 8000x1234, or 91 22 2612 7676x213".
const secondNumberStartPattern = `[\\/] *x`

// unwantedEndPattern matches trailing characters to trim off a candidate,
// keeping a final "#" since it may close an extension.
const unwantedEndPattern = `[^\p{N}\p{L}#]+$`

// validAlphaPhonePattern decides whether a candidate holds enough letters to
// be treated as a vanity number and go through keypad conversion.
const validAlphaPhonePattern = `(?:.*?[A-Za-z]){3}.*`

// viablePattern is the minimum shape a candidate must have to be worth
// parsing: either a bare two-digit short number, or an optional plus
// followed by at least three digits with any amount of punctuation, letters
// allowed only at the end where an extension could start.
const viablePattern = `^(?:` +
	`\p{Nd}{2}` +
	`|[` + plusChars + `]?(?:[` + validPunctuation + `*]*\p{Nd}){3,}` +
	`[` + validPunctuation + `*A-Za-z\p{Nd}]*` +
	`)$`

// extnPattern matches an extension suffix: the RFC 3966 ";ext=" parameter,
// spelled-out markers like "ext", "extensión", "anexo" or their fullwidth
// forms, or a bare "#"-terminated group of digits. Exactly one of the three
// capture groups holds the extension digits.
const extnPattern = `(?i)(?:` +
	`;ext=(\p{Nd}{1,7})` +
	`|[ \x{00A0}\t,]*` +
	`(?:e?xt(?:ensi(?:o\x{0301}?|\x{00F3}))?n?|\x{FF45}?\x{FF58}\x{FF54}\x{FF4E}?` +
	`|[,x\x{FF58}#\x{FF03}~\x{FF5E}]|int|anexo|\x{FF49}\x{FF4E}\x{FF54})` +
	`[:.\x{FF0E}]?[ \x{00A0}\t,-]*(\p{Nd}{1,7})#?` +
	`|[- ]+(\p{Nd}{1,5})#` +
	`)$`

// separatorPattern matches runs of formatting characters, used when
// rewriting a national format into the RFC 3966 layout.
const separatorPattern = `[` + validPunctuation + `]+`

// firstGroupPattern finds the leading "$1" style reference in a format
// template so prefix rules can be spliced in front of it.
const firstGroupPattern = `(\$\d)`

// alphaMappings converts keypad letters to digits for vanity numbers.
var alphaMappings = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// digitBlockZeros lists the zero code point of every decimal digit block
// that shows up in phone numbers, so any script's digits normalize to ASCII.
var digitBlockZeros = []rune{
	0x0030, // ASCII
	0x0660, // Arabic-Indic
	0x06F0, // Extended Arabic-Indic
	0x07C0, // NKo
	0x0966, // Devanagari
	0x09E6, // Bengali
	0x0A66, // Gurmukhi
	0x0AE6, // Gujarati
	0x0B66, // Oriya
	0x0BE6, // Tamil
	0x0C66, // Telugu
	0x0CE6, // Kannada
	0x0D66, // Malayalam
	0x0E50, // Thai
	0x0ED0, // Lao
	0xFF10, // Fullwidth
}

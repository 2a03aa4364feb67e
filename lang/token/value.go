package token

import "strconv"

// Value carries everything the scanner knows about one token occurrence:
// its position, its source lexeme, and (for STRING/NUMBER) its decoded
// literal value.
type Value struct {
	Pos    Pos
	Lexeme string

	// String holds the decoded string literal's content (without the
	// surrounding quotes) when the token is STRING.
	String string
	// Number holds the decoded numeric literal when the token is NUMBER.
	Number float64
}

// Literal returns the printable literal representation for tok, matching
// the `tokenize` CLI command's `TYPE LEXEME LITERAL` convention: "null" for
// tokens without a literal value.
func (tok Token) Literal(val Value) string {
	switch tok {
	case STRING:
		return val.String
	case NUMBER:
		return formatNumber(val.Number)
	default:
		return "null"
	}
}

// formatNumber renders a scanned NUMBER literal the way the `tokenize`
// command prints it: always with a fractional part, e.g. "123" -> "123.0".
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}

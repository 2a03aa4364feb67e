package scanner

import "github.com/mna/lox/lang/token"

// TokenAndValue combines a token kind with its associated value (position
// and literal data), mirroring how the scanner reports one token at a time
// via Scan.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanAll tokenizes src in full and returns every token, including the
// trailing EOF. Lexical errors are collected into a token.ErrorList and
// returned as the error value; scanning continues past errors so that all
// of them are reported in one pass. A lexical error produces no token: the
// offending input is consumed and only the error remains.
func ScanAll(src []byte) ([]TokenAndValue, error) {
	var (
		s    Scanner
		errs token.ErrorList
		out  []TokenAndValue
		val  token.Value
	)
	s.Init(src, errs.Add)
	for {
		tok := s.Scan(&val)
		if tok == token.ILLEGAL {
			continue
		}
		out = append(out, TokenAndValue{Token: tok, Value: val})
		if tok == token.EOF {
			break
		}
	}
	errs.Sort()
	return out, errs.Err()
}

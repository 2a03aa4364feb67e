package scanner_test

import (
	"testing"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAll(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`var x = "hi" + 1.5; // comment
print x;`))
	require.NoError(t, err)

	var kinds []token.Token
	for _, tv := range toks {
		kinds = append(kinds, tv.Token)
	}
	assert.Equal(t, []token.Token{
		token.VAR, token.IDENT, token.EQUAL, token.STRING, token.PLUS, token.NUMBER, token.SEMICOLON,
		token.PRINT, token.IDENT, token.SEMICOLON,
		token.EOF,
	}, kinds)

	assert.Equal(t, "hi", toks[3].Value.String)
	assert.Equal(t, 1.5, toks[5].Value.Number)
	assert.Equal(t, 2, toks[len(toks)-1].Value.Pos.Line())
}

func TestScanAllErrors(t *testing.T) {
	_, err := scanner.ScanAll([]byte(`var y = @;
var x = "unterminated;`))
	require.Error(t, err)

	el, ok := err.(token.ErrorList)
	require.True(t, ok)
	require.Len(t, el, 2)
	assert.Equal(t, 1, el[0].Pos.Line())
	assert.Equal(t, 2, el[1].Pos.Line())
}

func TestLiteralFormatting(t *testing.T) {
	assert.Equal(t, "null", token.NUMBER.Literal(token.Value{}))
	assert.Equal(t, "123.0", token.NUMBER.Literal(token.Value{Number: 123}))
	assert.Equal(t, "123.45", token.NUMBER.Literal(token.Value{Number: 123.45}))
	assert.Equal(t, "hi", token.STRING.Literal(token.Value{String: "hi"}))
	assert.Equal(t, "null", token.SEMICOLON.Literal(token.Value{}))
}

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbgrin/grin/lexer"
)

func TestTokenizeSimpleLet(t *testing.T) {
	toks, err := lexer.New(`LET A 10`, 1).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.LET, toks[0].Kind)
	assert.Equal(t, lexer.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "A", toks[1].StrValue())
	assert.Equal(t, lexer.LITERAL_INTEGER, toks[2].Kind)
	assert.Equal(t, int64(10), toks[2].IntValue())
}

func TestTokenizeNegativeIntegerLiteral(t *testing.T) {
	toks, err := lexer.New(`GOTO -6`, 9).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.LITERAL_INTEGER, toks[1].Kind)
	assert.Equal(t, int64(-6), toks[1].IntValue())
}

func TestTokenizeFloatLiteral(t *testing.T) {
	toks, err := lexer.New(`LET X 1.23`, 1).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, lexer.LITERAL_FLOAT, toks[2].Kind)
	assert.Equal(t, 1.23, toks[2].FloatValue())
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := lexer.New(`PRINT "HELLO WORLD"`, 1).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.LITERAL_STRING, toks[1].Kind)
	assert.Equal(t, "HELLO WORLD", toks[1].StrValue())
}

func TestTokenizeUnterminatedStringIsLexError(t *testing.T) {
	_, err := lexer.New(`PRINT "HELLO`, 1).Tokenize()
	require.Error(t, err)
	lerr, ok := err.(*lexer.LexError)
	require.True(t, ok)
	assert.Equal(t, 1, lerr.Line)
}

func TestTokenizeLabelPrefix(t *testing.T) {
	toks, err := lexer.New(`APPLE: PRINT "HELLO"`, 4).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, lexer.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, lexer.COLON, toks[1].Kind)
	assert.Equal(t, lexer.PRINT, toks[2].Kind)
}

func TestTokenizeRelationalOperators(t *testing.T) {
	cases := map[string]lexer.Kind{
		"<":  lexer.LESS_THAN,
		"<=": lexer.LESS_THAN_OR_EQUAL,
		">":  lexer.GREATER_THAN,
		">=": lexer.GREATER_THAN_OR_EQUAL,
		"=":  lexer.EQUAL,
		"<>": lexer.NOT_EQUAL,
	}
	for op, want := range cases {
		toks, err := lexer.New("GOTO 1 IF A "+op+" B", 1).Tokenize()
		require.NoError(t, err)
		require.Len(t, toks, 6)
		assert.Equal(t, want, toks[4].Kind, "operator %q", op)
	}
}

func TestTrimTerminator(t *testing.T) {
	assert.True(t, lexer.TrimTerminator("."))
	assert.True(t, lexer.TrimTerminator("  .  "))
	assert.False(t, lexer.TrimTerminator("PRINT A"))
}

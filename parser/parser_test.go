package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbgrin/grin/lexer"
	"github.com/dbgrin/grin/parser"
)

func TestParseBuildsLabelIndex(t *testing.T) {
	lines := []string{
		`GOSUB "APPLE"`,
		`PRINT "!"`,
		`END`,
		`APPLE: PRINT "HELLO"`,
		`PRINT "WORLD"`,
		`RETURN`,
	}
	p, err := parser.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Len())
	assert.Equal(t, 4, p.Labels["APPLE"])

	eff := p.Effective(4)
	require.Len(t, eff, 2)
	assert.Equal(t, lexer.PRINT, eff[0].Kind)
}

func TestParseDuplicateLabelLastWins(t *testing.T) {
	lines := []string{
		`L: PRINT 1`,
		`L: PRINT 2`,
	}
	p, err := parser.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Labels["L"])
}

func TestParseSurfacesLexErrorAsParseError(t *testing.T) {
	lines := []string{
		`LET A 1`,
		`PRINT "unterminated`,
	}
	_, err := parser.Parse(lines)
	require.Error(t, err)
	perr, ok := err.(*parser.ParseError)
	require.True(t, ok)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "FAILED TO PARSE INPUT", perr.Message)
}

func TestParseRejectsBlankLine(t *testing.T) {
	lines := []string{
		`LET A 1`,
		``,
	}
	_, err := parser.Parse(lines)
	require.Error(t, err)
	perr, ok := err.(*parser.ParseError)
	require.True(t, ok)
	assert.Equal(t, 2, perr.Line)
}

func TestParseRejectsUnrecognizedLeadingKeyword(t *testing.T) {
	_, err := parser.Parse([]string{`ABCDEF`})
	require.Error(t, err)
	perr, ok := err.(*parser.ParseError)
	require.True(t, ok)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "FAILED TO PARSE INPUT", perr.Message)
}

func TestParseRejectsMalformedStatementShapes(t *testing.T) {
	cases := []string{
		`PRINT`,
		`LET X`,
		`ADD X`,
		`INSTR`,
		`INNUM 1`,
		`GOTO`,
		`GOSUB`,
		`GOTO 5 IF A`,
		`GOTO 5 IF A > `,
		`RETURN X`,
		`END X`,
	}
	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := parser.Parse([]string{line})
			require.Error(t, err)
			perr, ok := err.(*parser.ParseError)
			require.True(t, ok)
			assert.Equal(t, 1, perr.Line)
		})
	}
}

func TestParseAcceptsWellFormedStatementShapes(t *testing.T) {
	lines := []string{
		`LET A 1`,
		`PRINT A`,
		`ADD A 1`,
		`SUB A 1`,
		`MULT A 1`,
		`DIV A 1`,
		`INSTR B`,
		`INNUM C`,
		`GOTO 2`,
		`GOSUB "LBL"`,
		`GOTO A IF A = 1`,
		`LBL: RETURN`,
		`END`,
	}
	_, err := parser.Parse(lines)
	assert.NoError(t, err)
}

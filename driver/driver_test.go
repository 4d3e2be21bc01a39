package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbgrin/grin/config"
	"github.com/dbgrin/grin/driver"
	"github.com/dbgrin/grin/engine"
)

func TestRunEndToEndWithTerminator(t *testing.T) {
	src := "LET A 10\nADD A 2\nPRINT A\n.\n"
	var out bytes.Buffer
	code := driver.Run(strings.NewReader(src), &out, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "12\n", out.String())
}

func TestRunContinuesReadingStdinForInnum(t *testing.T) {
	src := "INNUM A\nPRINT A\n.\n99\n"
	var out bytes.Buffer
	code := driver.Run(strings.NewReader(src), &out, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "99\n", out.String())
}

func TestRunReportsParseErrorAndExitsNonZero(t *testing.T) {
	src := "LET A 1\nPRINT \"unterminated\n.\n"
	var out bytes.Buffer
	code := driver.Run(strings.NewReader(src), &out, config.Default())
	assert.Equal(t, 1, code)
	assert.Equal(t, "ERROR AT LINE 2: FAILED TO PARSE INPUT\n", out.String())
}

func TestRunReportsRuntimeErrorAndExitsNonZero(t *testing.T) {
	src := "LET A 10\nDIV A 0\n.\n"
	var out bytes.Buffer
	code := driver.Run(strings.NewReader(src), &out, config.Default())
	assert.Equal(t, 1, code)
	assert.Equal(t, "ERROR AT LINE 2: CANNOT DIVIDE BY ZERO\n", out.String())
}

func TestRunProgramAcceptsPreCollectedLines(t *testing.T) {
	lines := []string{`LET A 3`, `MULT A 3`, `PRINT A`}
	var out bytes.Buffer
	code := driver.RunProgram(lines, engine.NewLineReader(strings.NewReader("")), &out, config.Default())
	assert.Equal(t, 0, code)
	assert.Equal(t, "9\n", out.String())
}

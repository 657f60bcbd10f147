package isocline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsCompleteBalanced(t *testing.T) {
	assert.True(t, defaultIsComplete("foo(bar, baz)", '\\'))
	assert.True(t, defaultIsComplete(`{"a": [1, 2, 3]}`, '\\'))
}

func TestDefaultIsCompleteUnbalanced(t *testing.T) {
	assert.False(t, defaultIsComplete("foo(bar, baz", '\\'))
	assert.False(t, defaultIsComplete("[1, 2, [3", '\\'))
}

func TestDefaultIsCompleteContinuationChar(t *testing.T) {
	assert.False(t, defaultIsComplete(`echo hello \`, '\\'))
	assert.False(t, defaultIsComplete("echo hello \\  ", '\\'))
	assert.True(t, defaultIsComplete("echo hello", '\\'))
}

func TestDefaultIsCompleteBracketInsideQuote(t *testing.T) {
	// The unmatched '(' is inside a string literal and must not count
	// toward the bracket stack.
	assert.True(t, defaultIsComplete(`"a ( b"`, '\\'))
}

func TestDefaultIsCompleteUnterminatedQuote(t *testing.T) {
	assert.False(t, defaultIsComplete(`"still open`, '\\'))
}

func TestDefaultIsCompleteEscapedQuote(t *testing.T) {
	assert.True(t, defaultIsComplete(`"a \" b"`, '\\'))
}

func TestDefaultIsCompleteUnmatchedCloserIsSyntaxError(t *testing.T) {
	// An unmatched closing bracket is treated as a syntax error, not an
	// incomplete input, so Enter should finish rather than add a newline.
	assert.True(t, defaultIsComplete("foo)", '\\'))
}

func TestBracketMatches(t *testing.T) {
	assert.True(t, bracketMatches('(', ')'))
	assert.True(t, bracketMatches('[', ']'))
	assert.True(t, bracketMatches('{', '}'))
	assert.False(t, bracketMatches('(', ']'))
}

package formula_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-kpi/models/ast"
)

func helperTokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, token := range tokens {
		types[i] = token.Type
	}
	return types
}

func helperTokenLiterals(tokens []Token) []string {
	literals := make([]string, len(tokens))
	for i, token := range tokens {
		literals[i] = token.Literal
	}
	return literals
}

func TestTokenize_formula(t *testing.T) {
	tokens, err := Tokenize("(Revenue - COGS) / Cost")
	require.NoError(t, err)

	assert.Equal(t, []string{"(", "Revenue", "-", "COGS", ")", "/", "Cost"}, helperTokenLiterals(tokens))
	assert.Equal(t, []TokenType{
		TOKEN_LPAREN, TOKEN_IDENTIFIER, TOKEN_OPERATOR, TOKEN_IDENTIFIER,
		TOKEN_RPAREN, TOKEN_OPERATOR, TOKEN_IDENTIFIER,
	}, helperTokenTypes(tokens))
	assert.Equal(t, 1, tokens[1].Position)
	assert.Equal(t, 19, tokens[6].Position)
}

func TestTokenize_numbers(t *testing.T) {
	tokens, err := Tokenize("42 3.14 .5 007")
	require.NoError(t, err)

	assert.Equal(t, []string{"42", "3.14", ".5", "007"}, helperTokenLiterals(tokens))
	for _, token := range tokens {
		assert.Equal(t, TOKEN_NUMBER, token.Type)
	}
}

func TestTokenize_identifiers(t *testing.T) {
	tokens, err := Tokenize("gross_profit _tmp A1 SUM")
	require.NoError(t, err)

	assert.Equal(t, []string{"gross_profit", "_tmp", "A1", "SUM"}, helperTokenLiterals(tokens))
	for _, token := range tokens {
		assert.Equal(t, TOKEN_IDENTIFIER, token.Type)
	}
}

func TestTokenize_comparisons_are_greedy(t *testing.T) {
	tokens, err := Tokenize("a>=b<=c==d!=e>f<g")
	require.NoError(t, err)

	comparisons := []string{}
	for _, token := range tokens {
		if token.Type == TOKEN_COMPARISON {
			comparisons = append(comparisons, token.Literal)
		}
	}
	assert.Equal(t, []string{">=", "<=", "==", "!=", ">", "<"}, comparisons)
}

func TestTokenize_whitespace_is_discarded(t *testing.T) {
	tokens, err := Tokenize(" \tSUM( A ,B )\t")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{
		TOKEN_IDENTIFIER, TOKEN_LPAREN, TOKEN_IDENTIFIER, TOKEN_COMMA, TOKEN_IDENTIFIER, TOKEN_RPAREN,
	}, helperTokenTypes(tokens))
}

func TestTokenize_empty(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position int
		char     rune
	}{
		{name: "unknown character", input: "Cost $ 2", position: 5, char: '$'},
		{name: "line feed", input: "1\n+ 2", position: 1, char: '\n'},
		{name: "carriage return", input: "1 +\r2", position: 3, char: '\r'},
		{name: "lone equal", input: "a = b", position: 2, char: '='},
		{name: "lone bang", input: "!a", position: 0, char: '!'},
		{name: "dot without digit", input: "a + .", position: 4, char: '.'},
		{name: "trailing dot", input: "12.", position: 2, char: '.'},
		{name: "percent", input: "10%", position: 2, char: '%'},
		{name: "non ascii", input: "Coût", position: 2, char: 'û'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)

			var lexError *LexError
			require.ErrorAs(t, err, &lexError)
			assert.Equal(t, tt.position, lexError.Position)
			assert.Equal(t, tt.char, lexError.Char)
			assert.ErrorIs(t, err, ast.ErrLexical)
			assert.ErrorIs(t, err, ast.ErrUnexpectedCharacter)
		})
	}
}

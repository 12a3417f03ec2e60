package formula_parser

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TOKEN_NUMBER     TokenType = iota // 42, 3.14, .5
	TOKEN_IDENTIFIER                  // Cost, gross_profit, SUM
	TOKEN_OPERATOR                    // + - * /
	TOKEN_LPAREN                      // (
	TOKEN_RPAREN                      // )
	TOKEN_COMMA                       // ,
	TOKEN_COMPARISON                  // > < >= <= == !=
)

var tokenTypeNames = map[TokenType]string{
	TOKEN_NUMBER:     "NUMBER",
	TOKEN_IDENTIFIER: "IDENTIFIER",
	TOKEN_OPERATOR:   "OPERATOR",
	TOKEN_LPAREN:     "LPAREN",
	TOKEN_RPAREN:     "RPAREN",
	TOKEN_COMMA:      "COMMA",
	TOKEN_COMPARISON: "COMPARISON",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit of a formula. Position is the byte offset of the
// token in the formula text.
type Token struct {
	Type     TokenType
	Literal  string
	Position int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Literal, t.Position)
}

func (t Token) is(tokenType TokenType, literals ...string) bool {
	if t.Type != tokenType {
		return false
	}
	if len(literals) == 0 {
		return true
	}
	for _, literal := range literals {
		if t.Literal == literal {
			return true
		}
	}
	return false
}

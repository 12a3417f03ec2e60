package formula_parser

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/checkmarble/marble-kpi/models/ast"
)

// Parse tokenizes and parses a formula. Blank text fails with ast.ErrEmptyFormula.
func Parse(source string) (ast.Node, error) {
	if strings.TrimSpace(source) == "" {
		return ast.Node{}, errors.WithStack(ast.ErrEmptyFormula)
	}

	tokens, err := Tokenize(source)
	if err != nil {
		return ast.Node{}, err
	}
	return ParseTokens(tokens)
}

// ParseTokens builds the tree of a formula by recursive descent. Precedence, from the
// loosest to the tightest binding, follows the call graph:
//
//	comparison  := addsub ( ('>'|'<'|'>='|'<='|'=='|'!=') addsub )?
//	addsub      := muldiv ( ('+'|'-') muldiv )*
//	muldiv      := unary  ( ('*'|'/') unary )*
//	unary       := '-' primary | primary
//	primary     := number | identifier ('(' args ')')? | '(' comparison ')'
//	args        := comparison (',' comparison)*
//
// Comparisons do not chain, and a unary minus only applies to a primary ("--x" is rejected).
func ParseTokens(tokens []Token) (ast.Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseComparison()
	if err != nil {
		return ast.Node{}, err
	}

	if token, ok := p.peek(); ok {
		if token.is(TOKEN_RPAREN) {
			return ast.Node{}, newSyntaxError(token, ast.ErrUnmatchedParenthesis)
		}
		return ast.Node{}, newSyntaxError(token, ast.ErrUnexpectedToken)
	}
	return node, nil
}

type parser struct {
	tokens  []Token
	current int
}

func (p *parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return ast.Node{}, err
	}

	token, ok := p.peek()
	if !ok || !token.is(TOKEN_COMPARISON) {
		return left, nil
	}
	p.advance()

	right, err := p.parseAddSub()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewNodeBinary(ast.FuncFromOperator(token.Literal), left, right), nil
}

func (p *parser) parseAddSub() (ast.Node, error) {
	return p.parseLeftAssociative(p.parseMulDiv, "+", "-")
}

func (p *parser) parseMulDiv() (ast.Node, error) {
	return p.parseLeftAssociative(p.parseUnary, "*", "/")
}

func (p *parser) parseLeftAssociative(operand func() (ast.Node, error), operators ...string) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return ast.Node{}, err
	}

	for {
		token, ok := p.peek()
		if !ok || !token.is(TOKEN_OPERATOR, operators...) {
			return left, nil
		}
		p.advance()

		right, err := operand()
		if err != nil {
			return ast.Node{}, err
		}
		left = ast.NewNodeBinary(ast.FuncFromOperator(token.Literal), left, right)
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	if token, ok := p.peek(); ok && token.is(TOKEN_OPERATOR, "-") {
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return ast.Node{}, err
		}
		return ast.NewNodeUnaryMinus(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Node, error) {
	token, ok := p.peek()
	if !ok {
		return ast.Node{}, p.unexpectedEnd()
	}

	switch token.Type {
	case TOKEN_NUMBER:
		p.advance()
		value, err := strconv.ParseFloat(token.Literal, 64)
		if err != nil {
			return ast.Node{}, newSyntaxError(token, errors.Wrap(ast.ErrUnexpectedToken, err.Error()))
		}
		return ast.NewNodeConstant(value), nil

	case TOKEN_IDENTIFIER:
		p.advance()
		if next, ok := p.peek(); ok && next.is(TOKEN_LPAREN) {
			return p.parseCall(token)
		}
		return ast.NewNodeVariable(token.Literal), nil

	case TOKEN_LPAREN:
		p.advance()
		inner, err := p.parseComparison()
		if err != nil {
			return ast.Node{}, err
		}
		if err := p.expectClosingParenthesis(token); err != nil {
			return ast.Node{}, err
		}
		return inner, nil

	default:
		return ast.Node{}, newSyntaxError(token, ast.ErrUnexpectedToken)
	}
}

func (p *parser) parseCall(name Token) (ast.Node, error) {
	function := ast.FuncFromName(name.Literal)
	if function == ast.FUNC_UNKNOWN {
		return ast.Node{}, newSyntaxError(name, errors.Wrapf(ast.ErrUnknownFunction, "no function named %s", name.Literal))
	}

	openParenthesis := p.advance()

	args := make([]ast.Node, 0, 3)
	for {
		arg, err := p.parseComparison()
		if err != nil {
			return ast.Node{}, err
		}
		args = append(args, arg)

		token, ok := p.peek()
		if !ok || !token.is(TOKEN_COMMA) {
			break
		}
		p.advance()
	}

	if err := p.expectClosingParenthesis(openParenthesis); err != nil {
		return ast.Node{}, err
	}

	attributes, err := function.Attributes()
	if err != nil {
		return ast.Node{}, newSyntaxError(name, err)
	}
	if attributes.NumberOfArguments >= 0 && len(args) != attributes.NumberOfArguments {
		return ast.Node{}, newSyntaxError(name, errors.Wrapf(ast.ErrWrongNumberOfArgument,
			"%s expects %d arguments, got %d", attributes.AstName, attributes.NumberOfArguments, len(args)))
	}

	return ast.NewNodeCall(function, args...), nil
}

func (p *parser) expectClosingParenthesis(open Token) error {
	token, ok := p.peek()
	if !ok {
		return newSyntaxError(open, ast.ErrUnmatchedParenthesis)
	}
	if !token.is(TOKEN_RPAREN) {
		return newSyntaxError(token, ast.ErrUnexpectedToken)
	}
	p.advance()
	return nil
}

func (p *parser) unexpectedEnd() error {
	position := 0
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		position = last.Position + len(last.Literal)
	}
	return &SyntaxError{Position: position, Cause: ast.ErrUnexpectedEnd}
}

func (p *parser) peek() (Token, bool) {
	if p.current >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.current], true
}

func (p *parser) advance() Token {
	token := p.tokens[p.current]
	p.current++
	return token
}

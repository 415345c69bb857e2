package language

import (
	"fmt"
	"unicode"
)

// The surface syntax mirrors the display syntax: true, false, identifiers,
// !, &&, ||, ==, !=, -->, <--> and parentheses; assignments are written
// "ident = expr". Precedence from loosest to tightest: <-->, --> (both
// right-associative), ||, &&, == and !=, then !.

// ParseError reports where tokenization or parsing failed.
type ParseError struct {
	Position int
	Token    string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d near %q: %s", e.Position, e.Token, e.Message)
}

// Parse parses an expression.
func Parse(source string) (Expression, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseStatement parses an assignment.
func ParseStatement(source string) (*Assignment, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	identifier, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, err := lvalue(identifier); err != nil {
		t := p.peek()
		return nil, &ParseError{Position: t.position, Token: t.text, Message: "left-hand side must be an identifier"}
	}
	if err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return NewAssignment(identifier, value), nil
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenTrue
	tokenFalse
	tokenNot
	tokenAnd
	tokenOr
	tokenEqual
	tokenNotEqual
	tokenImplies
	tokenIff
	tokenAssign
	tokenLParen
	tokenRParen
)

type token struct {
	kind     tokenKind
	text     string
	position int
}

func lex(source string) ([]token, error) {
	var tokens []token
	runes := []rune(source)
	i := 0
	emit := func(kind tokenKind, text string, at int) {
		tokens = append(tokens, token{kind: kind, text: text, position: at})
	}
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			emit(tokenLParen, "(", i)
			i++
		case r == ')':
			emit(tokenRParen, ")", i)
			i++
		case r == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokenNotEqual, "!=", i)
				i += 2
			} else {
				emit(tokenNot, "!", i)
				i++
			}
		case r == '&':
			if i+1 < len(runes) && runes[i+1] == '&' {
				emit(tokenAnd, "&&", i)
				i += 2
			} else {
				return nil, &ParseError{Position: i, Token: "&", Message: "expected &&"}
			}
		case r == '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				emit(tokenOr, "||", i)
				i += 2
			} else {
				return nil, &ParseError{Position: i, Token: "|", Message: "expected ||"}
			}
		case r == '=':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokenEqual, "==", i)
				i += 2
			} else {
				emit(tokenAssign, "=", i)
				i++
			}
		case r == '-':
			if i+2 < len(runes) && runes[i+1] == '-' && runes[i+2] == '>' {
				emit(tokenImplies, "-->", i)
				i += 3
			} else {
				return nil, &ParseError{Position: i, Token: "-", Message: "expected -->"}
			}
		case r == '<':
			if i+3 < len(runes) && runes[i+1] == '-' && runes[i+2] == '-' && runes[i+3] == '>' {
				emit(tokenIff, "<-->", i)
				i += 4
			} else {
				return nil, &ParseError{Position: i, Token: "<", Message: "expected <-->"}
			}
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			switch word {
			case "true":
				emit(tokenTrue, word, start)
			case "false":
				emit(tokenFalse, word, start)
			default:
				emit(tokenIdent, word, start)
			}
		default:
			return nil, &ParseError{Position: i, Token: string(r), Message: "unexpected character"}
		}
	}
	emit(tokenEOF, "", len(runes))
	return tokens, nil
}

type parser struct {
	tokens []token
	index  int
}

func newParser(source string) (*parser, error) {
	tokens, err := lex(source)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) peek() token { return p.tokens[p.index] }

func (p *parser) next() token {
	t := p.tokens[p.index]
	if t.kind != tokenEOF {
		p.index++
	}
	return t
}

func (p *parser) accept(kind tokenKind) bool {
	if p.peek().kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind tokenKind) error {
	if p.peek().kind != kind {
		t := p.peek()
		return &ParseError{Position: t.position, Token: t.text, Message: "unexpected token"}
	}
	p.next()
	return nil
}

func (p *parser) expression() (Expression, error) { return p.biImplication() }

func (p *parser) biImplication() (Expression, error) {
	lhs, err := p.implication()
	if err != nil {
		return nil, err
	}
	if p.accept(tokenIff) {
		rhs, err := p.biImplication()
		if err != nil {
			return nil, err
		}
		return NewBiImplication(lhs, rhs), nil
	}
	return lhs, nil
}

func (p *parser) implication() (Expression, error) {
	lhs, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.accept(tokenImplies) {
		rhs, err := p.implication()
		if err != nil {
			return nil, err
		}
		return NewImplication(lhs, rhs), nil
	}
	return lhs, nil
}

func (p *parser) disjunction() (Expression, error) {
	lhs, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for p.accept(tokenOr) {
		rhs, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		lhs = NewOr(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) conjunction() (Expression, error) {
	lhs, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.accept(tokenAnd) {
		rhs, err := p.equality()
		if err != nil {
			return nil, err
		}
		lhs = NewAnd(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) equality() (Expression, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept(tokenEqual):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			lhs = NewEqual(lhs, rhs)
		case p.accept(tokenNotEqual):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			lhs = NewNotEqual(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) unary() (Expression, error) {
	if p.accept(tokenNot) {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return NewNegation(operand), nil
	}
	return p.primary()
}

func (p *parser) primary() (Expression, error) {
	t := p.next()
	switch t.kind {
	case tokenTrue:
		return NewBoolean(true), nil
	case tokenFalse:
		return NewBoolean(false), nil
	case tokenIdent:
		return NewIdentifier(t.text), nil
	case tokenLParen:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return NewParenthesized(inner), nil
	}
	return nil, &ParseError{Position: t.position, Token: t.text, Message: "expected an expression"}
}

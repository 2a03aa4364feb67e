// Package parser implements the recursive-descent parser that turns a
// token stream into the statement list the resolver and evaluator consume.
//
// A parse error panics with the sentinel errPanicMode, recovered at the
// nearest statement boundary by synchronize, so a single run can report
// more than one independent parse error.
package parser

import (
	"errors"
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

var errPanicMode = errors.New("parser: panic mode")

// Parse tokenizes and parses src in full, returning the list of top-level
// statements. The returned error, if non-nil, is a token.ErrorList
// aggregating every lexical and syntax error found; the parser
// synchronizes at statement boundaries after each syntax error so that
// independent errors are all reported from one run.
func Parse(src []byte) ([]ast.Stmt, error) {
	toks, scanErr := scanner.ScanAll(src)

	var p parser
	p.toks = toks
	p.current = 0
	if scanErr != nil {
		if el, ok := scanErr.(token.ErrorList); ok {
			p.errs = append(p.errs, el...)
		}
	}

	stmts := p.parseProgram()
	p.errs.Sort()
	return stmts, p.errs.Err()
}

// ParseExpr parses a single expression from src (used by the `parse` and
// `evaluate` CLI commands, which operate on one expression rather than a
// full program).
func ParseExpr(src []byte) (ast.Expr, error) {
	toks, scanErr := scanner.ScanAll(src)

	var p parser
	p.toks = toks
	p.current = 0
	if scanErr != nil {
		if el, ok := scanErr.(token.ErrorList); ok {
			p.errs = append(p.errs, el...)
		}
	}

	var expr ast.Expr
	func() {
		defer func() {
			if r := recover(); r != nil && r != errPanicMode {
				panic(r)
			}
		}()
		expr = p.expression()
		p.expect(token.EOF)
	}()

	p.errs.Sort()
	return expr, p.errs.Err()
}

type parser struct {
	toks    []scanner.TokenAndValue
	current int
	errs    token.ErrorList
}

func (p *parser) peek() scanner.TokenAndValue     { return p.toks[p.current] }
func (p *parser) previous() scanner.TokenAndValue { return p.toks[p.current-1] }

func (p *parser) isAtEnd() bool { return p.peek().Token == token.EOF }

func (p *parser) check(tok token.Token) bool {
	return p.peek().Token == tok
}

func (p *parser) advance() scanner.TokenAndValue {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(toks ...token.Token) bool {
	for _, t := range toks {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it is tok, otherwise it records an
// error and panics with errPanicMode, which is recovered at the nearest
// statement boundary.
func (p *parser) expect(tok token.Token) scanner.TokenAndValue {
	if p.check(tok) {
		return p.advance()
	}
	p.errorAtCurrent(fmt.Sprintf("Expect %s.", tok.GoString()))
	panic(errPanicMode)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errs.Add(p.peek().Value.Pos, msg)
}

func (p *parser) errorAt(pos token.Pos, msg string) {
	p.errs.Add(pos, msg)
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so that parsing can resume after a syntax error.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Token == token.SEMICOLON {
			return
		}
		switch p.peek().Token {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *parser) parseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declarationRecover(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *parser) declarationRecover() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

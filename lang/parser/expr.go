package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous().Value.Pos
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.check(token.OR) {
		op := p.advance()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) ||
		p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.advance()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.advance()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.advance()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.UnaryExpr{Op: op.Token, OpPos: op.Value.Pos, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			nameTV := p.expect(token.IDENT)
			expr = &ast.GetExpr{Object: expr, Name: ast.Ident{Name: nameTV.Value.Lexeme, Pos: nameTV.Value.Pos}}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RIGHT_PAREN)
	return &ast.CallExpr{Callee: callee, Paren: paren.Value.Pos, Args: args}
}

func (p *parser) primary() ast.Expr {
	tv := p.peek()
	switch tv.Token {
	case token.FALSE:
		p.advance()
		return &ast.LiteralExpr{Pos: tv.Value.Pos, Kind: ast.LitBool, Bool: false}
	case token.TRUE:
		p.advance()
		return &ast.LiteralExpr{Pos: tv.Value.Pos, Kind: ast.LitBool, Bool: true}
	case token.NIL:
		p.advance()
		return &ast.LiteralExpr{Pos: tv.Value.Pos, Kind: ast.LitNil}
	case token.NUMBER:
		p.advance()
		return &ast.LiteralExpr{Pos: tv.Value.Pos, Kind: ast.LitNumber, Number: tv.Value.Number}
	case token.STRING:
		p.advance()
		return &ast.LiteralExpr{Pos: tv.Value.Pos, Kind: ast.LitString, Str: tv.Value.String}
	case token.THIS:
		p.advance()
		return &ast.ThisExpr{Keyword: ast.Ident{Name: "this", Pos: tv.Value.Pos}}
	case token.SUPER:
		p.advance()
		kw := ast.Ident{Name: "super", Pos: tv.Value.Pos}
		p.expect(token.DOT)
		methodTV := p.expect(token.IDENT)
		return &ast.SuperExpr{Keyword: kw, Method: ast.Ident{Name: methodTV.Value.Lexeme, Pos: methodTV.Value.Pos}}
	case token.IDENT:
		p.advance()
		return &ast.VariableExpr{Name: ast.Ident{Name: tv.Value.Lexeme, Pos: tv.Value.Pos}}
	case token.LEFT_PAREN:
		p.advance()
		expr := p.expression()
		p.expect(token.RIGHT_PAREN)
		return &ast.GroupingExpr{LParen: tv.Value.Pos, Expr: expr}
	}

	p.errorAtCurrent("Expect expression.")
	panic(errPanicMode)
}

package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (p *parser) declaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.check(token.FUN) && p.checkNext(token.IDENT):
		p.advance() // consume 'fun'
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// checkNext reports whether the token after the current one is tok,
// without consuming anything. Used to recognize `fun name(...)` as a
// function declaration; a `fun` not followed by a name falls through to
// statement parsing, which reports it as "Expect expression."
func (p *parser) checkNext(tok token.Token) bool {
	if p.isAtEnd() {
		return false
	}
	if p.current+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.current+1].Token == tok
}

func (p *parser) classDeclaration() ast.Stmt {
	nameTV := p.expect(token.IDENT)
	name := ast.Ident{Name: nameTV.Value.Lexeme, Pos: nameTV.Value.Pos}

	var super *ast.VariableExpr
	if p.match(token.LESS) {
		superTV := p.expect(token.IDENT)
		super = &ast.VariableExpr{Name: ast.Ident{Name: superTV.Value.Lexeme, Pos: superTV.Value.Pos}}
	}

	p.expect(token.LEFT_BRACE)
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RIGHT_BRACE)

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

func (p *parser) function(kind string) *ast.FunctionStmt {
	nameTV := p.expect(token.IDENT)
	name := ast.Ident{Name: nameTV.Value.Lexeme, Pos: nameTV.Value.Pos}

	p.expect(token.LEFT_PAREN)
	var params []ast.Ident
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			pTV := p.expect(token.IDENT)
			params = append(params, ast.Ident{Name: pTV.Value.Lexeme, Pos: pTV.Value.Pos})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RIGHT_PAREN)

	p.expect(token.LEFT_BRACE)
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *parser) varDeclaration() ast.Stmt {
	nameTV := p.expect(token.IDENT)
	name := ast.Ident{Name: nameTV.Value.Lexeme, Pos: nameTV.Value.Pos}

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON)
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.check(token.LEFT_BRACE):
		lbrace := p.peek().Value.Pos
		p.advance()
		return &ast.BlockStmt{LBrace: lbrace, Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declarationRecover(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RIGHT_BRACE)
	return stmts
}

// forStatement desugars `for (init; cond; post) body` into a Block
// wrapping a While whose body has the post expression statement appended,
// so the AST never has a dedicated For node.
func (p *parser) forStatement() ast.Stmt {
	p.expect(token.LEFT_PAREN)

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.check(token.VAR):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post = p.expression()
	}
	p.expect(token.RIGHT_PAREN)

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{LBrace: body.Span(), Stmts: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expr: post},
		}}
	}

	if cond == nil {
		cond = &ast.LiteralExpr{Kind: ast.LitBool, Bool: true, Pos: body.Span()}
	}
	body = &ast.WhileStmt{While: body.Span(), Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{LBrace: init.Span(), Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStatement() ast.Stmt {
	ifPos := p.previous().Value.Pos
	p.expect(token.LEFT_PAREN)
	cond := p.expression()
	p.expect(token.RIGHT_PAREN)

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{If: ifPos, Cond: cond, Then: then, Else: els}
}

func (p *parser) printStatement() ast.Stmt {
	kw := p.previous().Value.Pos
	expr := p.expression()
	p.expect(token.SEMICOLON)
	return &ast.PrintStmt{Keyword: kw, Expr: expr}
}

func (p *parser) returnStatement() ast.Stmt {
	kw := p.previous().Value.Pos
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Keyword: kw, Value: value}
}

func (p *parser) whileStatement() ast.Stmt {
	whilePos := p.previous().Value.Pos
	p.expect(token.LEFT_PAREN)
	cond := p.expression()
	p.expect(token.RIGHT_PAREN)
	body := p.statement()
	return &ast.WhileStmt{While: whilePos, Cond: cond, Body: body}
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStmt{Expr: expr}
}

// Package parser implements the recursive-descent parser of spec §4.2:
// standard arithmetic precedence (= lowest, then +/-, then */, then unary
// -, then ^ highest before atoms), plus the top-level form classifier that
// distinguishes a bare expression from an assignment, a function
// definition, and an equation query. It follows the teacher's Parser
// shape (scanner, peeked token, panic-based errorf) from parse/parse.go,
// restructured for infix precedence climbing since ivy's own grammar is
// precedence-free APL.
package parser

import (
	"github.com/DinaGala/computor-v2/ast"
	"github.com/DinaGala/computor-v2/errs"
	"github.com/DinaGala/computor-v2/lex"
	"github.com/DinaGala/computor-v2/rational"
)

// EnvLookup lets the parser ask whether an identifier is already bound,
// needed to determine an equation query's unknown (spec §4.2). It is
// satisfied by *env.Environment without this package importing env.
type EnvLookup interface {
	IsDefined(name string) bool
}

// Parser holds the state of a single top-level parse.
type Parser struct {
	lx   *lex.Lexer
	cur  lex.Token
	peek lex.Token
	env  EnvLookup
}

// New returns a Parser over input, consulting env to resolve equation
// query unknowns.
func New(input string, env EnvLookup) *Parser {
	p := &Parser{lx: lex.New(input), env: env}
	p.cur = p.lx.Next()
	p.peek = p.lx.Next()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) expect(t lex.Type) lex.Token {
	if p.cur.Type != t {
		errs.Raise(errs.Parse, "expected %s, found %s", t, p.cur)
	}
	tok := p.cur
	p.advance()
	return tok
}

// ParseLine parses one full top-level statement (spec §4.2) and returns
// its AST: an ast.Assign, ast.FunDef, ast.EquationQuery, or a bare
// expression. On failure it panics with an *errs.Error (errs.Lex,
// errs.Parse, errs.Name, or errs.Shape), recovered by the caller at the
// statement boundary — see package repl.
func ParseLine(input string, env EnvLookup) ast.Expr {
	p := New(input, env)
	return p.parseStatement()
}

func (p *Parser) parseStatement() ast.Expr {
	lhs := p.parseExpr()
	if p.cur.Type != lex.Assign {
		if p.cur.Type != lex.EOF {
			errs.Raise(errs.Parse, "unexpected token %s after expression", p.cur)
		}
		return lhs
	}
	p.advance() // consume '='
	rhs := p.parseExpr()
	if p.cur.Type == lex.Question {
		p.advance()
		if p.cur.Type != lex.EOF {
			errs.Raise(errs.Parse, "unexpected token %s after equation query", p.cur)
		}
		return p.buildEquationQuery(lhs, rhs)
	}
	if p.cur.Type != lex.EOF {
		errs.Raise(errs.Parse, "unexpected token %s after assignment", p.cur)
	}
	return p.buildAssignOrFunDef(lhs, rhs)
}

func (p *Parser) buildAssignOrFunDef(lhs, rhs ast.Expr) ast.Expr {
	switch l := lhs.(type) {
	case ast.Ident:
		if l.Name == "i" {
			errs.Raise(errs.Name, "i is reserved and cannot be assigned")
		}
		return ast.Assign{Name: l.Name, Expr: rhs}
	case ast.Call:
		param, ok := l.Arg.(ast.Ident)
		if !ok {
			errs.Raise(errs.Parse, "function definition parameter must be a single identifier")
		}
		if l.Name == "i" {
			errs.Raise(errs.Name, "i is reserved and cannot be assigned")
		}
		return ast.FunDef{Name: l.Name, Param: param.Name, Body: rhs}
	case ast.ImagUnit:
		errs.Raise(errs.Name, "i is reserved and cannot be assigned")
	}
	errs.Raise(errs.Parse, "invalid assignment target")
	panic("unreachable")
}

func (p *Parser) buildEquationQuery(lhs, rhs ast.Expr) ast.Expr {
	idents := map[string]bool{}
	collectIdents(lhs, idents)
	collectIdents(rhs, idents)
	unknowns := make([]string, 0, 1)
	for name := range idents {
		if !p.env.IsDefined(name) {
			unknowns = append(unknowns, name)
		}
	}
	if len(unknowns) != 1 {
		errs.Raise(errs.Shape, "equation must have exactly one unknown, found %d", len(unknowns))
	}
	return ast.EquationQuery{Lhs: lhs, Rhs: rhs, Unknown: unknowns[0]}
}

func collectIdents(e ast.Expr, out map[string]bool) {
	switch n := e.(type) {
	case ast.Ident:
		out[n.Name] = true
	case ast.Neg:
		collectIdents(n.X, out)
	case ast.BinOp:
		collectIdents(n.Left, out)
		collectIdents(n.Right, out)
	case ast.Call:
		collectIdents(n.Arg, out)
	case ast.MatrixLit:
		for _, row := range n.Rows {
			for _, cell := range row {
				collectIdents(cell, out)
			}
		}
	}
}

// parseExpr parses the additive level: +/- , left-associative.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseTerm()
	for p.cur.Type == lex.Plus || p.cur.Type == lex.Minus {
		op := p.cur.Text
		p.advance()
		right := p.parseTerm()
		left = ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseTerm parses the multiplicative level: * / , left-associative.
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseUnary()
	for p.cur.Type == lex.Star || p.cur.Type == lex.Slash {
		op := p.cur.Text
		p.advance()
		right := p.parseUnary()
		left = ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseUnary parses a leading unary minus, then the power level.
func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Type == lex.Minus {
		p.advance()
		return ast.Neg{X: p.parseUnary()}
	}
	return p.parsePower()
}

// parsePower parses ^, right-associative, highest precedence before atoms.
func (p *Parser) parsePower() ast.Expr {
	base := p.parseAtom()
	if p.cur.Type == lex.Caret {
		p.advance()
		exp := p.parseUnary()
		return ast.BinOp{Op: "^", Left: base, Right: exp}
	}
	return base
}

// parseAtom parses a number, `i`, identifier (possibly a call), a
// parenthesized expression, or a matrix literal.
func (p *Parser) parseAtom() ast.Expr {
	switch p.cur.Type {
	case lex.Integer:
		n := parseIntLiteral(p.cur.Text)
		p.advance()
		return ast.Number{Value: n}
	case lex.Decimal:
		n := parseDecimalLiteral(p.cur.Text)
		p.advance()
		return ast.Number{Value: n}
	case lex.Identifier:
		name := p.cur.Text
		p.advance()
		if p.cur.Type == lex.LeftParen {
			p.advance()
			arg := p.parseExpr()
			p.expect(lex.RightParen)
			return ast.Call{Name: name, Arg: arg}
		}
		if name == "i" {
			return ast.ImagUnit{}
		}
		return ast.Ident{Name: name}
	case lex.LeftParen:
		p.advance()
		e := p.parseExpr()
		p.expect(lex.RightParen)
		return e
	case lex.LeftBrack:
		return p.parseMatrixLit()
	}
	errs.Raise(errs.Parse, "unexpected token %s", p.cur)
	panic("unreachable")
}

// parseMatrixLit parses `[` row (`,` row)* `]` where row is
// `[` expr (`,` expr)* `]`. All rows must parse to the same length.
func (p *Parser) parseMatrixLit() ast.Expr {
	p.expect(lex.LeftBrack)
	var rows [][]ast.Expr
	rows = append(rows, p.parseMatrixRow())
	for p.cur.Type == lex.Comma {
		p.advance()
		rows = append(rows, p.parseMatrixRow())
	}
	p.expect(lex.RightBrack)
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			errs.Raise(errs.Shape, "matrix row %d has length %d, want %d", i, len(row), width)
		}
	}
	return ast.MatrixLit{Rows: rows}
}

func (p *Parser) parseMatrixRow() []ast.Expr {
	p.expect(lex.LeftBrack)
	var cells []ast.Expr
	cells = append(cells, p.parseExpr())
	for p.cur.Type == lex.Comma {
		p.advance()
		cells = append(cells, p.parseExpr())
	}
	p.expect(lex.RightBrack)
	return cells
}

func parseIntLiteral(text string) rational.Rational {
	n, ok := rational.FromString(text)
	if !ok {
		errs.Raise(errs.Parse, "malformed integer literal %q", text)
	}
	return n
}

// parseDecimalLiteral turns "digits.fracDigits" into the exact rational
// digits-without-dot / 10^len(fracDigits) (spec §4.1).
func parseDecimalLiteral(text string) rational.Rational {
	dot := -1
	for i, c := range text {
		if c == '.' {
			dot = i
			break
		}
	}
	intPart := text[:dot]
	fracPart := text[dot+1:]
	n, ok := rational.FromDecimalDigits(intPart+fracPart, len(fracPart))
	if !ok {
		errs.Raise(errs.Parse, "malformed decimal literal %q", text)
	}
	return n
}

// Package ast defines the abstract syntax tree the parser produces (spec
// §3: "AST node kinds"). Each node follows the teacher's small Expr sum
// type — a String method for tracing/error messages and owned child
// nodes — adapted from ivy's unary/binary/variableExpr shapes to this
// spec's richer grammar (matrix literals, assignment, function
// definition, equation queries).
package ast

import (
	"fmt"
	"strings"

	"github.com/DinaGala/computor-v2/rational"
)

// Expr is satisfied by every expression node.
type Expr interface {
	String() string
	exprNode()
}

// Number is a literal rational constant.
type Number struct {
	Value rational.Rational
}

func (Number) exprNode()        {}
func (n Number) String() string { return n.Value.String() }

// ImagUnit is the lexical `i` token in operand position (spec §3: "`i` is
// not a variable; it is a lexical token producing 0 + 1i").
type ImagUnit struct{}

func (ImagUnit) exprNode()        {}
func (ImagUnit) String() string { return "i" }

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

func (Ident) exprNode()        {}
func (id Ident) String() string { return id.Name }

// Neg is unary negation.
type Neg struct {
	X Expr
}

func (Neg) exprNode()        {}
func (n Neg) String() string { return "-" + n.X.String() }

// BinOp is a binary operator application. Op is one of "+", "-", "*",
// "/", "^".
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinOp) exprNode() {}
func (b BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Call is a function application: a built-in or a user-defined Function,
// applied to a single argument expression.
type Call struct {
	Name string
	Arg  Expr
}

func (Call) exprNode() {}
func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.Arg)
}

// MatrixLit is a matrix literal: a list of rows, each a list of cell
// expressions.
type MatrixLit struct {
	Rows [][]Expr
}

func (MatrixLit) exprNode() {}
func (m MatrixLit) String() string {
	var rows []string
	for _, row := range m.Rows {
		var cells []string
		for _, c := range row {
			cells = append(cells, c.String())
		}
		rows = append(rows, "["+strings.Join(cells, ",")+"]")
	}
	return "[" + strings.Join(rows, ",") + "]"
}

// Assign is a top-level `name = expr` statement.
type Assign struct {
	Name string
	Expr Expr
}

func (Assign) exprNode() {}
func (a Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Expr)
}

// FunDef is a top-level `name(param) = body` statement.
type FunDef struct {
	Name  string
	Param string
	Body  Expr
}

func (FunDef) exprNode() {}
func (f FunDef) String() string {
	return fmt.Sprintf("%s(%s) = %s", f.Name, f.Param, f.Body)
}

// EquationQuery is a top-level `lhs = rhs ?` statement; Unknown is the
// single free identifier determined by the parser (spec §4.2).
type EquationQuery struct {
	Lhs, Rhs Expr
	Unknown  string
}

func (EquationQuery) exprNode() {}
func (e EquationQuery) String() string {
	return fmt.Sprintf("%s = %s ?", e.Lhs, e.Rhs)
}

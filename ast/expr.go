package ast

import (
	"flowpathc/common"
	"flowpathc/report"
	"flowpathc/typing"
)

// IntLit is an integer literal.
type IntLit struct {
	ExprBase

	Value int64
}

// BoolLit is a boolean literal.
type BoolLit struct {
	ExprBase

	Value bool
}

// Ident is an identifier reference, resolved to the declaration it names.
type Ident struct {
	ExprBase

	Sym *common.Symbol
	D   Decl
}

// BinOp enumerates the arithmetic, logical, and comparison operators.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case And:
		return "&&"
	case Or:
		return "||"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// BinaryExpr is an arithmetic, logical, or comparison operator application.
type BinaryExpr struct {
	ExprBase

	Op       BinOp
	Lhs, Rhs Expr
}

// CallExpr is a function call.
type CallExpr struct {
	ExprBase

	Callee Expr
	Args   []Expr
}

// FieldNameExpr is the network-specific expression that refers to a field
// inside a layout: Layout is the layout and Path the field's path within it
// (e.g. Path "src" under layout "eth" for eth.src).  Lowering eliminates
// every occurrence of this node.
type FieldNameExpr struct {
	ExprBase

	Layout *LayoutDecl
	Path   string
}

// -----------------------------------------------------------------------------

// NewIntLit constructs an IntLit.
func NewIntLit(span *report.TextSpan, value int64) *IntLit {
	return &IntLit{ExprBase: NewExprBase(span, typing.Int), Value: value}
}

// NewIdent constructs an Ident resolving to d.
func NewIdent(span *report.TextSpan, sym *common.Symbol, d Decl) *Ident {
	var t typing.Type
	if d != nil {
		t = d.DeclType()
	}
	return &Ident{ExprBase: NewExprBase(span, t), Sym: sym, D: d}
}

// NewCallExpr constructs a CallExpr.  The result type is the callee's
// function-type return, when known.
func NewCallExpr(span *report.TextSpan, callee Expr, args []Expr) *CallExpr {
	var rt typing.Type
	if ft, ok := callee.ExprType().(*typing.FuncType); ok {
		rt = ft.Return
	}
	return &CallExpr{ExprBase: NewExprBase(span, rt), Callee: callee, Args: args}
}

// NewBinaryExpr constructs a BinaryExpr of the given result type.
func NewBinaryExpr(span *report.TextSpan, op BinOp, lhs, rhs Expr, resultType typing.Type) *BinaryExpr {
	return &BinaryExpr{ExprBase: NewExprBase(span, resultType), Op: op, Lhs: lhs, Rhs: rhs}
}

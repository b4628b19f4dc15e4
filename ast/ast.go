// Package ast defines the closed, three-sorted AST that flows through
// lowering: Declarations, Statements, and Expressions.  Every node is a
// tagged variant of one of these three interfaces; lowering never invents a
// new case, it only re-selects among the existing ones and fills in fields.
package ast

import (
	"flowpathc/common"
	"flowpathc/report"
	"flowpathc/typing"
)

// Node is the interface common to every AST node.
type Node interface {
	// Span returns the source range the node occupies.  Synthesized nodes
	// that have no direct surface-syntax counterpart may return nil.
	Span() *report.TextSpan
}

// Base is embedded by every concrete node and supplies Span().
type Base struct {
	span *report.TextSpan
}

// NewBase returns a Base spanning span.
func NewBase(span *report.TextSpan) Base {
	return Base{span: span}
}

func (b Base) Span() *report.TextSpan {
	return b.span
}

// -----------------------------------------------------------------------------

// Specifier is a bitset of modifiers attached to a Decl.
type Specifier uint8

const (
	// Foreign marks a declaration as externally linked: no body of its own
	// is emitted, and the emitter resolves calls to it against the runtime
	// ABI or another translation unit.
	Foreign Specifier = 1 << iota
)

func (s Specifier) Has(f Specifier) bool {
	return s&f != 0
}

// Decl is the interface implemented by every declaration node.
type Decl interface {
	Node

	// Sym returns the declaration's name symbol, or nil for anonymous
	// declarations (e.g. an unnamed Case's implicit binding).
	Sym() *common.Symbol

	// DeclType returns the declaration's type, or nil for namespace-like
	// declarations that have no type of their own (Module, Layout).
	DeclType() typing.Type
	SetDeclType(typing.Type)

	// Specifiers returns the declaration's specifier bitset.
	Specifiers() Specifier

	// Ctx returns the declaration lexically enclosing this one -- the
	// module, decoder, or record body it was declared inside of.  Set once,
	// at declare-time, by the name binder.
	Ctx() Decl
	SetCtx(Decl)
}

// DeclBase is embedded by every concrete Decl.
type DeclBase struct {
	Base

	name  *common.Symbol
	typ   typing.Type
	specs Specifier
	ctx   Decl
}

// NewDeclBase returns a DeclBase for a declaration named name (nil for
// anonymous) of type typ (nil if the declaration has no type) with the
// given specifiers.
func NewDeclBase(span *report.TextSpan, name *common.Symbol, typ typing.Type, specs Specifier) DeclBase {
	return DeclBase{
		Base:  NewBase(span),
		name:  name,
		typ:   typ,
		specs: specs,
	}
}

func (db *DeclBase) Sym() *common.Symbol { return db.name }

func (db *DeclBase) DeclType() typing.Type { return db.typ }

func (db *DeclBase) SetDeclType(t typing.Type) { db.typ = t }

func (db *DeclBase) Specifiers() Specifier { return db.specs }

func (db *DeclBase) Ctx() Decl { return db.ctx }

func (db *DeclBase) SetCtx(ctx Decl) { db.ctx = ctx }

// IsForeign reports whether d carries the Foreign specifier.
func IsForeign(d Decl) bool {
	return d.Specifiers().Has(Foreign)
}

// -----------------------------------------------------------------------------

// Stmt is the interface implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// StmtBase is embedded by every concrete Stmt.
type StmtBase struct {
	Base
}

func NewStmtBase(span *report.TextSpan) StmtBase {
	return StmtBase{NewBase(span)}
}

func (StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// Expr is the interface implemented by every expression node.
type Expr interface {
	Node

	// ExprType returns the expression's static type.
	ExprType() typing.Type
	SetExprType(typing.Type)

	exprNode()
}

// ExprBase is embedded by every concrete Expr.
type ExprBase struct {
	Base
	typ typing.Type
}

func NewExprBase(span *report.TextSpan, typ typing.Type) ExprBase {
	return ExprBase{Base: NewBase(span), typ: typ}
}

func (eb *ExprBase) ExprType() typing.Type { return eb.typ }

func (eb *ExprBase) SetExprType(t typing.Type) { eb.typ = t }

func (ExprBase) exprNode() {}

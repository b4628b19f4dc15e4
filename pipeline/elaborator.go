package pipeline

import (
	"flowpathc/ast"
	"flowpathc/typing"
)

// Elaborator re-types a freshly synthesized call expression.  The real type
// elaborator additionally validates argument compatibility; the lowerer
// only depends on it to fill in a call's static type, so that is the only
// contract captured here.
type Elaborator interface {
	Elaborate(call *ast.CallExpr) *ast.CallExpr
}

// DefaultElaborator fills in a call's type from its callee's declared
// return type and otherwise passes the call through unchanged.  It performs
// no argument checking -- that is the real elaborator's job, out of scope
// here.
type DefaultElaborator struct{}

func (DefaultElaborator) Elaborate(call *ast.CallExpr) *ast.CallExpr {
	if ft, ok := call.Callee.ExprType().(*typing.FuncType); ok {
		call.SetExprType(ft.Return)
	}
	return call
}

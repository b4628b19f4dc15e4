package lower

import (
	"flowpathc/ast"
	"flowpathc/report"
)

// lowerExpr rewrites an expression tree.  The only case that transforms is
// Field-name; everything else lowers its children and short-circuits to the
// input node when nothing underneath changed.
func (l *Lowerer) lowerExpr(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case nil:
		return nil
	case *ast.FieldNameExpr:
		return l.lowerFieldName(v)
	case *ast.BinaryExpr:
		lhs := l.lowerExpr(v.Lhs)
		rhs := l.lowerExpr(v.Rhs)
		if lhs == v.Lhs && rhs == v.Rhs {
			return v
		}
		return ast.NewBinaryExpr(v.Span(), v.Op, lhs, rhs, v.ExprType())
	case *ast.CallExpr:
		callee := l.lowerExpr(v.Callee)
		changed := callee != v.Callee

		args := make([]ast.Expr, len(v.Args))
		for i, a := range v.Args {
			la := l.lowerExpr(a)
			args[i] = la
			if la != a {
				changed = true
			}
		}

		if !changed {
			return v
		}
		return ast.NewCallExpr(v.Span(), callee, args)
	default:
		// IntLit, BoolLit, Ident: no children to rewrite.
		return e
	}
}

// lowerFieldName resolves a Field-name expression to the identifier
// referencing the load variable synthesized when that field was extracted.
// The load variable's declared name is deterministic (mangle applied to the
// same layout/path pair), so a plain scope lookup by that name finds it
// regardless of how many statements separate the extraction from this use.
func (l *Lowerer) lowerFieldName(f *ast.FieldNameExpr) ast.Expr {
	varName := mangle(f.Layout.Sym().Name, f.Path)
	sym := l.syms.Put(varName)

	set, ok := l.unqualifiedLookup(sym)
	if !ok || len(set.decls) == 0 {
		report.UnextractedField(f.Span(), f.Layout.Sym().Name+"."+f.Path)
		return f
	}

	d := set.decls[len(set.decls)-1]
	return ast.NewIdent(f.Span(), sym, d)
}

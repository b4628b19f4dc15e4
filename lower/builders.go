package lower

import (
	"flowpathc/ast"
	"flowpathc/report"
)

// The build* functions in this file allocate the lowered counterpart of an
// existing statement node.  Each one honors the same contract: if every
// child passed in is pointer-identical to the corresponding child of the
// input node, the builder returns the input node unchanged rather than
// allocating a new one.  This keeps unchanged subtrees shared (the emitter
// is expected to treat the tree as a DAG) and makes a second pass over
// already-lowered output a no-op.

func sameStmts(a, b []ast.Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameCases(a, b []*ast.CaseStmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func spanOf(n ast.Node) *report.TextSpan {
	if n == nil {
		return nil
	}
	return n.Span()
}

// buildBlock wraps stmts in a Block, reusing orig if the flattened
// statement list is unchanged.
func buildBlock(orig *ast.BlockStmt, stmts []ast.Stmt) *ast.BlockStmt {
	if orig != nil && sameStmts(orig.Stmts, stmts) {
		return orig
	}
	return ast.NewBlockStmt(spanOf(orig), stmts)
}

// asSingleStmt collapses a lowered sequence into exactly one statement, per
// the statement lowerer's "expected to yield exactly one statement"
// contract for if/while bodies: empty becomes an EmptyStmt, a single
// element is used as-is, and anything longer is wrapped in a Block.
func asSingleStmt(span *report.TextSpan, stmts []ast.Stmt) ast.Stmt {
	switch len(stmts) {
	case 0:
		return &ast.EmptyStmt{StmtBase: ast.NewStmtBase(span)}
	case 1:
		return stmts[0]
	default:
		return ast.NewBlockStmt(span, stmts)
	}
}

func buildIf(orig *ast.IfStmt, cond ast.Expr, then ast.Stmt) *ast.IfStmt {
	if orig != nil && cond == orig.Cond && then == orig.Then {
		return orig
	}
	return &ast.IfStmt{StmtBase: ast.NewStmtBase(spanOf(orig)), Cond: cond, Then: then}
}

func buildIfElse(orig *ast.IfElseStmt, cond ast.Expr, then, els ast.Stmt) *ast.IfElseStmt {
	if orig != nil && cond == orig.Cond && then == orig.Then && els == orig.Else {
		return orig
	}
	return &ast.IfElseStmt{StmtBase: ast.NewStmtBase(spanOf(orig)), Cond: cond, Then: then, Else: els}
}

func buildWhile(orig *ast.WhileStmt, cond ast.Expr, body ast.Stmt) *ast.WhileStmt {
	if orig != nil && cond == orig.Cond && body == orig.Body {
		return orig
	}
	return &ast.WhileStmt{StmtBase: ast.NewStmtBase(spanOf(orig)), Cond: cond, Body: body}
}

func buildMatch(orig *ast.MatchStmt, cond ast.Expr, cases []*ast.CaseStmt) *ast.MatchStmt {
	if orig != nil && cond == orig.Cond && sameCases(orig.Cases, cases) {
		return orig
	}
	return &ast.MatchStmt{StmtBase: ast.NewStmtBase(spanOf(orig)), Cond: cond, Cases: cases}
}

// buildCase rewraps a Case's lowered body; its label is always copied
// verbatim since it is a literal, never itself lowered.
func buildCase(orig *ast.CaseStmt, body ast.Stmt) *ast.CaseStmt {
	if body == orig.Body {
		return orig
	}
	return &ast.CaseStmt{StmtBase: ast.NewStmtBase(spanOf(orig)), Label: orig.Label, Body: body}
}

func buildExprStmt(orig *ast.ExprStmt, x ast.Expr) ast.Stmt {
	if orig != nil && x == orig.X {
		return orig
	}
	return ast.NewExprStmt(spanOf(orig), x)
}

func buildDeclStmt(orig *ast.DeclStmt, d ast.Decl) ast.Stmt {
	if orig != nil && d == orig.D {
		return orig
	}
	return ast.NewDeclStmt(spanOf(orig), d)
}

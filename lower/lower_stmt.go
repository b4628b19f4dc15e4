package lower

import (
	"flowpathc/ast"
	"flowpathc/builtin"
	"flowpathc/report"
	"flowpathc/typing"
)

// lowerStmt lowers a statement to a sequence of statements.  Most cases
// yield exactly one; Declaration-stmts wrapping an Extracts or Rebind
// declaration yield two or three.
func (l *Lowerer) lowerStmt(s ast.Stmt) []ast.Stmt {
	switch v := s.(type) {
	case nil, *ast.EmptyStmt:
		return nil

	case *ast.BlockStmt:
		return []ast.Stmt{l.lowerBlockStmt(v)}

	case *ast.IfStmt:
		cond := l.lowerExpr(v.Cond)
		then := asSingleStmt(spanOf(v.Then), l.lowerStmt(v.Then))
		return []ast.Stmt{buildIf(v, cond, then)}

	case *ast.IfElseStmt:
		cond := l.lowerExpr(v.Cond)
		then := asSingleStmt(spanOf(v.Then), l.lowerStmt(v.Then))
		els := asSingleStmt(spanOf(v.Else), l.lowerStmt(v.Else))
		return []ast.Stmt{buildIfElse(v, cond, then, els)}

	case *ast.WhileStmt:
		cond := l.lowerExpr(v.Cond)
		body := asSingleStmt(spanOf(v.Body), l.lowerStmt(v.Body))
		return []ast.Stmt{buildWhile(v, cond, body)}

	case *ast.MatchStmt:
		cond := l.lowerExpr(v.Cond)
		cases := make([]*ast.CaseStmt, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = l.lowerCase(c)
		}
		return []ast.Stmt{buildMatch(v, cond, cases)}

	case *ast.CaseStmt:
		return []ast.Stmt{l.lowerCase(v)}

	case *ast.ExprStmt:
		x := l.lowerExpr(v.X)
		return []ast.Stmt{buildExprStmt(v, x)}

	case *ast.DeclStmt:
		return l.lowerDeclStmt(v)

	case *ast.DecodeStmt:
		return []ast.Stmt{l.lowerDecodeStmt(v)}

	case *ast.GotoStmt:
		return []ast.Stmt{l.lowerGotoStmt(v)}

	default:
		report.ReportICE("lowering for statement kind %T not implemented", s)
		return []ast.Stmt{s}
	}
}

func (l *Lowerer) lowerBlockStmt(b *ast.BlockStmt) *ast.BlockStmt {
	var flat []ast.Stmt
	for _, child := range b.Stmts {
		flat = append(flat, l.lowerStmt(child)...)
	}
	return buildBlock(b, flat)
}

// lowerCase always wraps its lowered body in a Block, per §4.4; its label
// is a literal and is copied verbatim.
func (l *Lowerer) lowerCase(c *ast.CaseStmt) *ast.CaseStmt {
	lowered := l.lowerStmt(c.Body)

	if orig, ok := c.Body.(*ast.BlockStmt); ok {
		return buildCase(c, buildBlock(orig, lowered))
	}
	return buildCase(c, ast.NewBlockStmt(spanOf(c.Body), lowered))
}

// lowerDeclStmt dispatches a Declaration-stmt by the kind of the
// declaration it wraps.
func (l *Lowerer) lowerDeclStmt(ds *ast.DeclStmt) []ast.Stmt {
	switch d := ds.D.(type) {
	case *ast.ExtractsDecl:
		return l.lowerExtracts(d, ds.Span())
	case *ast.RebindDecl:
		return l.lowerRebind(d, ds.Span())
	default:
		lowered := l.lowerInnerDecl(ds.D)
		return []ast.Stmt{buildDeclStmt(ds, lowered)}
	}
}

// lowerExtracts is the heart of the lowering: it turns a field extraction
// into a bind-then-load pair.  The bind_field call records the field's
// byte range with the runtime; the load variable it declares afterward is
// what every Field-name reference to this field resolves to.
func (l *Lowerer) lowerExtracts(ext *ast.ExtractsDecl, span *report.TextSpan) []ast.Stmt {
	fname, ok := ext.Field.(*ast.FieldNameExpr)
	if !ok {
		report.ReportICE("extracts declaration's field is not a field-name expression")
		return nil
	}

	layout := fname.Layout
	field, ok := layout.FieldByPath(fname.Path)
	if !ok {
		report.UnextractedField(span, layout.Sym().Name+"."+fname.Path)
		return nil
	}

	id := l.fields.IDFor(span, layout.Sym().Name, fname.Path)
	ctxIdent := l.contextIdent(span)

	bindCall := l.elaborator.Elaborate(l.catalog.Call(builtin.BindField,
		ctxIdent,
		ast.NewIntLit(span, int64(id)),
		ast.NewIntLit(span, int64(field.Offset)),
		ast.NewIntLit(span, int64(field.Length)),
	))
	bindStmt := ast.NewExprStmt(span, bindCall)

	loadVar := l.declareLoadVar(span, layout.Sym().Name, fname.Path, id, field.DeclType(), ctxIdent)

	return []ast.Stmt{bindStmt, ast.NewDeclStmt(span, loadVar)}
}

// lowerRebind extracts a field and additionally binds it under an alias:
// `extract eth.src as saddr;`.  Field1 is the true field, Field2 the alias.
// Both are Field-name expressions sharing the true field's layout; the
// pipeline checker assigns the alias its own field-mapping id under that
// same layout.
func (l *Lowerer) lowerRebind(rb *ast.RebindDecl, span *report.TextSpan) []ast.Stmt {
	trueField, ok1 := rb.Field1.(*ast.FieldNameExpr)
	aliasField, ok2 := rb.Field2.(*ast.FieldNameExpr)
	if !ok1 || !ok2 {
		report.ReportICE("rebind declaration's fields are not field-name expressions")
		return nil
	}

	layout := trueField.Layout
	field, ok := layout.FieldByPath(trueField.Path)
	if !ok {
		report.UnextractedField(span, layout.Sym().Name+"."+trueField.Path)
		return nil
	}

	idTrue := l.fields.IDFor(span, layout.Sym().Name, trueField.Path)
	idAlias := l.fields.IDFor(span, layout.Sym().Name, aliasField.Path)
	ctxIdent := l.contextIdent(span)

	aliasCall := l.elaborator.Elaborate(l.catalog.Call(builtin.AliasBind,
		ctxIdent,
		ast.NewIntLit(span, int64(idTrue)),
		ast.NewIntLit(span, int64(idAlias)),
		ast.NewIntLit(span, int64(field.Offset)),
		ast.NewIntLit(span, int64(field.Length)),
	))
	bindStmt := ast.NewExprStmt(span, aliasCall)

	trueVar := l.declareLoadVar(span, layout.Sym().Name, trueField.Path, idTrue, field.DeclType(), ctxIdent)
	aliasVar := l.declareAliasVar(span, aliasField.Path, idAlias, field.DeclType(), ctxIdent)

	return []ast.Stmt{
		bindStmt,
		ast.NewDeclStmt(span, trueVar),
		ast.NewDeclStmt(span, aliasVar),
	}
}

func (l *Lowerer) declareLoadVar(span *report.TextSpan, layoutName, path string, id int, typ typing.Type, ctxIdent *ast.Ident) *ast.VariableDecl {
	return l.declareLoadVarNamed(span, mangle(layoutName, path), id, typ, ctxIdent)
}

func (l *Lowerer) declareAliasVar(span *report.TextSpan, alias string, id int, typ typing.Type, ctxIdent *ast.Ident) *ast.VariableDecl {
	return l.declareLoadVarNamed(span, mangleAlias(alias), id, typ, ctxIdent)
}

// declareLoadVarNamed builds `var <name>: typ = fp_load_field(cxt, id)` and
// declares it in the current (decoder) scope -- this is the variable every
// Field-name reference to this extraction resolves to.
func (l *Lowerer) declareLoadVarNamed(span *report.TextSpan, name string, id int, typ typing.Type, ctxIdent *ast.Ident) *ast.VariableDecl {
	loadCall := l.elaborator.Elaborate(l.catalog.Call(builtin.LoadField, ctxIdent, ast.NewIntLit(span, int64(id))))

	sym := l.syms.Put(name)
	v := ast.NewVariableDecl(span, sym, typ, loadCall)
	l.declare(v)
	return v
}

func (l *Lowerer) contextIdent(span *report.TextSpan) *ast.Ident {
	ctxDecl := l.lookupContext(span)
	return ast.NewIdent(span, l.ctxSym, ctxDecl)
}

// lowerDecodeStmt lowers `decode next;` to a tail call `next(__context)`
// and records the transfer for the emitter's dispatch graph.
func (l *Lowerer) lowerDecodeStmt(ds *ast.DecodeStmt) ast.Stmt {
	target := l.decodeFuncs[ds.Target]
	if target == nil {
		report.ReportICE("decode statement targets an undeclared decoder")
	}

	l.recordSuccessor(ds.Target, nil)

	ctxIdent := l.contextIdent(ds.Span())
	callee := ast.NewIdent(ds.Span(), target.Sym(), target)
	call := ast.NewCallExpr(ds.Span(), callee, []ast.Expr{ctxIdent})
	return ast.NewExprStmt(ds.Span(), call)
}

// lowerGotoStmt lowers `goto t;` to `fp_goto_table(__context, t)`.
func (l *Lowerer) lowerGotoStmt(gs *ast.GotoStmt) ast.Stmt {
	l.recordSuccessor(nil, gs.Target)

	ctxIdent := l.contextIdent(gs.Span())
	tableIdent := ast.NewIdent(gs.Span(), gs.Target.Sym(), gs.Target)
	call := l.elaborator.Elaborate(l.catalog.Call(builtin.GotoTable, ctxIdent, tableIdent))
	return ast.NewExprStmt(gs.Span(), call)
}

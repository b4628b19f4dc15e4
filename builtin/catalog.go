// Package builtin holds the fixed catalog of south-bound runtime-ABI
// functions the lowerer calls into.  The catalog centralizes the ABI so the
// runtime contract lives in exactly one place, grounded on the surface
// language's own Builtin type.
package builtin

import (
	"flowpathc/ast"
	"flowpathc/common"
	"flowpathc/report"
	"flowpathc/typing"
)

// The nine ABI names defined by the south-bound interface (external
// interfaces table). fp_bind_header, fp_advance, fp_get_table, and
// fp_add_flow are declared here because they are part of that documented
// interface even though no lowering path in this pass emits them yet --
// see DESIGN.md's builtin-catalog entry for what does and does not have a
// call site.
const (
	BindHeader = "fp_bind_header"
	BindField  = "fp_bind_field"
	AliasBind  = "fp_alias_bind"
	Advance    = "fp_advance"
	GetTable   = "fp_get_table"
	AddFlow    = "fp_add_flow"
	GotoTable  = "fp_goto_table"
	LoadField  = "fp_load_field"
	GetPort    = "fp_get_port"
)

// Catalog is the fixed map from ABI name to its foreign function
// declaration.  A Catalog is built once, over the module's symbol table, and
// shared read-only for the remainder of lowering.
type Catalog struct {
	fns map[string]*ast.FunctionDecl
}

// NewCatalog constructs the catalog, interning each ABI function's name
// through put (ordinarily pipeline.SymbolTable.Put).
func NewCatalog(put func(string) *common.Symbol) *Catalog {
	c := &Catalog{fns: make(map[string]*ast.FunctionDecl, 9)}

	ctxRef := &typing.RefType{Elem: typing.ContextType}

	def := func(name string, params []typing.Type, ret typing.Type) {
		paramDecls := make([]*ast.ParameterDecl, len(params))
		for i, pt := range params {
			paramDecls[i] = ast.NewParameterDecl(nil, put("_"), pt)
		}

		ft := &typing.FuncType{Params: params, Return: ret}
		c.fns[name] = ast.NewFunctionDecl(nil, put(name), ft, ast.Foreign, paramDecls, nil)
	}

	def(BindHeader, []typing.Type{typing.Int, typing.Int}, typing.Void)
	def(BindField, []typing.Type{ctxRef, typing.Int, typing.Int, typing.Int}, typing.Void)
	def(AliasBind, []typing.Type{ctxRef, typing.Int, typing.Int, typing.Int, typing.Int}, typing.Void)
	def(Advance, []typing.Type{ctxRef, typing.Int}, typing.Void)
	def(GetTable, []typing.Type{typing.Int, typing.Int, typing.Int}, typing.TableType)
	def(AddFlow, []typing.Type{typing.TableType, typing.Int, typing.Int}, typing.Void)
	def(GotoTable, []typing.Type{ctxRef, typing.TableType}, typing.Void)
	def(LoadField, []typing.Type{ctxRef, typing.Int}, typing.Int)
	def(GetPort, []typing.Type{}, typing.PortType)

	return c
}

// Get returns the declaration for an ABI function, raising UnknownBuiltin if
// name is not one of the nine catalog entries.
func (c *Catalog) Get(name string) *ast.FunctionDecl {
	fn, ok := c.fns[name]
	if !ok {
		report.UnknownBuiltin(name)
	}
	return fn
}

// All returns every catalog entry, in no particular order.  Used by the
// declaration lowerer's declare-all pre-pass.
func (c *Catalog) All() []*ast.FunctionDecl {
	fns := make([]*ast.FunctionDecl, 0, len(c.fns))
	for _, fn := range c.fns {
		fns = append(fns, fn)
	}
	return fns
}

// Call builds a call expression against the named builtin.  It performs no
// argument-count or type checking of its own -- callers rely on the
// elaborator to re-check the freshly synthesized call.
func (c *Catalog) Call(name string, args ...ast.Expr) *ast.CallExpr {
	fn := c.Get(name)
	callee := ast.NewIdent(nil, fn.Sym(), fn)
	return ast.NewCallExpr(nil, callee, args)
}

package lower

import (
	"testing"

	"flowpathc/ast"
	"flowpathc/internal/testutil"
	"flowpathc/pipeline"
	"flowpathc/report"
	"flowpathc/typing"
)

// newFixture builds a Lowerer plus the symbol table and field-mapping table
// backing it, using the default elaborator and overload predicate; each
// scenario populates the tables by hand.
func newFixture() (*Lowerer, *pipeline.SymbolTable, *pipeline.FieldMapping) {
	syms := pipeline.NewSymbolTable()
	fields := pipeline.NewFieldMapping()
	l := New(syms, fields, pipeline.DefaultElaborator{}, pipeline.DefaultOverloadPredicate)
	return l, syms, fields
}

func layoutWithField(syms *pipeline.SymbolTable, layoutName, fieldName string, offset, length int) (*ast.LayoutDecl, *ast.FieldDecl) {
	field := &ast.FieldDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put(fieldName), typing.Int, 0),
		Offset:   offset,
		Length:   length,
	}
	layout := &ast.LayoutDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put(layoutName), nil, 0),
		Fields:   []*ast.FieldDecl{field},
	}
	return layout, field
}

func module(decls ...ast.Decl) *ast.ModuleDecl {
	return &ast.ModuleDecl{DeclBase: ast.NewDeclBase(nil, nil, nil, 0), Decls: decls}
}

// Scenario A -- trivial decoder.
func TestScenarioA_TrivialDecoder(t *testing.T) {
	l, syms, _ := newFixture()

	eth, _ := layoutWithField(syms, "Eth", "src", 6, 6)
	d1 := &ast.DecodeDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put("d1"), nil, 0),
		Header:   eth,
		Body:     ast.NewBlockStmt(nil, nil),
	}

	out, err := l.Lower(module(d1))
	testutil.AssertNoError(t, err)

	fn, ok := out.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", out.Decls[0])
	}

	testutil.AssertRepr(t, "{  }", ast.Repr(fn.Body))
	if l.EntryPoint() != nil {
		t.Fatalf("expected no entry point, got %v", l.EntryPoint())
	}
}

// Scenario B -- single extraction.
func TestScenarioB_SingleExtraction(t *testing.T) {
	l, syms, fields := newFixture()

	eth, _ := layoutWithField(syms, "eth", "src", 6, 6)
	fields.Set("eth", "src", 7)

	extractStmt := ast.NewDeclStmt(nil, &ast.ExtractsDecl{
		DeclBase: ast.NewDeclBase(nil, nil, nil, 0),
		Field:    &ast.FieldNameExpr{Layout: eth, Path: "src"},
	})

	cmpStmt := ast.NewExprStmt(nil, &ast.BinaryExpr{
		Op:  ast.Eq,
		Lhs: &ast.FieldNameExpr{Layout: eth, Path: "src"},
		Rhs: ast.NewIntLit(nil, 0),
	})

	d1 := &ast.DecodeDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put("d1"), nil, 0),
		Header:   eth,
		Body:     ast.NewBlockStmt(nil, []ast.Stmt{extractStmt, cmpStmt}),
	}

	out, err := l.Lower(module(d1))
	testutil.AssertNoError(t, err)
	fn := out.Decls[0].(*ast.FunctionDecl)

	want := "{ fp_bind_field(__context, 7, 6, 6); var eth_src = fp_load_field(__context, 7); (eth_src == 0); }"
	testutil.AssertRepr(t, want, ast.Repr(fn.Body))
}

// Scenario C -- rebind.
func TestScenarioC_Rebind(t *testing.T) {
	l, syms, fields := newFixture()

	eth, _ := layoutWithField(syms, "eth", "src", 6, 6)
	fields.Set("eth", "src", 7)
	fields.Set("eth", "saddr", 42)

	rebindStmt := ast.NewDeclStmt(nil, &ast.RebindDecl{
		DeclBase: ast.NewDeclBase(nil, nil, nil, 0),
		Field1:   &ast.FieldNameExpr{Layout: eth, Path: "src"},
		Field2:   &ast.FieldNameExpr{Layout: eth, Path: "saddr"},
	})

	d1 := &ast.DecodeDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put("d1"), nil, 0),
		Header:   eth,
		Body:     ast.NewBlockStmt(nil, []ast.Stmt{rebindStmt}),
	}

	out, err := l.Lower(module(d1))
	testutil.AssertNoError(t, err)
	fn := out.Decls[0].(*ast.FunctionDecl)

	want := "{ fp_alias_bind(__context, 7, 42, 6, 6); var eth_src = fp_load_field(__context, 7); var saddr = fp_load_field(__context, 42); }"
	testutil.AssertRepr(t, want, ast.Repr(fn.Body))
}

// Scenario D -- port.
func TestScenarioD_Port(t *testing.T) {
	l, syms, _ := newFixture()

	port := ast.NewPortDecl(nil, syms.Put("eth0"))
	out, err := l.Lower(module(port))
	testutil.AssertNoError(t, err)

	v, ok := out.Decls[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", out.Decls[0])
	}

	testutil.AssertRepr(t, "var eth0 = fp_get_port()", ast.Repr(v))
}

// Scenario E -- control flow preserved.
func TestScenarioE_ControlFlowPreserved(t *testing.T) {
	l, syms, fields := newFixture()

	eth, _ := layoutWithField(syms, "eth", "src", 6, 6)
	fields.Set("eth", "src", 7)

	xSym := syms.Put("x")
	xIdent := ast.NewIdent(nil, xSym, ast.NewParameterDecl(nil, xSym, typing.Int))

	extractStmt := ast.NewDeclStmt(nil, &ast.ExtractsDecl{
		DeclBase: ast.NewDeclBase(nil, nil, nil, 0),
		Field:    &ast.FieldNameExpr{Layout: eth, Path: "src"},
	})

	ifStmt := &ast.IfStmt{
		StmtBase: ast.NewStmtBase(nil),
		Cond:     &ast.BinaryExpr{Op: ast.Eq, Lhs: xIdent, Rhs: ast.NewIntLit(nil, 1)},
		Then:     ast.NewBlockStmt(nil, []ast.Stmt{extractStmt}),
	}

	d1 := &ast.DecodeDecl{
		DeclBase: ast.NewDeclBase(nil, syms.Put("d1"), nil, 0),
		Header:   eth,
		Body:     ast.NewBlockStmt(nil, []ast.Stmt{ifStmt}),
	}

	out, err := l.Lower(module(d1))
	testutil.AssertNoError(t, err)
	fn := out.Decls[0].(*ast.FunctionDecl)

	want := "{ if (x == 1) { fp_bind_field(__context, 7, 6, 6); var eth_src = fp_load_field(__context, 7); } }"
	testutil.AssertRepr(t, want, ast.Repr(fn.Body))
}

// Scenario F -- overload conflict.
func TestScenarioF_OverloadConflict(t *testing.T) {
	l, syms, _ := newFixture()

	intFuncType := &typing.FuncType{Return: typing.Int}
	f1 := ast.NewFunctionDecl(nil, syms.Put("f"), intFuncType, 0, nil, ast.NewBlockStmt(nil, nil))
	f2 := ast.NewFunctionDecl(nil, syms.Put("f"), intFuncType, 0, nil, ast.NewBlockStmt(nil, nil))

	out, err := l.Lower(module(f1, f2))
	if err == nil {
		t.Fatalf("expected an error, got nil (out = %v)", out)
	}
	if out != nil {
		t.Fatalf("expected nil out alongside a non-nil error, got %v", out)
	}

	lce, ok := err.(*report.LocalCompileError)
	if !ok {
		t.Fatalf("expected *report.LocalCompileError, got %T (%v)", err, err)
	}
	if lce.Kind != report.KindRedefinition {
		t.Fatalf("expected KindRedefinition, got %s", lce.Kind)
	}
}

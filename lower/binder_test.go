package lower

import (
	"testing"

	"flowpathc/ast"
	"flowpathc/internal/testutil"
	"flowpathc/typing"
)

func TestOverloadAllowsDifferingParamTypes(t *testing.T) {
	l, syms, _ := newFixture()

	intParam := ast.NewParameterDecl(nil, syms.Put("_"), typing.Int)
	boolParam := ast.NewParameterDecl(nil, syms.Put("_"), typing.Bool)

	f1 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Params: []typing.Type{typing.Int}, Return: typing.Int}, 0, []*ast.ParameterDecl{intParam}, ast.NewBlockStmt(nil, nil))
	f2 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Params: []typing.Type{typing.Bool}, Return: typing.Int}, 0, []*ast.ParameterDecl{boolParam}, ast.NewBlockStmt(nil, nil))

	out, err := l.Lower(module(f1, f2))
	testutil.AssertNoError(t, err)
	if len(out.Decls) != 2 {
		t.Fatalf("expected both overloads to survive lowering, got %d decls", len(out.Decls))
	}
}

func TestUnqualifiedLookupIsInnermostFirst(t *testing.T) {
	l, syms, _ := newFixture()

	release := l.pushScope(nil)
	defer release()

	outer := ast.NewVariableDecl(nil, syms.Put("v"), typing.Int, ast.NewIntLit(nil, 1))
	l.declare(outer)

	innerRelease := l.pushScope(nil)
	defer innerRelease()

	inner := ast.NewVariableDecl(nil, syms.Put("v"), typing.Int, ast.NewIntLit(nil, 2))
	l.declare(inner)

	set, ok := l.unqualifiedLookup(syms.Put("v"))
	if !ok || len(set.decls) == 0 {
		t.Fatalf("expected to find `v`")
	}
	if set.decls[len(set.decls)-1] != ast.Decl(inner) {
		t.Fatalf("expected innermost `v` to shadow outer")
	}
}

package pipeline

import (
	"testing"

	"flowpathc/ast"
	"flowpathc/typing"
)

func TestDefaultOverloadPredicateRequiresFunctions(t *testing.T) {
	syms := NewSymbolTable()
	v := ast.NewVariableDecl(nil, syms.Put("v"), typing.Int, ast.NewIntLit(nil, 1))
	f := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Return: typing.Int}, 0, nil, nil)

	if DefaultOverloadPredicate(v, f) {
		t.Fatalf("expected a variable/function pair to be rejected")
	}
}

func TestDefaultOverloadPredicateRequiresEqualArity(t *testing.T) {
	syms := NewSymbolTable()
	p := ast.NewParameterDecl(nil, syms.Put("_"), typing.Int)

	f1 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Params: []typing.Type{typing.Int}, Return: typing.Int}, 0, []*ast.ParameterDecl{p}, nil)
	f2 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Return: typing.Int}, 0, nil, nil)

	if DefaultOverloadPredicate(f1, f2) {
		t.Fatalf("expected differing arity to be rejected")
	}
}

func TestDefaultOverloadPredicateAcceptsDifferingParamTypes(t *testing.T) {
	syms := NewSymbolTable()
	pi := ast.NewParameterDecl(nil, syms.Put("_"), typing.Int)
	pb := ast.NewParameterDecl(nil, syms.Put("_"), typing.Bool)

	f1 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Params: []typing.Type{typing.Int}, Return: typing.Int}, 0, []*ast.ParameterDecl{pi}, nil)
	f2 := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Params: []typing.Type{typing.Bool}, Return: typing.Int}, 0, []*ast.ParameterDecl{pb}, nil)

	if !DefaultOverloadPredicate(f1, f2) {
		t.Fatalf("expected differing param types to be accepted")
	}
}

func TestDefaultElaboratorFillsReturnType(t *testing.T) {
	syms := NewSymbolTable()
	fn := ast.NewFunctionDecl(nil, syms.Put("f"), &typing.FuncType{Return: typing.Int}, 0, nil, nil)
	callee := ast.NewIdent(nil, fn.Sym(), fn)
	call := ast.NewCallExpr(nil, callee, nil)

	out := DefaultElaborator{}.Elaborate(call)
	if !out.ExprType().Equals(typing.Int) {
		t.Fatalf("expected call type Int, got %s", out.ExprType().Repr())
	}
}

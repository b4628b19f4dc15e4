package lower

import (
	"flowpathc/ast"
	"flowpathc/common"
	"flowpathc/report"
	"flowpathc/typing"
)

// overloadSet is an ordered list of declarations sharing one name in one
// scope.
type overloadSet struct {
	name  string
	decls []ast.Decl
}

// scope is a single level of the lowerer's scope stack: a set of bindings,
// tagged with the declaration that owns it (the module, a decoder, a record
// body) so that declare can set each new declaration's back-link.
type scope struct {
	owner    ast.Decl
	bindings map[string]*overloadSet
}

func newScope(owner ast.Decl) *scope {
	return &scope{owner: owner, bindings: make(map[string]*overloadSet)}
}

// pushScope acquires a scope sentinel: it pushes a fresh scope owned by
// owner and returns a release function that pops it.  Callers defer the
// release immediately so the scope is torn down on every exit path,
// including a panic unwinding out of Raise.
//
//	release := l.pushScope(decodeDecl)
//	defer release()
func (l *Lowerer) pushScope(owner ast.Decl) func() {
	l.scopes = append(l.scopes, newScope(owner))
	return l.popScope
}

func (l *Lowerer) popScope() {
	l.scopes = l.scopes[:len(l.scopes)-1]
}

func (l *Lowerer) currentScope() *scope {
	return l.scopes[len(l.scopes)-1]
}

// declare binds d into the current scope under d.Sym().  If the scope has no
// existing binding for that name, a fresh overload set is created.
// Otherwise the overload predicate decides whether d may coexist with the
// existing entries: an identical type is always a Redefinition; a differing
// type that the predicate rejects is a BadOverload.
//
// declare also sets d's enclosing-declaration back-link to the scope's
// owner, which is how IsGlobal/IsLocal-style queries are answered later.
func (l *Lowerer) declare(d ast.Decl) {
	sc := l.currentScope()
	d.SetCtx(sc.owner)

	if d.Sym() == nil {
		return
	}

	name := d.Sym().Name
	set, ok := sc.bindings[name]
	if !ok {
		sc.bindings[name] = &overloadSet{name: name, decls: []ast.Decl{d}}
		return
	}

	for _, prev := range set.decls {
		if typesEqual(prev.DeclType(), d.DeclType()) {
			report.Redefinition(d.Span(), name)
			return
		}
		if !l.canOverload(prev, d) {
			report.BadOverload(d.Span(), name)
			return
		}
	}

	set.decls = append(set.decls, d)
}

// redeclare appends d to the current scope's overload set for its name (or
// creates one) without running the overload check.  It is used to bring an
// already-validated declaration back into view in a different scope, e.g.
// re-exposing a lowered decoder function in the module scope.
func (l *Lowerer) redeclare(d ast.Decl) {
	sc := l.currentScope()
	d.SetCtx(sc.owner)

	if d.Sym() == nil {
		return
	}

	name := d.Sym().Name
	if set, ok := sc.bindings[name]; ok {
		set.decls = append(set.decls, d)
	} else {
		sc.bindings[name] = &overloadSet{name: name, decls: []ast.Decl{d}}
	}
}

// unqualifiedLookup searches the scope stack innermost-first for sym.
func (l *Lowerer) unqualifiedLookup(sym *common.Symbol) (*overloadSet, bool) {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if set, ok := l.scopes[i].bindings[sym.Name]; ok {
			return set, true
		}
	}
	return nil, false
}

// qualifiedLookup searches sc alone.
func (l *Lowerer) qualifiedLookup(sc *scope, sym *common.Symbol) (*overloadSet, bool) {
	set, ok := sc.bindings[sym.Name]
	return set, ok
}

// lookupContext resolves the implicit context parameter in the innermost
// enclosing decoder scope.  It raises MissingContext if an extraction is
// encountered outside of any decoder.
func (l *Lowerer) lookupContext(span *report.TextSpan) ast.Decl {
	set, ok := l.unqualifiedLookup(l.ctxSym)
	if !ok || len(set.decls) == 0 {
		report.MissingContext(span)
		return nil
	}
	return set.decls[len(set.decls)-1]
}

func typesEqual(a, b typing.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}

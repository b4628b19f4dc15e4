package pipeline

import "flowpathc/ast"

// OverloadPredicate decides whether curr may share a name with prev, an
// existing declaration in the same scope, given that their types already
// differ.  The name binder consults this only after ruling out an exact
// type match (which is always a Redefinition).
type OverloadPredicate func(prev, curr ast.Decl) bool

// DefaultOverloadPredicate is the reference predicate: both declarations
// must be functions, of equal arity, differing in at least one parameter
// type.  This mirrors the elaborator's usual overload-resolution contract
// without requiring the elaborator itself to be wired in.
func DefaultOverloadPredicate(prev, curr ast.Decl) bool {
	pf, ok := prev.(*ast.FunctionDecl)
	if !ok {
		return false
	}
	cf, ok := curr.(*ast.FunctionDecl)
	if !ok {
		return false
	}

	if len(pf.Params) != len(cf.Params) {
		return false
	}

	differs := false
	for i, pp := range pf.Params {
		cp := cf.Params[i]
		if pp.DeclType() == nil || cp.DeclType() == nil {
			continue
		}
		if !pp.DeclType().Equals(cp.DeclType()) {
			differs = true
		}
	}

	return differs
}

// Package lower implements the tree-to-tree rewrite that turns a
// name-resolved, type-checked flowpath module into a residual program whose
// only network-specific primitives are calls into the runtime's south-bound
// ABI.  It is driven by three mutually recursive dispatchers -- declaration,
// statement, and expression lowering -- over the shared, closed ast types;
// lowering never invents a new node kind, only re-selects among the
// existing cases.
package lower

import (
	"flowpathc/ast"
	"flowpathc/builtin"
	"flowpathc/common"
	"flowpathc/pipeline"
	"flowpathc/report"
	"flowpathc/typing"
)

// decoderType is the canonical type every decoder lowers to:
// `(&Context) -> void`.
var decoderType = &typing.FuncType{
	Params: []typing.Type{&typing.RefType{Elem: typing.ContextType}},
	Return: typing.Void,
}

// Successor records a control-transfer target recorded by lowering a
// Decode-stmt or Goto-stmt, kept for the emitter alongside the actual
// lowered call so both a structural jump graph and a directly-callable
// program are available downstream.
type Successor struct {
	Decode *ast.DecodeDecl
	Table  *ast.TableDecl
}

// Lowerer holds all state threaded through one module's lowering pass.  It
// is not safe for concurrent use -- lowering is single-threaded by design
// (see the concurrency model) -- but a fresh Lowerer may be constructed for
// each module lowered within a process.
type Lowerer struct {
	catalog     *builtin.Catalog
	syms        *pipeline.SymbolTable
	fields      *pipeline.FieldMapping
	elaborator  pipeline.Elaborator
	canOverload pipeline.OverloadPredicate

	scopes []*scope
	ctxSym *common.Symbol

	// absPath and reprPath identify the source file a fatal error should be
	// reported against: absPath is opened to print a caret-underlined
	// excerpt (silently skipped if unreadable), reprPath is the name shown
	// in the diagnostic. Set via SetSource; both default to the empty
	// module identity for a Lowerer constructed by a caller (e.g. a test)
	// with no backing file.
	absPath  string
	reprPath string

	// successors accumulates the Decode/Goto targets seen while lowering
	// each decoder, keyed by the decoder's lowered function.  Consumed by
	// the emitter to build the pipeline's dispatch graph.
	successors map[*ast.FunctionDecl][]Successor

	// decodeFuncs maps each surface Decode declaration to the Function
	// declaration it lowers to.  Built eagerly, before any decoder body is
	// lowered, so that mutually-recursive decode/goto references resolve
	// regardless of source order.
	decodeFuncs map[*ast.DecodeDecl]*ast.FunctionDecl

	// entry is the decoder marked is_start, if the module declares one.
	entry *ast.FunctionDecl

	// curDecoder is the lowered function for the decoder body currently
	// being lowered, used to key recorded successors.  nil outside of a
	// decoder body.
	curDecoder *ast.FunctionDecl
}

// recordSuccessor records a Decode/Goto target seen while lowering the
// decoder currently in scope.
func (l *Lowerer) recordSuccessor(decode *ast.DecodeDecl, table *ast.TableDecl) {
	if l.curDecoder == nil {
		return
	}
	l.successors[l.curDecoder] = append(l.successors[l.curDecoder], Successor{Decode: decode, Table: table})
}

// EntryPoint returns the lowered function marked as the pipeline's entry
// decoder, or nil if the module declared none.
func (l *Lowerer) EntryPoint() *ast.FunctionDecl {
	return l.entry
}

// New constructs a Lowerer.  syms and fields must be shared with (or
// produced by) the earlier passes that named and mapped fields for the
// module being lowered; elaborator and canOverload may be
// pipeline.DefaultElaborator{} and pipeline.DefaultOverloadPredicate when no
// bespoke front end is wired in.
func New(syms *pipeline.SymbolTable, fields *pipeline.FieldMapping, elaborator pipeline.Elaborator, canOverload pipeline.OverloadPredicate) *Lowerer {
	l := &Lowerer{
		syms:        syms,
		fields:      fields,
		elaborator:  elaborator,
		canOverload: canOverload,
		successors:  make(map[*ast.FunctionDecl][]Successor),
		decodeFuncs: make(map[*ast.DecodeDecl]*ast.FunctionDecl),
	}
	l.ctxSym = syms.Put(common.ContextParamName)
	l.catalog = builtin.NewCatalog(syms.Put)
	l.reprPath = "<module>"
	return l
}

// SetSource attaches the identity of the file being lowered, used only for
// diagnostics: absPath is opened by the reporter to print a source excerpt
// against a fatal error, reprPath is the name shown alongside the message.
func (l *Lowerer) SetSource(absPath, reprPath string) {
	l.absPath = absPath
	l.reprPath = reprPath
}

// Successors returns the recorded Decode/Goto targets for a lowered
// decoder function.
func (l *Lowerer) Successors(fn *ast.FunctionDecl) []Successor {
	return l.successors[fn]
}

// Lower lowers mod, per §4.5: push a module scope, declare every builtin and
// every top-level declaration, then lower each declaration in source order.
// mod's own declaration list is not modified; the result is a new module
// holding the lowered declarations, or mod itself if none of them changed.
//
// Every Raise anywhere in the pass unwinds as a panic; CatchErrors, deferred
// here, is the pass's sole error boundary -- it recovers that panic, reports
// it through the shared reporter, and turns it into the returned error. A
// caller that wants the compilation to actually stop on error checks err;
// out is nil whenever err is non-nil.
func (l *Lowerer) Lower(mod *ast.ModuleDecl) (out *ast.ModuleDecl, err error) {
	defer report.CatchErrors(l.absPath, l.reprPath, &err)

	release := l.pushScope(mod)
	defer release()

	for _, fn := range l.catalog.All() {
		l.declare(fn)
	}

	for _, d := range mod.Decls {
		l.declare(d)
	}

	for _, d := range mod.Decls {
		if dd, ok := d.(*ast.DecodeDecl); ok {
			l.decodeFuncs[dd] = ast.NewFunctionDecl(dd.Span(), dd.Sym(), decoderType, 0, nil, nil)
		}
	}

	decls := make([]ast.Decl, len(mod.Decls))
	changed := false
	for i, d := range mod.Decls {
		lowered := l.lowerGlobalDecl(d)
		decls[i] = lowered
		if lowered != d {
			changed = true
		}
	}

	if !changed {
		return mod, nil
	}
	return &ast.ModuleDecl{DeclBase: mod.DeclBase, Decls: decls}, nil
}

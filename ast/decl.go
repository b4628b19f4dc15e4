package ast

import (
	"flowpathc/common"
	"flowpathc/report"
	"flowpathc/typing"
)

// VariableDecl is a variable declaration: `var name: T = init`.
type VariableDecl struct {
	DeclBase

	Init Expr
}

// FunctionDecl is a function declaration: a parameter list plus a body
// statement.  Foreign function decls (the builtin catalog's entries) carry
// a nil Body.
type FunctionDecl struct {
	DeclBase

	Params []*ParameterDecl
	Body   Stmt
}

// ParameterDecl is a single function parameter.
type ParameterDecl struct {
	DeclBase
}

// RecordDecl is a user record type declaration.
type RecordDecl struct {
	DeclBase

	Fields []*FieldDecl
}

// FieldDecl is a single field of a RecordDecl or LayoutDecl.
type FieldDecl struct {
	DeclBase

	// Offset and Length are the field's position within its owning layout,
	// in the unit the runtime ABI expects (bytes).  Unused for record
	// (non-layout) fields.
	Offset int
	Length int
}

// ModuleDecl is the top-level declaration list of a translation unit.
type ModuleDecl struct {
	DeclBase

	Decls []Decl
}

// LayoutDecl is a packet-header schema: a record of fields that is never
// instantiable as a value.
type LayoutDecl struct {
	DeclBase

	Fields []*FieldDecl
}

// FieldByPath resolves a field path (e.g. "src") against the layout's flat
// field list: a field matches only if its name equals the whole path, so a
// dotted path is not split into nested components.
func (ld *LayoutDecl) FieldByPath(path string) (*FieldDecl, bool) {
	for _, f := range ld.Fields {
		if f.Sym() != nil && f.Sym().Name == path {
			return f, true
		}
	}
	return nil, false
}

// DecodeDecl is a decoder: a header type, a body statement, and a flag
// marking it as the pipeline's entry point.
type DecodeDecl struct {
	DeclBase

	Header  *LayoutDecl
	Body    Stmt
	IsStart bool
}

// TableKind enumerates the ways a Table's key set is matched.
type TableKind int

const (
	ExactTable TableKind = iota
	WildcardTable
	PrefixTable
	StringTable
)

func (k TableKind) String() string {
	switch k {
	case ExactTable:
		return "exact"
	case WildcardTable:
		return "wildcard"
	case PrefixTable:
		return "prefix"
	case StringTable:
		return "string"
	default:
		return "unknown"
	}
}

// TableDecl is a flow table: a numbered, keyed dispatch structure populated
// with Flow entries.
type TableDecl struct {
	DeclBase

	Number     int
	Conditions []Expr
	Body       []*FlowDecl
	Kind       TableKind
	IsStart    bool
}

// FlowDecl is a single entry installed into a Table: a priority, a key
// expression list, and the instruction statement run on a match.
type FlowDecl struct {
	DeclBase

	Priority     int
	Keys         []Expr
	Instructions Stmt
}

// ExtractsDecl declares that a field is extracted from the header currently
// being decoded.  Field is a Field-name expression.
type ExtractsDecl struct {
	DeclBase

	Field Expr
}

// RebindDecl declares that a field is extracted and additionally bound
// under a second, aliased name.
type RebindDecl struct {
	DeclBase

	Field1 Expr
	Field2 Expr
}

// PortDecl is a named dataplane port.
type PortDecl struct {
	DeclBase
}

// -----------------------------------------------------------------------------

func newDeclBase(span *report.TextSpan, name *common.Symbol, typ typing.Type, specs Specifier) DeclBase {
	return NewDeclBase(span, name, typ, specs)
}

// NewVariableDecl constructs a VariableDecl.
func NewVariableDecl(span *report.TextSpan, name *common.Symbol, typ typing.Type, init Expr) *VariableDecl {
	return &VariableDecl{DeclBase: newDeclBase(span, name, typ, 0), Init: init}
}

// NewFunctionDecl constructs a FunctionDecl.
func NewFunctionDecl(span *report.TextSpan, name *common.Symbol, typ typing.Type, specs Specifier, params []*ParameterDecl, body Stmt) *FunctionDecl {
	return &FunctionDecl{DeclBase: newDeclBase(span, name, typ, specs), Params: params, Body: body}
}

// NewParameterDecl constructs a ParameterDecl.
func NewParameterDecl(span *report.TextSpan, name *common.Symbol, typ typing.Type) *ParameterDecl {
	return &ParameterDecl{DeclBase: newDeclBase(span, name, typ, 0)}
}

// NewPortDecl constructs a PortDecl.
func NewPortDecl(span *report.TextSpan, name *common.Symbol) *PortDecl {
	return &PortDecl{DeclBase: newDeclBase(span, name, typing.PortType, 0)}
}

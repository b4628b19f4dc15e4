// Package typing implements the type sort T described by the lowering
// spec: scalars, reference types, function types, user records, and the
// opaque runtime types (Context, Port, Table) the south-bound ABI trades in.
//
// Equality is structural for scalars and structural types built from them
// (reference, function) and identity-based for records: two record types
// are equal only if they are literally the same *RecordType value, mirroring
// the source language's nominal record semantics.
package typing

import "strings"

// Type is the parent interface for all data types.
type Type interface {
	// Repr returns a representative string, used in diagnostics and in the
	// textual dumps the test suite compares against.
	Repr() string

	// Equals reports whether two types are the same type.
	Equals(Type) bool
}

// -----------------------------------------------------------------------------

// PrimType enumerates the scalar types.
type PrimType int

const (
	Int PrimType = iota
	Bool
	Void
)

func (pt PrimType) Repr() string {
	switch pt {
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "void"
	}
}

func (pt PrimType) Equals(other Type) bool {
	opt, ok := other.(PrimType)
	return ok && pt == opt
}

// -----------------------------------------------------------------------------

// RefType is a reference-to-T type: `&T`.
type RefType struct {
	Elem Type
}

func (rt *RefType) Repr() string {
	return "&" + rt.Elem.Repr()
}

func (rt *RefType) Equals(other Type) bool {
	ort, ok := other.(*RefType)
	return ok && rt.Elem.Equals(ort.Elem)
}

// -----------------------------------------------------------------------------

// FuncType is a function type `(T*) -> T`.
type FuncType struct {
	Params []Type
	Return Type
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')
	for i, p := range ft.Params {
		sb.WriteString(p.Repr())
		if i < len(ft.Params)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString(") -> ")
	sb.WriteString(ft.Return.Repr())
	return sb.String()
}

func (ft *FuncType) Equals(other Type) bool {
	oft, ok := other.(*FuncType)
	if !ok || len(ft.Params) != len(oft.Params) {
		return false
	}

	for i, p := range ft.Params {
		if !p.Equals(oft.Params[i]) {
			return false
		}
	}

	return ft.Return.Equals(oft.Return)
}

// -----------------------------------------------------------------------------

// RecordField is a single named, typed field of a RecordType.
type RecordField struct {
	Name string
	Type Type
}

// RecordType is a user record type.  Records are compared by identity: two
// RecordType values are equal only if they are the same declaration.
type RecordType struct {
	Name   string
	Fields []RecordField
}

func (rt *RecordType) Repr() string {
	return rt.Name
}

func (rt *RecordType) Equals(other Type) bool {
	ort, ok := other.(*RecordType)
	return ok && rt == ort
}

// FieldByName returns the record field named name, or false if there is none.
func (rt *RecordType) FieldByName(name string) (RecordField, bool) {
	for _, f := range rt.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}

// -----------------------------------------------------------------------------

// LayoutType is a packet-header layout: a record of fields that is not
// instantiable as a value (spec.md #3's `Layout`).  It is structurally a
// record for field-lookup purposes but is never the type of an expression.
type LayoutType struct {
	Name   string
	Fields []RecordField
}

func (lt *LayoutType) Repr() string {
	return lt.Name
}

func (lt *LayoutType) Equals(other Type) bool {
	olt, ok := other.(*LayoutType)
	return ok && lt == olt
}

// FieldByName returns the layout field named name, or false if there is none.
func (lt *LayoutType) FieldByName(name string) (RecordField, bool) {
	for _, f := range lt.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}

// -----------------------------------------------------------------------------

// opaqueType is a nominal, fieldless runtime type: Context, Port, and Table
// are the three instances the ABI defines.
type opaqueType struct {
	name string
}

func (ot *opaqueType) Repr() string {
	return ot.name
}

func (ot *opaqueType) Equals(other Type) bool {
	oot, ok := other.(*opaqueType)
	return ok && ot == oot
}

// ContextType is the opaque runtime structure carrying the packet cursor and
// bound-field environment.  There is exactly one instance.
var ContextType Type = &opaqueType{name: "Context"}

// PortType is the opaque runtime port handle returned by fp_get_port.
var PortType Type = &opaqueType{name: "Port"}

// TableType is the opaque runtime flow-table handle returned by
// fp_get_table.
var TableType Type = &opaqueType{name: "Table"}

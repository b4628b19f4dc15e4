package report

import "fmt"

// LocalCompileError is the panic payload used to unwind out of a lowering
// stage.  It carries the offending source span so the reporter can print a
// caret-underlined excerpt.
type LocalCompileError struct {
	Kind    string
	Message string
	Span    *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise panics with a LocalCompileError.  It is the standard way for the
// lowering core to abort: every error is fatal for the translation unit, so
// there is no local recovery -- the first Raise wins.
func Raise(kind string, span *TextSpan, format string, args ...interface{}) {
	panic(&LocalCompileError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	})
}

// The five error kinds the lowering core can raise (spec.md #7).
const (
	KindRedefinition     = "Redefinition"
	KindBadOverload      = "BadOverload"
	KindUnknownBuiltin   = "UnknownBuiltin"
	KindUnextractedField = "UnextractedField"
	KindMissingContext   = "MissingContext"
)

// Redefinition raises a Redefinition error: the same name and same type
// declared twice in one scope.
func Redefinition(span *TextSpan, name string) {
	Raise(KindRedefinition, span, "redefinition of `%s`", name)
}

// BadOverload raises a BadOverload error: the same name with a different
// type that the overload predicate refuses to admit.
func BadOverload(span *TextSpan, name string) {
	Raise(KindBadOverload, span, "cannot overload `%s`", name)
}

// UnknownBuiltin raises an UnknownBuiltin error: a lowering path requested an
// ABI name the builtin catalog does not know.
func UnknownBuiltin(name string) {
	Raise(KindUnknownBuiltin, nil, "unknown builtin `%s`", name)
}

// UnextractedField raises an UnextractedField error: a Field_name expression
// refers to a field with no preceding extraction.
func UnextractedField(span *TextSpan, path string) {
	Raise(KindUnextractedField, span, "field `%s` was never extracted", path)
}

// MissingContext raises a MissingContext error: an extraction was found
// outside of any decoder scope, so there is no `__context` to bind against.
func MissingContext(span *TextSpan) {
	Raise(KindMissingContext, span, "extraction outside of a decoder scope")
}

// -----------------------------------------------------------------------------

// CatchErrors recovers a panic raised by Raise (or an unexpected Go panic)
// and turns it into a reported diagnostic plus a returned error.  It must
// always be deferred, and the caller's named error return must be assigned
// from *errOut.
func CatchErrors(absPath, reprPath string, errOut *error) {
	if x := recover(); x != nil {
		if lce, ok := x.(*LocalCompileError); ok {
			ReportCompileError(absPath, reprPath, lce.Span, lce.Message)
			*errOut = lce
			return
		}

		if err, ok := x.(error); ok {
			ReportStdError(reprPath, err)
			*errOut = err
			return
		}

		ReportFatal("%v", x)
	}
}

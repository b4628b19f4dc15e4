package report

// TextSpan is a range of source text. Spans are inclusive on both ends: the
// start position is the first character in the span and the end position is
// the last. Line and column numbers are zero-indexed.
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// SpanOver returns the span that runs from the start of a to the end of b.
func SpanOver(a, b *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: a.StartLine,
		StartCol:  a.StartCol,
		EndLine:   b.EndLine,
		EndCol:    b.EndCol,
	}
}

package message

// Span is a half-open byte range [Start, End) into a Message's raw line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

func (s Span) of(raw string) string { return raw[s.Start:s.End] }

type prefixSpan struct {
	raw  Span // without the leading ':'
	name Span
	user Span
	host Span

	hasUser bool
	hasHost bool
}

type tagSpan struct {
	key      Span
	value    Span
	hasValue bool
}

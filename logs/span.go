package logs

// Span names a unit of work, such as one line of an interactive session.
type Span string

type spanKey struct{}

var SpanKey spanKey

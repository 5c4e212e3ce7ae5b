package filter

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	// Match reports whether the row described by env passes the filter
	Match(env map[string]any) bool

	// Expression returns the source filter expression
	Expression() string
}

// EnvFunc describes a row as a filter environment
type EnvFunc[T any] func(T) map[string]any

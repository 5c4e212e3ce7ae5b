package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size <= 0 {
			return
		}
		if cache, err := lru.New[string, CompiledFilter](size); err == nil {
			c.cache = cache
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler compiles expr expressions into filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lru.Cache[string, CompiledFilter]
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // row fields are only known at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Add(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Match evaluates the filter; rows that fail to evaluate do not match
func (f *exprFilter) Match(env map[string]any) bool {
	runtimeEnv := make(map[string]any, len(env)+len(f.helpers))
	maps.Copy(runtimeEnv, f.helpers)
	maps.Copy(runtimeEnv, env)

	result, err := expr.Run(f.program, runtimeEnv)
	if err != nil {
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}

// Expression returns the source expression
func (f *exprFilter) Expression() string {
	return f.expression
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// contains, startsWith and endsWith are infix operators in expr, so the
	// case-insensitive variants need their own names
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["hasTag"] = func(string) bool { return false }
}

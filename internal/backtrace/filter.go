package backtrace

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Frame filters are expr programs evaluated once per parsed frame with the
// variables module, function and address in scope. A program returning
// false drops the frame from the report; unparsed lines are never filtered
// because they have no fields to match on.

func filterEnv(f Frame) map[string]interface{} {
	return map[string]interface{}{
		"module":   f.Module,
		"function": f.Function,
		"address":  f.Address,
	}
}

// compileFilter type-checks the filter source against the frame variables
// and requires a boolean result.
func compileFilter(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(filterEnv(Frame{})), expr.AsBool())
}

// matchFrame evaluates the filter for one frame. Evaluation failure keeps
// the frame: a bad filter must never hide stack data.
func (r *Reporter) matchFrame(f Frame) bool {
	if r.filter == nil {
		return true
	}
	out, err := expr.Run(r.filter, filterEnv(f))
	if err != nil {
		return true
	}
	keep, ok := out.(bool)
	return !ok || keep
}

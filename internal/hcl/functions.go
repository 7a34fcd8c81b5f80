package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/postfmt/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the scope a template is rendered in for one variant.
func newEvalContext(name string, mc config.MacroCase) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"variant": cty.StringVal(name),
		},
		Functions: map[string]function.Function{
			"macro": macroFunc(mc),
			"upper": stdlib.UpperFunc,
			"lower": stdlib.LowerFunc,
		},
	}
}

// macroFunc returns the `macro(name)` function, which spells a
// vector-operation macro name in the variant's case.
func macroFunc(mc config.MacroCase) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(mc.Apply(args[0].AsString())), nil
		},
	})
}

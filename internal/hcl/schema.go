package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a boilerplate document may contain.
type fileRoot struct {
	Templates []*templateBlock `hcl:"template,block"`
	Variants  []*variantBlock  `hcl:"variant,block"`
}

// templateBlock holds the text shared by all variants. Both attributes are
// kept as expressions and rendered once per variant.
type templateBlock struct {
	Header hcl.Expression `hcl:"header"`
	Footer hcl.Expression `hcl:"footer"`
}

// variantBlock represents a `variant "<name>"` block.
type variantBlock struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	MacroCase   string `hcl:"macro_case"`
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Boilerplate documents are merged across files before rendering, so a
// template may live in one file and its variants in another.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/postfmt/internal/config"
	"github.com/vk/postfmt/internal/ctxlog"
	"github.com/vk/postfmt/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL boilerplate loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load discovers every .hcl file under paths, parses them, and renders all
// declared variants into a single model. Exactly one template block must
// exist across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find boilerplate files in %s: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl boilerplate files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	roots := make([]*fileRoot, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		root, err := decodeRoot(hclFile, file)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}

	return l.build(ctx, roots)
}

// LoadSource parses and renders a single in-memory document.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("HCL loader parsing in-memory source.", "filename", filename, "bytes", len(src))

	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	root, err := decodeRoot(hclFile, filename)
	if err != nil {
		return nil, err
	}
	return l.build(ctx, []*fileRoot{root})
}

func decodeRoot(file *hcl.File, filename string) (*fileRoot, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return &root, nil
}

// build merges decoded files and renders the shared template once per variant.
func (l *Loader) build(ctx context.Context, roots []*fileRoot) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var tmpl *templateBlock
	var variants []*variantBlock
	for _, root := range roots {
		for _, t := range root.Templates {
			if tmpl != nil {
				return nil, fmt.Errorf("duplicate \"template\" block at %s: only one template block is allowed", t.Header.Range())
			}
			tmpl = t
		}
		variants = append(variants, root.Variants...)
	}
	if tmpl == nil {
		return nil, fmt.Errorf("missing \"template\" block: exactly one is required")
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("no \"variant\" blocks declared: at least one is required")
	}

	model := &config.Model{Variants: make(map[string]*config.Variant, len(variants))}
	for _, vb := range variants {
		if _, exists := model.Variants[vb.Name]; exists {
			return nil, fmt.Errorf("duplicate variant %q: variant names must be unique", vb.Name)
		}
		v, err := renderVariant(tmpl, vb)
		if err != nil {
			return nil, err
		}
		model.Variants[v.Name] = v
		logger.Debug("Rendered boilerplate variant.", "variant", v.Name, "macro_case", v.MacroCase, "header_bytes", len(v.Header))
	}

	return model, nil
}

func renderVariant(tmpl *templateBlock, vb *variantBlock) (*config.Variant, error) {
	mc, err := config.ParseMacroCase(vb.MacroCase)
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", vb.Name, err)
	}

	evalCtx := newEvalContext(vb.Name, mc)
	header, err := renderString(tmpl.Header, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("variant %q: header: %w", vb.Name, err)
	}
	footer, err := renderString(tmpl.Footer, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("variant %q: footer: %w", vb.Name, err)
	}

	return &config.Variant{
		Name:        vb.Name,
		Description: vb.Description,
		MacroCase:   mc,
		Header:      header,
		Footer:      footer,
	}, nil
}

// renderString evaluates expr and requires a known, non-null string result.
func renderString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", fmt.Errorf("%s: value must be a known, non-null string", expr.Range())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return str.AsString(), nil
}

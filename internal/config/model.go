package config

import (
	"fmt"
	"sort"
	"strings"
)

// MacroCase selects how vector-operation macro names are spelled in a
// variant's boilerplate.
type MacroCase string

const (
	// MacroCaseUpper spells macros in upper-snake case, e.g. v2_MAP.
	MacroCaseUpper MacroCase = "upper"
	// MacroCaseLower spells macros in lower-snake case, e.g. v2_map.
	MacroCaseLower MacroCase = "lower"
)

// ParseMacroCase validates a macro case name.
func ParseMacroCase(s string) (MacroCase, error) {
	switch c := MacroCase(strings.ToLower(s)); c {
	case MacroCaseUpper, MacroCaseLower:
		return c, nil
	default:
		return "", fmt.Errorf("invalid macro case %q: must be %q or %q", s, MacroCaseUpper, MacroCaseLower)
	}
}

// Apply renders name in this case.
func (c MacroCase) Apply(name string) string {
	if c == MacroCaseLower {
		return strings.ToLower(name)
	}
	return strings.ToUpper(name)
}

// Model is the unified, format-agnostic representation of every boilerplate
// variant known to an application instance. A Model is never mutated after
// its Loader returns it.
type Model struct {
	Variants map[string]*Variant
}

// Variant is one fully rendered naming-convention variant of the boilerplate.
type Variant struct {
	Name        string
	Description string
	MacroCase   MacroCase

	// Header is written before the filtered body, Footer after it.
	Header string
	Footer string
}

// Names returns the variant names in sorted order.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Variants))
	for name := range m.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant returns the variant registered under name.
func (m *Model) Variant(name string) (*Variant, error) {
	if v, ok := m.Variants[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("unknown naming variant %q (available: %s)", name, strings.Join(m.Names(), ", "))
}

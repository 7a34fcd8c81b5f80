package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMacroCase(t *testing.T) {
	t.Parallel()

	c, err := ParseMacroCase("UPPER")
	require.NoError(t, err)
	require.Equal(t, MacroCaseUpper, c)

	c, err = ParseMacroCase("lower")
	require.NoError(t, err)
	require.Equal(t, MacroCaseLower, c)

	_, err = ParseMacroCase("camel")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid macro case "camel"`)
}

func TestMacroCase_Apply(t *testing.T) {
	t.Parallel()

	require.Equal(t, "MAP", MacroCaseUpper.Apply("map"))
	require.Equal(t, "expand", MacroCaseLower.Apply("EXPAND"))
}

func TestModel_Variant(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := &Model{Variants: map[string]*Variant{
		"upper": {Name: "upper"},
		"lower": {Name: "lower"},
	}}

	// --- Act ---
	v, err := m.Variant("lower")
	_, missingErr := m.Variant("camel")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "lower", v.Name)
	require.Error(t, missingErr)
	require.Contains(t, missingErr.Error(), "available: lower, upper")
}

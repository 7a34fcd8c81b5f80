package postfmt

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/postfmt/internal/boilerplate"
	"github.com/vk/postfmt/internal/config"
)

var testVariant = &config.Variant{
	Name:   "test",
	Header: "#ifndef T_H\n#define T_H\n",
	Footer: "#endif\n",
}

func defaultVariant(t *testing.T, name string) *config.Variant {
	t.Helper()
	m, err := boilerplate.Default(context.Background())
	require.NoError(t, err)
	v, err := m.Variant(name)
	require.NoError(t, err)
	return v
}

func TestWrap(t *testing.T) {
	t.Parallel()

	got := Wrap([]byte("  int x;\n"), testVariant)
	require.Equal(t, "#ifndef T_H\n#define T_H\n  int x;\n#endif\n", string(got))
}

func TestTransform_EmptyInputIsHeaderPlusFooter(t *testing.T) {
	t.Parallel()

	v := defaultVariant(t, boilerplate.DefaultVariant)

	got, err := Transform(nil, v)

	require.NoError(t, err)
	require.Equal(t, v.Header+v.Footer, string(got))
}

func TestTransform_FunctionScenario(t *testing.T) {
	t.Parallel()

	v := defaultVariant(t, boilerplate.DefaultVariant)

	got, err := Transform([]byte("int add(){\n  return 1;\n}\n"), v)

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(got), "#ifndef GGLM_H\n"))
	require.True(t, strings.HasSuffix(string(got), "#endif\n"))
	require.Equal(t, v.Header+"int add(){\n  return 1;\n}\n\n"+v.Footer, string(got))
}

func TestTransform_VariantsOnlyDifferInHeader(t *testing.T) {
	t.Parallel()

	src := []byte("#define N 2\nconst int X = 1;\n")
	upper, err := Transform(src, defaultVariant(t, "upper"))
	require.NoError(t, err)
	lower, err := Transform(src, defaultVariant(t, "lower"))
	require.NoError(t, err)

	require.Contains(t, string(upper), "#define v2_MAP(v, func)")
	require.Contains(t, string(lower), "#define v2_map(v, func)")
	require.True(t, bytes.HasSuffix(upper, []byte("const int X = 1;\n\n#endif\n")))
	require.True(t, bytes.HasSuffix(lower, []byte("const int X = 1;\n\n#endif\n")))
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gglm.h")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRewrite_OverwritesInPlace(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeInput(t, "#pragma generator-marker\nint add(){\n  return 1;\n}\n")

	// --- Act ---
	err := Rewrite(context.Background(), path, testVariant)

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "#ifndef T_H\n#define T_H\nint add(){\n  return 1;\n}\n\n#endif\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "existing permissions should be kept")
}

func TestRewrite_IsDeterministic(t *testing.T) {
	t.Parallel()

	input := "#x\nconst int A = 1;\nvoid f() {\n}\n"
	a := writeInput(t, input)
	b := writeInput(t, input)
	v := defaultVariant(t, boilerplate.DefaultVariant)

	require.NoError(t, Rewrite(context.Background(), a, v))
	require.NoError(t, Rewrite(context.Background(), b, v))

	gotA, err := os.ReadFile(a)
	require.NoError(t, err)
	gotB, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, gotA, gotB)
}

func TestRewrite_SecondRunWrapsAgain(t *testing.T) {
	t.Parallel()

	// Reprocessing is not idempotent: the first header's directive lines are
	// stripped, its comment and blank lines kept, and a second header and
	// footer are added around them.
	v := defaultVariant(t, boilerplate.DefaultVariant)
	path := writeInput(t, "int x;\n")
	require.NoError(t, Rewrite(context.Background(), path, v))
	once, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Rewrite(context.Background(), path, v))
	twice, err := os.ReadFile(path)
	require.NoError(t, err)

	refiltered, err := FilterLines(bytes.NewReader(once))
	require.NoError(t, err)
	require.NotEqual(t, once, twice)
	require.Equal(t, v.Header+string(refiltered)+v.Footer, string(twice))
	require.Equal(t, 2, strings.Count(string(twice), "// --- macro-expansion generation below this point ---"))
	require.Equal(t, strings.Count(string(once), "#endif\n"), strings.Count(string(twice), "#endif\n"),
		"directives from the first wrap, footer included, are stripped")
}

func TestRewrite_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.h")

	err := Rewrite(context.Background(), path, testVariant)

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "failed to read")
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist, "nothing should be created on read failure")
}

func TestRewrite_WriteFailure(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	path := writeInput(t, "int x;\n")
	require.NoError(t, os.Chmod(path, 0o400))

	err := Rewrite(context.Background(), path, testVariant)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write")
	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "int x;\n", string(got))
}

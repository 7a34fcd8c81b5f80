package postfmt

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/vk/postfmt/internal/config"
	"github.com/vk/postfmt/internal/ctxlog"
)

// Wrap places body between the variant's header and footer. Nothing is
// re-indented and an already wrapped body is wrapped again.
func Wrap(body []byte, v *config.Variant) []byte {
	out := make([]byte, 0, len(v.Header)+len(body)+len(v.Footer))
	out = append(out, v.Header...)
	out = append(out, body...)
	out = append(out, v.Footer...)
	return out
}

// Transform filters src and wraps the result, entirely in memory.
func Transform(src []byte, v *config.Variant) ([]byte, error) {
	out, _, err := transform(src, v)
	return out, err
}

func transform(src []byte, v *config.Variant) ([]byte, Stats, error) {
	body, stats, err := FilterLinesStats(bytes.NewReader(src))
	if err != nil {
		return nil, stats, err
	}
	return Wrap(body, v), stats, nil
}

// Rewrite transforms the file at path in place. The file is read once, the
// output is assembled in memory, and only then is the same path truncated
// and written. There is no backup and no rename.
func Rewrite(ctx context.Context, path string, v *config.Variant) error {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Debug("Input read.", "bytes", len(src))

	out, stats, err := transform(src, v)
	if err != nil {
		return fmt.Errorf("failed to transform %s: %w", path, err)
	}
	logger.Debug("Input filtered.",
		"lines_in", stats.LinesIn,
		"lines_dropped", stats.LinesDropped,
		"blank_lines_inserted", stats.BlankLinesInserted,
	)

	// The existing file's permissions are kept; perm only applies on create.
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Output written.", "bytes", len(out))
	return nil
}

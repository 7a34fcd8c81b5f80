// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package postfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	directiveMarker = '#'
	closingBrace    = '}'
)

var constKeyword = []byte("const")

// Stats counts what a filter pass did.
type Stats struct {
	LinesIn            int
	LinesDropped       int
	BlankLinesInserted int
}

// FilterLines applies the line rules to r and returns the filtered body.
func FilterLines(r io.Reader) ([]byte, error) {
	body, _, err := FilterLinesStats(r)
	return body, err
}

// FilterLinesStats is FilterLines that also reports counts.
//
// Lines are split after every '\n'. A final line without a newline is kept
// without one. Kept lines are copied byte for byte.
func FilterLinesStats(r io.Reader) ([]byte, Stats, error) {
	var (
		out   bytes.Buffer
		stats Stats
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			stats.LinesIn++
			if isDirective(line) {
				stats.LinesDropped++
			} else {
				out.Write(line)
				if needsSpacing(line) {
					out.WriteByte('\n')
					stats.BlankLinesInserted++
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read line %d: %w", stats.LinesIn+1, err)
		}
	}
	return out.Bytes(), stats, nil
}

func isDirective(line []byte) bool {
	return line[0] == directiveMarker
}

// needsSpacing reports whether a blank line follows line. It also fires for
// braces closing non-function blocks and for identifiers like constant_x.
func needsSpacing(line []byte) bool {
	return line[0] == closingBrace || bytes.HasPrefix(line, constKeyword)
}

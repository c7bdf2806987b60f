package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// Parse reads a puzzle file.
//
// Format:
//
//	# comment
//	name: planets
//	title: The Solar System
//
//	[grid]
//	RNVVARWMWC
//	...
//
//	[words]
//	MERCURY
//	...
//
// Blank lines and # comments are skipped everywhere. fallback names the
// puzzle when the file has no name header.
func Parse(r io.Reader, fallback string) (*puzzle.Puzzle, error) {
	var (
		name, title = fallback, ""
		section     string
		rows, words []string
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			section = strings.ToLower(strings.Trim(s, "[]"))
			if section != "grid" && section != "words" {
				return nil, fmt.Errorf("line %d: unknown section %q", line, s)
			}
			continue
		}
		switch section {
		case "grid":
			rows = append(rows, s)
		case "words":
			words = append(words, s)
		default:
			k, v, ok := strings.Cut(s, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: expected key: value, got %q", line, s)
			}
			switch strings.ToLower(strings.TrimSpace(k)) {
			case "name":
				name = strings.TrimSpace(v)
			case "title":
				title = strings.TrimSpace(v)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("puzzle has no name")
	}
	p, err := puzzle.New(name, title, rows, words)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", name, err)
	}
	if len(p.Words) == 0 {
		return nil, fmt.Errorf("puzzle %s: word list is empty", name)
	}
	return p, nil
}

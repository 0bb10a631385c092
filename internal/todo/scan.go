// Package todo checks that every TODO and FIXME comment points at an open
// issue in the repository's tracker, written as "TODO #123".
package todo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	mentionRe   = regexp.MustCompile(`TODO|FIXME`)
	annotatedRe = regexp.MustCompile(`(TODO|FIXME) #(\d+)`)
)

// binarySniffLen is how much of a file is inspected for NUL bytes.
const binarySniffLen = 8000

// Annotation is one line mentioning TODO or FIXME. Issue is 0 when the line
// carries no "#N" reference.
type Annotation struct {
	Line  int
	Text  string
	Issue int
}

// Scan returns every line of r that mentions TODO or FIXME.
func Scan(r io.Reader) ([]Annotation, error) {
	br := bufio.NewReader(r)
	var out []Annotation
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" && mentionRe.MatchString(line) {
			text := strings.TrimRight(line, "\r\n")
			a := Annotation{Line: n, Text: text}
			if m := annotatedRe.FindStringSubmatch(text); m != nil {
				a.Issue, _ = strconv.Atoi(m[2])
			}
			out = append(out, a)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ScanFile scans the file at path. Binary files yield no annotations.
func ScanFile(path string) ([]Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, binarySniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if bytes.IndexByte(head[:n], 0) >= 0 {
		return nil, nil
	}
	return Scan(io.MultiReader(bytes.NewReader(head[:n]), f))
}

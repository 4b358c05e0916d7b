package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/opustag"
)

// readTagLines reads newline-delimited "FIELD=VALUE" entries from r, for
// --set-all ingestion. Empty lines are skipped silently; lines without a
// '=' are skipped through the warn callback. Neither is a failure: they
// are data-quality notices, not processing errors.
func readTagLines(r io.Reader, warn func(line string)) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var tags []string
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if !strings.Contains(line, "=") {
			warn(line)
			continue
		}
		tags = append(tags, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	return tags, nil
}

// printTags writes each comment as one newline-terminated line.
func printTags(w io.Writer, tags *opustag.Tags) error {
	bw := bufio.NewWriter(w)
	for _, c := range tags.Comments {
		fmt.Fprintln(bw, c)
	}
	return bw.Flush()
}

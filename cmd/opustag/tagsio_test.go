package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/simonhull/opustag"
)

func TestReadTagLines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []string
		wantWarns []string
	}{
		{
			name:  "well formed tags",
			input: "TITLE=Song\nARTIST=Someone\n",
			want:  []string{"TITLE=Song", "ARTIST=Someone"},
		},
		{
			name:  "empty lines skipped silently",
			input: "\nA=1\n\n\nB=2\n",
			want:  []string{"A=1", "B=2"},
		},
		{
			name:      "lines without separator are warned and skipped",
			input:     "novalue\nE=5\n",
			want:      []string{"E=5"},
			wantWarns: []string{"novalue"},
		},
		{
			name:  "value may contain separators",
			input: "URL=https://example.com/?a=b\n",
			want:  []string{"URL=https://example.com/?a=b"},
		},
		{
			name:  "no trailing newline",
			input: "A=1",
			want:  []string{"A=1"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var warns []string
			got, err := readTagLines(strings.NewReader(tc.input), func(line string) {
				warns = append(warns, line)
			})
			if err != nil {
				t.Fatalf("readTagLines() error = %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("tags = %q, want %q", got, tc.want)
			}
			if !slices.Equal(warns, tc.wantWarns) {
				t.Errorf("warnings = %q, want %q", warns, tc.wantWarns)
			}
		})
	}
}

func TestPrintTags(t *testing.T) {
	tags := &opustag.Tags{
		Vendor:   "not printed",
		Comments: []string{"TITLE=Song", "ARTIST=Someone"},
	}

	var buf bytes.Buffer
	if err := printTags(&buf, tags); err != nil {
		t.Fatalf("printTags() error = %v", err)
	}
	want := "TITLE=Song\nARTIST=Someone\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

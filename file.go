package opustag

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ListTags reads the comment header of the Ogg Opus file at path and
// returns its tags. The path "-" reads from standard input. Only the header
// pages are read; the rest of the file is left untouched.
//
// Example:
//
//	tags, err := opustag.ListTags("song.opus")
//	if err != nil {
//		return err
//	}
//	fmt.Println(tags.Vendor)
//	for _, c := range tags.Comments {
//		fmt.Println(c)
//	}
func ListTags(path string) (*Tags, error) {
	src, closeSrc, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	return Process(src, nil, nil)
}

// EditFile transcodes the Ogg Opus file at in, applies plan to its comment
// header, and writes the result to out.
//
// Either path may be "-" for standard input or output. in and out may name
// the same file: the input is fully read through its open handle while the
// output is staged elsewhere, and the destination is only replaced, by an
// atomic rename, after the whole stream transcoded successfully. On any
// failure the destination keeps its previous content and temporary files
// are cleaned up.
//
// Writing over an existing regular file requires WithOverwrite:
//
//	err := opustag.EditFile("in.opus", "out.opus", plan, opustag.WithOverwrite())
func EditFile(in, out string, plan *EditPlan, opts ...EditOption) error {
	o := defaultEditOptions()
	for _, opt := range opts {
		opt(o)
	}

	src, closeSrc, err := openInput(in)
	if err != nil {
		return err
	}
	defer closeSrc()

	dst, err := openDestination(out, o)
	if err != nil {
		return err
	}

	// Cleanup on any error path; the destination stays untouched.
	committed := false
	defer func() {
		if !committed {
			dst.Abort()
		}
	}()

	bw := bufio.NewWriter(dst.Writer())
	if _, err := Process(src, bw, plan); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err := dst.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// openInput opens path for reading, mapping "-" to standard input.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return bufio.NewReader(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return bufio.NewReader(f), func() { _ = f.Close() }, nil
}

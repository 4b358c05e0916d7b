package opustag

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/opustag/internal/types"
)

// destination is a scoped output resource implementing the commit protocol.
//
// Output for an existing regular file is staged into a temporary file in
// the same directory and renamed over the destination only on Commit, so
// the destination is never observable in a half-written state. Abort's
// cleanup is unconditional: callers arrange for it to run on every exit
// path that did not commit.
type destination struct {
	path   string
	file   *os.File
	w      io.Writer
	temp   string // staged temporary path, empty when writing directly
	remove bool   // direct-created file, removed on Abort
}

// openDestination prepares the output sink for path.
//
//   - "-" writes directly to standard output.
//   - A path that does not exist yet is created and written directly; it is
//     removed again if the run fails.
//   - An existing non-regular file (pipe, device) is written directly.
//   - An existing regular file requires the overwrite option and is staged
//     through a temporary file plus atomic rename.
//
// The temporary file is named by appending the in-place suffix when one is
// configured, otherwise it is a fresh anonymous temp file in the same
// directory.
func openDestination(path string, o *editOptions) (*destination, error) {
	if path == "-" {
		return &destination{w: os.Stdout}, nil
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		return &destination{path: path, file: f, w: f, remove: true}, nil

	case err != nil:
		return nil, fmt.Errorf("stat output: %w", err)

	case !info.Mode().IsRegular():
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		return &destination{path: path, file: f, w: f}, nil

	default:
		if !o.overwrite {
			return nil, &types.DestinationExistsError{Path: path}
		}
		var f *os.File
		var temp string
		if o.inPlaceSuffix != "" {
			temp = path + o.inPlaceSuffix
			f, err = os.OpenFile(temp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		} else {
			f, err = os.CreateTemp(filepath.Dir(path), ".opustag-*.tmp")
			if f != nil {
				temp = f.Name()
			}
		}
		if err != nil {
			return nil, fmt.Errorf("create temp file: %w", err)
		}
		return &destination{path: path, file: f, w: f, temp: temp}, nil
	}
}

// Writer returns the sink to write the transcoded stream to.
func (d *destination) Writer() io.Writer {
	return d.w
}

// Commit makes the written output the destination's final content: the file
// is synced to disk, closed, and a staged temporary file is renamed over
// the destination path.
func (d *destination) Commit() error {
	if d.file == nil {
		return nil
	}
	if err := d.file.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	d.file = nil
	if d.temp != "" {
		if err := os.Rename(d.temp, d.path); err != nil {
			return fmt.Errorf("rename temp to output: %w", err)
		}
	}
	return nil
}

// Abort discards everything written so far, leaving the destination path in
// its pre-run state: a staged temporary file is deleted, a freshly created
// direct file is removed, an existing destination keeps its old content.
func (d *destination) Abort() {
	if d.file != nil {
		_ = d.file.Close() //nolint:errcheck // Best effort cleanup
		d.file = nil
	}
	if d.temp != "" {
		_ = os.Remove(d.temp) //nolint:errcheck // Best effort cleanup
	} else if d.remove {
		_ = os.Remove(d.path) //nolint:errcheck // Best effort cleanup
	}
}

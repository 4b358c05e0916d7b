package opustag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestEditFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("track%d.opus", i))
		writeStream(t, path, fmt.Sprintf("TRACKNUMBER=%d", i))
		paths = append(paths, path)
	}

	plan := &EditPlan{Add: []string{"ALBUM=Record"}}
	if err := EditFiles(context.Background(), plan, paths, WithJobs(2)); err != nil {
		t.Fatalf("EditFiles() error = %v", err)
	}

	for i, path := range paths {
		tags, err := ListTags(path)
		if err != nil {
			t.Fatalf("ListTags(%s) error = %v", path, err)
		}
		want := []string{fmt.Sprintf("TRACKNUMBER=%d", i), "ALBUM=Record"}
		if !slices.Equal(tags.Comments, want) {
			t.Errorf("%s: Comments = %q, want %q", path, tags.Comments, want)
		}
	}
}

func TestEditFiles_NoPaths(t *testing.T) {
	if err := EditFiles(context.Background(), nil, nil); err != nil {
		t.Errorf("EditFiles() with no paths = %v, want nil", err)
	}
}

func TestEditFiles_ErrorNamesTheFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.opus")
	bad := filepath.Join(dir, "bad.opus")
	writeStream(t, good, "A=1")
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := EditFiles(context.Background(), nil, []string{bad}, WithJobs(1))
	if err == nil {
		t.Fatal("EditFiles() succeeded on a corrupt file")
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the failing path %q", err, bad)
	}
}

func TestEditFiles_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.opus")
	original := writeStream(t, path, "A=1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := EditFiles(ctx, &EditPlan{Add: []string{"B=2"}}, []string{path})
	if err != context.Canceled {
		t.Fatalf("EditFiles() error = %v, want context.Canceled", err)
	}
	got, readErr := os.ReadFile(path)
	if readErr != nil || !slices.Equal(got, original) {
		t.Error("cancelled run modified the file")
	}
}

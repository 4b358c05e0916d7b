package opustag

// EditOption configures behavior when writing edited files.
//
// Options use the functional options pattern:
//
//	err := opustag.EditFile("in.opus", "out.opus", plan,
//	    opustag.WithOverwrite(),
//	    opustag.WithInPlaceSuffix(".otmp"),
//	)
type EditOption func(*editOptions)

// editOptions holds configuration for editing files.
type editOptions struct {
	overwrite     bool   // Replace an existing regular file
	inPlaceSuffix string // Name staged temp files path+suffix instead of anonymously
	jobs          int    // Concurrency limit for EditFiles (0 = NumCPU)
}

// defaultEditOptions returns the default configuration.
func defaultEditOptions() *editOptions {
	return &editOptions{}
}

// WithOverwrite allows replacing an existing regular file.
//
// Without this option, EditFile refuses to write over an existing regular
// destination and returns a DestinationExistsError. The replacement is
// atomic either way: the new content is staged in a temporary file and
// renamed over the destination only after a fully successful run.
func WithOverwrite() EditOption {
	return func(o *editOptions) {
		o.overwrite = true
	}
}

// WithInPlaceSuffix names the staging file destination+suffix instead of
// using an anonymous temporary file.
//
// This mirrors classic in-place editing: while "song.opus" is being
// rewritten with suffix ".otmp", the staged output lives at
// "song.opus.otmp" until the final rename. The suffix must be non-empty.
func WithInPlaceSuffix(suffix string) EditOption {
	return func(o *editOptions) {
		o.inPlaceSuffix = suffix
	}
}

// WithJobs limits how many files EditFiles processes concurrently.
//
// Values below 1 select the number of CPUs.
func WithJobs(n int) EditOption {
	return func(o *editOptions) {
		o.jobs = n
	}
}

// Package opustag edits the metadata of Ogg Opus audio files without
// touching the audio itself.
//
// An Ogg Opus stream begins with two header packets: the identification
// header ("OpusHead") and the comment header ("OpusTags"), which carries a
// vendor string and an ordered list of free-form "FIELD=VALUE" tags.
// opustag re-writes the comment header and copies every other page of the
// container byte for byte.
//
// # Quick Start
//
// Listing the tags of a file:
//
//	tags, err := opustag.ListTags("song.opus")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range tags.Comments {
//		fmt.Println(c)
//	}
//
// Editing a file in place:
//
//	plan := &opustag.EditPlan{
//		Delete: []string{"ARTIST"},
//		Add:    []string{"ARTIST=New Artist"},
//	}
//	err := opustag.EditFile("song.opus", "song.opus", plan, opustag.WithOverwrite())
//
// # Guarantees
//
// Processing with an empty edit plan reproduces the input byte for byte.
// Output destinations are never left half-written: output is staged into a
// temporary file in the destination's directory and atomically renamed over
// it only after the whole stream has been transcoded. On any failure the
// temporary file is removed and the destination keeps its previous content.
//
// # Error Handling
//
// Corrupt input is always a fatal error, never silently repaired: a page
// with a bad checksum, a truncated packet, or a malformed header aborts the
// run before anything is committed. The concrete error types (see
// MalformedPageError, CRCMismatchError and friends) can be inspected with
// errors.As.
//
// # Command Line
//
// cmd/opustag provides the command-line interface, with flags mirroring the
// library's edit plan (--add, --delete, --set, --delete-all, --set-all) and
// in-place or to-a-new-file output modes.
package opustag

package types

import (
	"slices"
	"strings"
)

// Tags is the parsed form of an OpusTags comment header.
//
// Comments are free-form "FIELD=VALUE" strings kept in insertion order.
// Duplicate field names are legal and preserved. The vendor string is
// opaque: whatever was parsed is rendered back verbatim.
type Tags struct {
	// Vendor is the encoder identification string, preserved as-is.
	Vendor string

	// Comments is the ordered list of "FIELD=VALUE" entries.
	Comments []string
}

// FieldName returns the field-name part of a "FIELD=VALUE" comment,
// i.e. everything before the first '='. If the comment has no '=', the
// whole string is treated as the field name.
func FieldName(comment string) string {
	if i := strings.IndexByte(comment, '='); i >= 0 {
		return comment[:i]
	}
	return comment
}

// Delete removes every comment whose field name matches name.
//
// Matching is case-insensitive, but stored comments keep their original
// case. Deleting a name that is not present is a no-op.
func (t *Tags) Delete(name string) {
	t.Comments = slices.DeleteFunc(t.Comments, func(c string) bool {
		return strings.EqualFold(FieldName(c), name)
	})
}

// DeleteAll removes every comment, leaving the vendor string untouched.
func (t *Tags) DeleteAll() {
	t.Comments = nil
}

// Add appends a comment to the end of the list. Duplicates are allowed;
// nothing is deleted implicitly.
func (t *Tags) Add(comment string) {
	t.Comments = append(t.Comments, comment)
}

// Clone returns an independent copy.
func (t *Tags) Clone() *Tags {
	return &Tags{Vendor: t.Vendor, Comments: slices.Clone(t.Comments)}
}

package types

import "fmt"

// MalformedPageError is returned when page framing is invalid: a missing
// "OggS" capture pattern, an unsupported structure version, or a page that
// violates the container's structural limits.
type MalformedPageError struct {
	Offset int64
	Reason string
}

func (e *MalformedPageError) Error() string {
	return fmt.Sprintf("malformed Ogg page at offset %d: %s", e.Offset, e.Reason)
}

// CRCMismatchError is returned when a page's stored checksum does not match
// the checksum computed over its contents. This is a fatal stream-integrity
// error, never silently ignored.
type CRCMismatchError struct {
	Offset int64
	Want   uint32
	Got    uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("CRC mismatch on Ogg page at offset %d: stored %#08x, computed %#08x",
		e.Offset, e.Want, e.Got)
}

// TruncatedStreamError is returned when the input ends in the middle of a
// page or in the middle of a packet that spans pages.
type TruncatedStreamError struct {
	Offset int64
	What   string
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated Ogg stream at offset %d while reading %s", e.Offset, e.What)
}

// InvalidHeaderError is returned when the first packet of the stream is not
// a recognizable Opus identification header.
type InvalidHeaderError struct {
	Reason string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid Opus identification header: %s", e.Reason)
}

// InvalidTagsError is returned when the comment header packet does not carry
// the "OpusTags" signature.
type InvalidTagsError struct {
	Reason string
}

func (e *InvalidTagsError) Error() string {
	return fmt.Sprintf("invalid OpusTags header: %s", e.Reason)
}

// TruncatedTagsError is returned when a length prefix inside the comment
// header would read past the end of the packet.
type TruncatedTagsError struct {
	Offset int
	What   string
}

func (e *TruncatedTagsError) Error() string {
	return fmt.Sprintf("truncated OpusTags header: %s at packet offset %d", e.What, e.Offset)
}

// IncompleteStreamError is returned when the stream ends before both the
// identification header and the comment header have been seen.
type IncompleteStreamError struct {
	Packets int
}

func (e *IncompleteStreamError) Error() string {
	return fmt.Sprintf("incomplete Opus stream: got %d header packet(s), need 2", e.Packets)
}

// DestinationExistsError is returned when the output path names an existing
// regular file and overwriting was not requested.
type DestinationExistsError struct {
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("%s already exists (use overwrite to replace it)", e.Path)
}

// Package ogg implements Ogg container framing: page encoding and decoding,
// packet assembly across pages, and page-preserving stream rewriting.
package ogg

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/opustag/internal/types"
)

const (
	capturePattern = "OggS"
	headerSize     = 27

	// MaxSegments is the lacing-table capacity of one page.
	MaxSegments = 255

	// MaxSegmentSize is the largest lacing value. A segment of exactly 255
	// bytes means the packet continues in the next segment.
	MaxSegmentSize = 255

	// MaxPageSize is the largest possible encoded page: header, full lacing
	// table and 255 full segments.
	MaxPageSize = headerSize + MaxSegments + MaxSegments*MaxSegmentSize
)

// Page header flags.
const (
	FlagContinued byte = 0x01 // first segment continues a packet from the previous page
	FlagFirstPage byte = 0x02 // beginning of a logical stream
	FlagLastPage  byte = 0x04 // end of a logical stream
)

// NoGranule is the granule position of a page on which no packet completes.
const NoGranule int64 = -1

// Page is one physical framing unit of an Ogg stream.
//
// Segments holds the page payload split at lacing boundaries: each segment
// is at most 255 bytes, and a segment shorter than 255 bytes (including
// exactly 0) terminates a packet. The original lacing is preserved exactly,
// so Encode reproduces a decoded page byte for byte.
type Page struct {
	Flags    byte
	Granule  int64
	Serial   uint32
	Sequence uint32
	Segments [][]byte
}

// Continued reports whether the page's first segment continues a packet
// started on an earlier page.
func (p *Page) Continued() bool { return p.Flags&FlagContinued != 0 }

// First reports whether the page begins a logical stream.
func (p *Page) First() bool { return p.Flags&FlagFirstPage != 0 }

// Last reports whether the page ends a logical stream.
func (p *Page) Last() bool { return p.Flags&FlagLastPage != 0 }

// BodySize returns the total payload size in bytes.
func (p *Page) BodySize() int {
	n := 0
	for _, seg := range p.Segments {
		n += len(seg)
	}
	return n
}

// Encode serializes the page, computing and embedding its checksum.
//
// The segment lacing is written exactly as stored, so for any page within
// the container's limits, decoding the result yields an identical page.
func (p *Page) Encode() ([]byte, error) {
	if len(p.Segments) > MaxSegments {
		return nil, fmt.Errorf("page has %d segments, limit is %d", len(p.Segments), MaxSegments)
	}

	buf := make([]byte, 0, headerSize+len(p.Segments)+p.BodySize())
	buf = append(buf, capturePattern...)
	buf = append(buf, 0) // structure version
	buf = append(buf, p.Flags)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.Granule))
	buf = binary.LittleEndian.AppendUint32(buf, p.Serial)
	buf = binary.LittleEndian.AppendUint32(buf, p.Sequence)
	buf = binary.LittleEndian.AppendUint32(buf, 0) // checksum placeholder
	buf = append(buf, byte(len(p.Segments)))

	for _, seg := range p.Segments {
		if len(seg) > MaxSegmentSize {
			return nil, fmt.Errorf("page segment of %d bytes exceeds the %d-byte limit", len(seg), MaxSegmentSize)
		}
		buf = append(buf, byte(len(seg)))
	}
	for _, seg := range p.Segments {
		buf = append(buf, seg...)
	}

	binary.LittleEndian.PutUint32(buf[22:26], checksum(buf))
	return buf, nil
}

// decodePage parses a raw page captured at the given stream offset.
//
// raw must be the exact encoded page (header, lacing table, payload). The
// stored checksum is verified against the checksum computed with the
// checksum field zeroed; a mismatch is fatal.
func decodePage(raw []byte, offset int64) (*Page, error) {
	if len(raw) < headerSize {
		return nil, &types.MalformedPageError{Offset: offset, Reason: "page shorter than header"}
	}
	if string(raw[0:4]) != capturePattern {
		return nil, &types.MalformedPageError{Offset: offset, Reason: "missing OggS capture pattern"}
	}
	if raw[4] != 0 {
		return nil, &types.MalformedPageError{
			Offset: offset,
			Reason: fmt.Sprintf("unsupported stream structure version %d", raw[4]),
		}
	}

	stored := binary.LittleEndian.Uint32(raw[22:26])
	scratch := make([]byte, len(raw))
	copy(scratch, raw)
	binary.LittleEndian.PutUint32(scratch[22:26], 0)
	if got := checksum(scratch); got != stored {
		return nil, &types.CRCMismatchError{Offset: offset, Want: stored, Got: got}
	}

	nseg := int(raw[26])
	lacing := raw[headerSize : headerSize+nseg]
	body := raw[headerSize+nseg:]

	page := &Page{
		Flags:    raw[5],
		Granule:  int64(binary.LittleEndian.Uint64(raw[6:14])),
		Serial:   binary.LittleEndian.Uint32(raw[14:18]),
		Sequence: binary.LittleEndian.Uint32(raw[18:22]),
		Segments: make([][]byte, nseg),
	}
	pos := 0
	for i, l := range lacing {
		page.Segments[i] = body[pos : pos+int(l)]
		pos += int(l)
	}
	return page, nil
}

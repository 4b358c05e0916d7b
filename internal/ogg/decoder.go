package ogg

import (
	"io"

	"github.com/simonhull/opustag/internal/binary"
	"github.com/simonhull/opustag/internal/types"
)

// Decoder reads pages from a byte stream and assembles logical packets.
//
// The two-level API mirrors the container's structure: ReadPage pulls the
// next physical page in arrival order (regardless of which logical stream
// it belongs to), and ReadPacket steps through the current page's segments,
// carrying partial packets across page boundaries. Callers decide which
// pages to feed through ReadPacket, which keeps multiplexed streams usable:
// pages of other streams can pass by without disturbing packet assembly.
type Decoder struct {
	r    *binary.Reader
	page *Page
	seg  int // next segment index within the current page

	partial []byte // packet bytes accumulated across pages
	mid     bool   // a packet is in progress
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: binary.NewReader(r)}
}

// ReadPage reads the next page from the input.
//
// io.EOF signals a clean end of input at a page boundary. An input that
// stops partway through a page yields a TruncatedStreamError instead. The
// page's checksum is verified during decoding.
func (d *Decoder) ReadPage() (*Page, error) {
	start := d.r.Offset()

	header := make([]byte, headerSize)
	if err := d.r.ReadFull(header, "page header"); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &types.TruncatedStreamError{Offset: start, What: "page header"}
	}
	if string(header[0:4]) != capturePattern {
		return nil, &types.MalformedPageError{Offset: start, Reason: "missing OggS capture pattern"}
	}

	nseg := int(header[26])
	lacing := make([]byte, nseg)
	if err := d.r.ReadFull(lacing, "segment table"); err != nil {
		return nil, &types.TruncatedStreamError{Offset: start, What: "segment table"}
	}

	bodySize := 0
	for _, l := range lacing {
		bodySize += int(l)
	}
	body := make([]byte, bodySize)
	if err := d.r.ReadFull(body, "page payload"); err != nil {
		return nil, &types.TruncatedStreamError{Offset: start, What: "page payload"}
	}

	raw := make([]byte, 0, headerSize+nseg+bodySize)
	raw = append(raw, header...)
	raw = append(raw, lacing...)
	raw = append(raw, body...)

	page, err := decodePage(raw, start)
	if err != nil {
		return nil, err
	}
	d.page = page
	d.seg = 0
	return page, nil
}

// ReadPacket advances packet assembly by one packet within the current page.
//
// It returns (packet, true, nil) when a packet completes, and (nil, false,
// nil) when the current page's segments are exhausted; the caller must then
// call ReadPage again. A packet whose final segment lies on a later page is
// returned only once that page has been read.
func (d *Decoder) ReadPacket() ([]byte, bool, error) {
	if d.page == nil {
		return nil, false, &types.MalformedPageError{Reason: "packet read before any page"}
	}

	// The continuation flag chain must be consistent with assembly state.
	if d.seg == 0 {
		if d.mid && !d.page.Continued() {
			return nil, false, &types.MalformedPageError{
				Offset: d.r.Offset(),
				Reason: "packet interrupted: page lacks the continuation flag",
			}
		}
		if !d.mid && d.page.Continued() {
			return nil, false, &types.MalformedPageError{
				Offset: d.r.Offset(),
				Reason: "unexpected continuation flag with no packet in progress",
			}
		}
	}

	for d.seg < len(d.page.Segments) {
		seg := d.page.Segments[d.seg]
		d.seg++
		d.partial = append(d.partial, seg...)
		d.mid = true
		if len(seg) < MaxSegmentSize {
			packet := d.partial
			d.partial = nil
			d.mid = false
			return packet, true, nil
		}
	}
	return nil, false, nil
}

// Assembling reports whether a packet is in progress, i.e. the last segment
// consumed did not terminate a packet. At end of input this distinguishes a
// clean stop from a truncated stream.
func (d *Decoder) Assembling() bool { return d.mid }

// Offset returns the input offset in bytes consumed so far.
func (d *Decoder) Offset() int64 { return d.r.Offset() }

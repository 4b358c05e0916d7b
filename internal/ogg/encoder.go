package ogg

import (
	"fmt"
	"io"

	"github.com/simonhull/opustag/internal/binary"
)

// Encoder writes pages to a byte stream.
//
// Packets written through WritePacket are segmented into lacing values (the
// maximum run of 255-byte segments followed by one terminal segment of the
// remainder, emitted even when empty) and buffered into an in-progress page
// per logical stream. A packet that would overflow the 255-segment lacing
// table causes the page to be emitted early and a continuation page to be
// started, transparently to the caller.
//
// Pages written through WritePage bypass buffering entirely and are emitted
// verbatim, preserving their lacing, flags and sequence numbers. Every page
// emitted either way is a complete, checksummed page, so a consumer reading
// the output incrementally never sees an inconsistent partial page.
type Encoder struct {
	w       *binary.Writer
	streams map[uint32]*streamState
}

type streamState struct {
	serial   uint32
	sequence uint32
	started  bool // first page emitted (carries the beginning-of-stream flag)
	eos      bool // next emitted page carries the end-of-stream flag

	lacing []byte
	data   []byte

	continued bool  // the page being built continues a packet
	inPacket  bool  // a packet is mid-flight in the page being built
	granule   int64 // granule of the last packet completed on the page
	complete  bool  // some packet completed on the page being built
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: binary.NewWriter(w), streams: make(map[uint32]*streamState)}
}

// PrepareStream registers a logical stream the first time its serial number
// is seen. Each stream keeps its own page sequence counter starting at 0,
// and its first emitted page carries the beginning-of-stream flag.
func (e *Encoder) PrepareStream(serial uint32) {
	if _, ok := e.streams[serial]; !ok {
		e.streams[serial] = &streamState{serial: serial}
	}
}

func (e *Encoder) stream(serial uint32) *streamState {
	e.PrepareStream(serial)
	return e.streams[serial]
}

// WritePacket appends a packet to the in-progress page of its stream.
//
// granule is recorded as the page granule position of the page on which the
// packet completes; pages flushed mid-packet carry NoGranule.
func (e *Encoder) WritePacket(serial uint32, packet []byte, granule int64) error {
	st := e.stream(serial)

	full := len(packet) / MaxSegmentSize
	off := 0
	// full segments of 255 bytes, then a terminal segment of the remainder
	// (possibly empty) to mark the packet end unambiguously.
	for i := 0; i <= full; i++ {
		size := MaxSegmentSize
		if i == full {
			size = len(packet) - off
		}
		if len(st.lacing) == MaxSegments {
			if err := e.emit(st); err != nil {
				return err
			}
		}
		st.lacing = append(st.lacing, byte(size))
		st.data = append(st.data, packet[off:off+size]...)
		off += size
		if i == full {
			st.inPacket = false
			st.granule = granule
			st.complete = true
		} else {
			st.inPacket = true
		}
	}
	return nil
}

// WritePage emits a page verbatim, without touching any stream's buffered
// state. Used for pages that require no modification.
func (e *Encoder) WritePage(p *Page) error {
	raw, err := p.Encode()
	if err != nil {
		return err
	}
	if err := e.w.WriteBytes(raw); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// CopyPage emits a page of a prepared stream verbatim and moves the
// stream's sequence counter past the copied page, so pages synthesized
// afterwards continue the numbering.
func (e *Encoder) CopyPage(p *Page) error {
	st := e.stream(p.Serial)
	if err := e.WritePage(p); err != nil {
		return err
	}
	st.sequence = p.Sequence + 1
	st.started = true
	return nil
}

// Flush finalizes the in-progress page of a stream, if any, so that a page
// boundary in the source can be reproduced in the output. Flushing a stream
// with nothing buffered is a no-op.
func (e *Encoder) Flush(serial uint32) error {
	st := e.stream(serial)
	if len(st.lacing) == 0 && !st.eos {
		return nil
	}
	return e.emit(st)
}

// EndStream finalizes the stream's in-progress page with the end-of-stream
// flag set. The page is emitted even if empty, so the stream termination
// marker is never lost.
func (e *Encoder) EndStream(serial uint32) error {
	st := e.stream(serial)
	st.eos = true
	return e.emit(st)
}

// emit encodes and writes the page being built for st, then resets the
// per-page state. The continuation flag of the next page is set when the
// emitted page ended mid-packet.
func (e *Encoder) emit(st *streamState) error {
	page := &Page{
		Granule:  NoGranule,
		Serial:   st.serial,
		Sequence: st.sequence,
	}
	if st.complete {
		page.Granule = st.granule
	}
	if st.continued {
		page.Flags |= FlagContinued
	}
	if !st.started {
		page.Flags |= FlagFirstPage
	}
	if st.eos {
		page.Flags |= FlagLastPage
	}

	pos := 0
	page.Segments = make([][]byte, len(st.lacing))
	for i, l := range st.lacing {
		page.Segments[i] = st.data[pos : pos+int(l)]
		pos += int(l)
	}

	if err := e.WritePage(page); err != nil {
		return err
	}

	st.sequence++
	st.started = true
	st.continued = st.inPacket
	st.lacing = nil
	st.data = nil
	st.complete = false
	st.eos = false
	return nil
}

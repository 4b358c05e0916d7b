package opustag

import (
	"io"

	"github.com/simonhull/opustag/internal/ogg"
	"github.com/simonhull/opustag/internal/opus"
	"github.com/simonhull/opustag/internal/types"
)

// Transcoder states, tracking the packet position within the Opus stream.
const (
	stateIDHeader      = iota // packet #1: validate and copy the OpusHead header
	stateCommentHeader        // packet #2: parse, edit, re-render the OpusTags header
	stateRepacketize          // later packets on a page the comment header shared
	stateCopyPages            // everything else: verbatim page copy
)

// Process streams an Ogg Opus bitstream from r, applies plan to its comment
// header, and writes the result to w. Every page other than those carrying
// the two header packets is copied byte for byte, so processing with an
// empty plan reproduces the input exactly.
//
// A nil w selects read-only mode: the edited tags are returned and reading
// stops right after the comment header, without producing any output. The
// returned tags reflect the state after the plan was applied; a nil plan
// leaves them as parsed.
//
// The Opus stream is the logical stream of the file's first page. Pages of
// other interleaved logical streams are forwarded untouched in arrival
// order.
func Process(r io.Reader, w io.Writer, plan *EditPlan) (*Tags, error) {
	dec := ogg.NewDecoder(r)
	var enc *ogg.Encoder
	if w != nil {
		enc = ogg.NewEncoder(w)
	}

	state := stateIDHeader
	var focus uint32
	focusKnown := false
	var tags *types.Tags

	for {
		page, err := dec.ReadPage()
		if err == io.EOF {
			if dec.Assembling() {
				return nil, &types.TruncatedStreamError{Offset: dec.Offset(), What: "packet"}
			}
			switch state {
			case stateIDHeader:
				return nil, &types.IncompleteStreamError{Packets: 0}
			case stateCommentHeader:
				return nil, &types.IncompleteStreamError{Packets: 1}
			}
			return tags, nil
		}
		if err != nil {
			return nil, err
		}

		if !focusKnown {
			focus = page.Serial
			focusKnown = true
			if enc != nil {
				enc.PrepareStream(focus)
			}
		}

		if state == stateCopyPages || page.Serial != focus {
			if enc != nil {
				if err := enc.WritePage(page); err != nil {
					return nil, err
				}
			}
			continue
		}

		// A page with no segments carries only framing, no packet content.
		// With no packet in progress there is nothing to transcode, so the
		// page is copied through at its sequence position.
		if len(page.Segments) == 0 && !dec.Assembling() {
			if enc != nil {
				if err := enc.CopyPage(page); err != nil {
					return nil, err
				}
			}
			continue
		}

		for {
			packet, ok, err := dec.ReadPacket()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}

			switch state {
			case stateIDHeader:
				if err := opus.ValidateHead(packet); err != nil {
					return nil, err
				}
				if enc != nil {
					if err := enc.WritePacket(focus, packet, page.Granule); err != nil {
						return nil, err
					}
				}
				state = stateCommentHeader

			case stateCommentHeader:
				t, err := opus.ParseTags(packet)
				if err != nil {
					return nil, err
				}
				if plan != nil {
					plan.Apply(t)
				}
				tags = t
				if enc == nil {
					return tags, nil
				}
				if err := enc.WritePacket(focus, opus.RenderTags(t), page.Granule); err != nil {
					return nil, err
				}
				state = stateRepacketize

			case stateRepacketize:
				if err := enc.WritePacket(focus, packet, page.Granule); err != nil {
					return nil, err
				}
			}
		}

		// Reproduce the source page boundary when packet assembly is at a
		// clean boundary. A packet spanning into the next page keeps the
		// in-progress output page open instead.
		if enc != nil && !dec.Assembling() {
			if page.Last() {
				if err := enc.EndStream(focus); err != nil {
					return nil, err
				}
			} else if err := enc.Flush(focus); err != nil {
				return nil, err
			}
			if state == stateRepacketize {
				state = stateCopyPages
			}
		}
	}
}

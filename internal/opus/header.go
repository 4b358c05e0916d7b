// Package opus implements the Opus header packets carried in an Ogg stream:
// the "OpusHead" identification header check and the "OpusTags" comment
// header codec.
package opus

import (
	"fmt"

	"github.com/simonhull/opustag/internal/types"
)

const (
	headMagic = "OpusHead"
	tagsMagic = "OpusTags"

	// The identification header is 19 bytes minimum: magic, version,
	// channel count, pre-skip, input sample rate, output gain and channel
	// mapping family.
	headMinSize = 19
)

// ValidateHead checks that packet is a well-formed Opus identification
// header. Only the magic signature and the version compatibility range are
// verified; audio properties are not interpreted, since the packet is
// copied through unchanged.
//
// Versions with a zero major (upper four bits of the version byte) are
// backward compatible and accepted; anything else is an unknown revision
// of the format.
func ValidateHead(packet []byte) error {
	if len(packet) < len(headMagic) || string(packet[:len(headMagic)]) != headMagic {
		return &types.InvalidHeaderError{Reason: "missing OpusHead signature"}
	}
	if len(packet) < headMinSize {
		return &types.InvalidHeaderError{
			Reason: fmt.Sprintf("packet is %d bytes, need at least %d", len(packet), headMinSize),
		}
	}
	if version := packet[8]; version>>4 != 0 {
		return &types.InvalidHeaderError{
			Reason: fmt.Sprintf("incompatible version %d", version),
		}
	}
	return nil
}

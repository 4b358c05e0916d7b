package opus

import (
	"encoding/binary"

	"github.com/simonhull/opustag/internal/types"
)

// The comment header layout, all integers little-endian, strings UTF-8
// with a 32-bit length prefix and no terminator:
//
//	magic("OpusTags") | vendor_length(u32) | vendor
//	| comment_count(u32) | { comment_length(u32) | comment }*

// ParseTags parses a comment header packet into its vendor string and
// ordered comment list. Trailing bytes after the last comment are ignored,
// as decoders are required to do.
func ParseTags(packet []byte) (*types.Tags, error) {
	if len(packet) < len(tagsMagic) || string(packet[:len(tagsMagic)]) != tagsMagic {
		return nil, &types.InvalidTagsError{Reason: "missing OpusTags signature"}
	}
	pos := len(tagsMagic)

	vendor, pos, err := readString(packet, pos, "vendor string")
	if err != nil {
		return nil, err
	}

	if pos+4 > len(packet) {
		return nil, &types.TruncatedTagsError{Offset: pos, What: "comment count"}
	}
	count := binary.LittleEndian.Uint32(packet[pos : pos+4])
	pos += 4

	tags := &types.Tags{Vendor: vendor}
	for i := uint32(0); i < count; i++ {
		var comment string
		comment, pos, err = readString(packet, pos, "comment string")
		if err != nil {
			return nil, err
		}
		tags.Comments = append(tags.Comments, comment)
	}
	return tags, nil
}

// readString reads one length-prefixed string starting at pos.
func readString(packet []byte, pos int, what string) (string, int, error) {
	if pos+4 > len(packet) {
		return "", 0, &types.TruncatedTagsError{Offset: pos, What: what + " length"}
	}
	length := int(binary.LittleEndian.Uint32(packet[pos : pos+4]))
	pos += 4
	if length < 0 || pos+length > len(packet) {
		return "", 0, &types.TruncatedTagsError{Offset: pos, What: what}
	}
	return string(packet[pos : pos+length]), pos + length, nil
}

// RenderTags serializes tags back into a comment header packet.
//
// The vendor string is written exactly as parsed, never regenerated, so a
// render of unmodified tags reproduces the original packet byte for byte.
func RenderTags(tags *types.Tags) []byte {
	size := len(tagsMagic) + 4 + len(tags.Vendor) + 4
	for _, c := range tags.Comments {
		size += 4 + len(c)
	}

	packet := make([]byte, 0, size)
	packet = append(packet, tagsMagic...)
	packet = binary.LittleEndian.AppendUint32(packet, uint32(len(tags.Vendor)))
	packet = append(packet, tags.Vendor...)
	packet = binary.LittleEndian.AppendUint32(packet, uint32(len(tags.Comments)))
	for _, c := range tags.Comments {
		packet = binary.LittleEndian.AppendUint32(packet, uint32(len(c)))
		packet = append(packet, c...)
	}
	return packet
}

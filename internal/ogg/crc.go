package ogg

// The Ogg page checksum is a direct (non-reflected) CRC-32 with polynomial
// 0x04c11db7, zero initial value and no final XOR, computed over the whole
// page with the checksum field set to zero.

const crcPoly = 0x04c11db7

var crcTable [256]uint32

func init() {
	for i := range crcTable {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = (c << 1) ^ crcPoly
			} else {
				c <<= 1
			}
		}
		crcTable[i] = c
	}
}

// checksum computes the Ogg page CRC over p.
func checksum(p []byte) uint32 {
	var c uint32
	for _, b := range p {
		c = crcTable[byte(c>>24)^b] ^ (c << 8)
	}
	return c
}

package lsb

// MaxDepth is the highest wraparound depth, the most significant bit of a channel.
const MaxDepth = 7

var (
	writeMasks [MaxDepth + 1]byte
	readMasks  [MaxDepth + 1]byte
)

func init() {
	for d := uint8(0); d <= MaxDepth; d++ {
		readMasks[d] = 1 << d
		writeMasks[d] = ^readMasks[d]
	}
}

// WriteMask returns a byte with every bit set except the one at depth.
// ANDing a channel with it clears the bit about to be written.
func WriteMask(depth uint8) byte {
	return writeMasks[depth&MaxDepth]
}

// ReadMask returns a byte with only the bit at depth set.
func ReadMask(depth uint8) byte {
	return readMasks[depth&MaxDepth]
}

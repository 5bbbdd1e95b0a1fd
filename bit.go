package patricia

import "math/bits"

// prefixMask returns the mask selecting the key bits strictly below bit.
func prefixMask(bit uint8) uint64 {
	return (uint64(1) << bit) - 1
}

// keyPrefix returns the bits of key strictly below bit.
func keyPrefix(key uint64, bit uint8) uint64 {
	return key & prefixMask(bit)
}

// goesLeft reports whether key routes to the left child of a branch on bit.
func goesLeft(key uint64, bit uint8) bool {
	return key&(uint64(1)<<bit) == 0
}

// branchingBit returns the position of the lowest set bit of diff, the
// first bit (LSB-first) at which two colliding bit strings differ.
// diff must be non-zero.
func branchingBit(diff uint64) uint8 {
	return uint8(bits.TrailingZeros64(diff))
}

package keccak

import "encoding/binary"

const (
	// StateSize is the Keccak-f[1600] state size in bytes.
	StateSize = 200
	// DefaultRate is the Keccak-256 rate: (1600 - 2*256) / 8 = 136 bytes.
	// It is also used for full-state (StateSize) outputs.
	DefaultRate = 136

	// scratchSize bounds the rate of any supported configuration and
	// sizes the padding scratch buffer.
	scratchSize = 144
)

// Rate returns the sponge rate for a digest of size bytes.
func Rate(size int) (int, error) {
	if size <= 0 || size > StateSize {
		return 0, invalidSize(size)
	}
	return roundSize(size), nil
}

// Supported reports whether a digest of size bytes can be computed.
// Sizes in range whose rate does not fit the padding scratch area
// (below 28 bytes, or 100 to 199 bytes) are not supported.
func Supported(size int) bool {
	r, err := Rate(size)
	return err == nil && r > 0 && r <= scratchSize
}

func roundSize(size int) int {
	if size == StateSize {
		return DefaultRate
	}
	return StateSize - 2*size
}

// mustFit panics with an *InvariantError unless a remainder of the
// given length can be padded into the scratch area at this rate.
func mustFit(rate, size, remainder int) {
	if rate <= 0 || rate > scratchSize || remainder < 0 || remainder >= rate {
		panic(&InvariantError{Rate: rate, OutputSize: size, Remainder: remainder})
	}
}

// absorbBlocks absorbs every full rate-sized block of data and returns
// the unabsorbed tail.
func absorbBlocks(a *[25]uint64, data []byte, rate int) []byte {
	for len(data) >= rate {
		xorIn(a, data[:rate])
		keccakF1600(a)
		data = data[rate:]
	}
	return data
}

// padAndAbsorb applies Keccak pad10*1 (0x01 ... 0x80, not the SHA-3
// 0x06 suffix) to tail in pad and absorbs the final block.
func padAndAbsorb(a *[25]uint64, tail []byte, rate int, pad *[scratchSize]byte) {
	block := pad[:rate]
	clear(block)
	n := copy(block, tail)
	block[n] = 0x01
	block[rate-1] |= 0x80
	xorIn(a, block)
	keccakF1600(a)
}

// squeeze copies the leading len(out) bytes of the state into out.
func squeeze(a *[25]uint64, out []byte) {
	var lane [8]byte
	for i := 0; i < len(out); i += 8 {
		binary.LittleEndian.PutUint64(lane[:], a[i>>3])
		copy(out[i:], lane[:])
	}
}

// xorIn XORs data into the beginning of the state.
// Uses uint64 operations for the bulk of the data (8x fewer ops than byte-by-byte).
func xorIn(a *[25]uint64, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(data[8*i:])
	}
	// Handle remaining bytes (< 8).
	for i := n << 3; i < len(data); i++ {
		a[i>>3] ^= uint64(data[i]) << (8 * (i & 7))
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

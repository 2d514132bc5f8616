// Package keccak provides the original Keccak hash family (Keccak-256 and
// the other output sizes of the 1600-bit sponge).
//
// The padding is the Keccak submission's pad10*1 with a 0x01 first byte, the
// variant Ethereum uses. It is NOT the FIPS 202 SHA-3 padding with the 0x06
// domain byte, so digests differ from crypto/sha3. Go's stdlib crypto/sha3 only
// exposes SHA-3, and x/crypto/sha3 only covers the 256 and 512 bit legacy
// variants; this package covers every output size the sponge supports.
//
// Two entry points share the same sponge:
//   - one-shot functions (Sum256, ComputeHash, ...), which keep their scratch
//     state on the stack or in a process-wide pool;
//   - the streaming Hasher, which carries partial blocks across Update calls.
package keccak

import "fmt"

// Digest sizes of the standard Keccak variants, in bytes.
const (
	Size    = 32
	Size224 = 28
	Size384 = 48
	Size512 = 64
)

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	sum(data, out[:])
	return out
}

// Sum224 computes the Keccak-224 hash of data.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	sum(data, out[:])
	return out
}

// Sum384 computes the Keccak-384 hash of data.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	sum(data, out[:])
	return out
}

// Sum512 computes the Keccak-512 hash of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	sum(data, out[:])
	return out
}

// BlankHash returns the Keccak-256 hash of empty input.
func BlankHash() [Size]byte { return Sum256(nil) }

// ComputeHash returns the size-byte Keccak hash of input.
func ComputeHash(input []byte, size int) ([]byte, error) {
	if _, err := Rate(size); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	if err := ComputeHashInto(input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ComputeHashInto hashes input into output; the digest size is len(output).
// Scratch buffers come from a shared pool and are returned before it returns.
func ComputeHashInto(input, output []byte) error {
	size := len(output)
	rate, err := Rate(size)
	if err != nil {
		return err
	}
	mustFit(rate, size, 0)

	s := getScratch()
	defer putScratch(s)

	tail := absorbBlocks(&s.state, input, rate)
	padAndAbsorb(&s.state, tail, rate, &s.pad)
	squeeze(&s.state, output)
	return nil
}

// Keccak1600 fills output, which must be exactly StateSize bytes long, with
// the whole state after absorbing input at the Keccak-256 rate.
func Keccak1600(input, output []byte) error {
	if len(output) != StateSize {
		return fmt.Errorf("%w: %d (want %d)", ErrInvalidOutputSize, len(output), StateSize)
	}
	return ComputeHashInto(input, output)
}

// sum is the stack-only one-shot path used by the fixed-size functions.
func sum(data, out []byte) {
	var (
		a   [25]uint64
		pad [scratchSize]byte
	)
	rate := roundSize(len(out))
	mustFit(rate, len(out), 0)

	// Absorb full blocks.
	tail := absorbBlocks(&a, data, rate)

	// Absorb remaining bytes + Keccak padding.
	padAndAbsorb(&a, tail, rate, &pad)

	squeeze(&a, out)
}

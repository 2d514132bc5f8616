package keccak

import (
	"bytes"
	"fmt"
	"hash"
)

// phase tracks where a Hasher is in its lifecycle.
type phase uint8

const (
	phaseFresh        phase = iota // zero state, nothing absorbed
	phaseAccumulating              // data absorbed, no digest cached
	phaseFinalized                 // digest cached
)

func (p phase) String() string {
	switch p {
	case phaseFresh:
		return "fresh"
	case phaseAccumulating:
		return "accumulating"
	case phaseFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Hasher is a streaming Keccak hasher. Designed for stack allocation:
// the zero value is a ready Keccak-256 hasher.
//
// A Hasher is not safe for concurrent use; use one per goroutine.
type Hasher struct {
	state    [25]uint64
	buf      [scratchSize]byte // remainder, only buf[:rate] is used
	absorbed int
	rate     int
	size     int

	phase  phase
	digest []byte // valid only in phaseFinalized
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a Hasher producing size-byte digests. The size fixes the
// rate for the lifetime of the Hasher.
func New(size int) (*Hasher, error) {
	rate, err := Rate(size)
	if err != nil {
		return nil, err
	}
	mustFit(rate, size, 0)
	return &Hasher{rate: rate, size: size}, nil
}

// New256 returns a Keccak-256 Hasher.
func New256() *Hasher {
	return &Hasher{rate: DefaultRate, size: Size}
}

func (h *Hasher) init() {
	if h.rate == 0 {
		h.rate, h.size = DefaultRate, Size
	}
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int {
	if h.size == 0 {
		return Size
	}
	return h.size
}

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int {
	if h.rate == 0 {
		return DefaultRate
	}
	return h.rate
}

// Reset returns the hasher to its initial state, keeping its digest size.
func (h *Hasher) Reset() {
	h.state = [25]uint64{}
	h.buf = [scratchSize]byte{}
	h.absorbed = 0
	clear(h.digest)
	h.phase = phaseFresh
}

// Update absorbs data[offset:offset+length]. Invalid arguments are
// reported before the hasher is touched; a zero length is a no-op.
func (h *Hasher) Update(data []byte, offset, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if offset < 0 || offset > len(data)-length {
		return fmt.Errorf("%w: offset=%d length=%d len(data)=%d", ErrOutOfRange, offset, length, len(data))
	}
	if length == 0 {
		return nil
	}
	h.absorb(data[offset : offset+length])
	return nil
}

// Write absorbs p. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	if len(p) > 0 {
		h.absorb(p)
	}
	return len(p), nil
}

func (h *Hasher) absorb(p []byte) {
	h.init()
	if h.phase == phaseFinalized {
		clear(h.digest)
	}
	h.phase = phaseAccumulating

	// Top up a pending remainder first.
	if h.absorbed > 0 {
		n := copy(h.buf[h.absorbed:h.rate], p)
		h.absorbed += n
		p = p[n:]
		if h.absorbed == h.rate {
			xorIn(&h.state, h.buf[:h.rate])
			keccakF1600(&h.state)
			h.absorbed = 0
		}
	}

	p = absorbBlocks(&h.state, p, h.rate)

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:h.rate], p)
	}
}

// Digest returns the digest of everything absorbed so far. The result is
// cached until the next Update, Write or Reset; the lane state is left
// untouched, so absorbing more data afterwards continues the stream.
func (h *Hasher) Digest() []byte {
	return bytes.Clone(h.finalize())
}

// Sum appends the current digest to b. It does not change the absorbed stream.
func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.finalize()...)
}

func (h *Hasher) finalize() []byte {
	if h.phase == phaseFinalized {
		return h.digest
	}
	h.init()
	mustFit(h.rate, h.size, h.absorbed)

	var pad [scratchSize]byte
	state := h.state
	padAndAbsorb(&state, h.buf[:h.absorbed], h.rate, &pad)

	if cap(h.digest) < h.size {
		h.digest = make([]byte, h.size)
	}
	h.digest = h.digest[:h.size]
	squeeze(&state, h.digest)
	h.phase = phaseFinalized
	return h.digest
}

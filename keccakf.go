package keccak

import "math/bits"

// Rounds is the number of Keccak-f[1600] rounds.
const Rounds = 24

// rc holds the iota round constants, one per round.
var rc = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the rotation offset of lane (x, y) at index 5*y + x.
var rho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// pi holds the destination index of lane (x, y) at index 5*y + x.
// Lane (x, y) moves to (y, 2x+3y mod 5).
var pi = func() (p [25]int) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p[5*y+x] = 5*((2*x+3*y)%5) + y
		}
	}
	return p
}()

// Permute applies the 24-round Keccak-f[1600] permutation to a in place.
// Lane (x, y) lives at a[5*y+x]. Safe for concurrent use on distinct states.
func Permute(a *[25]uint64) {
	keccakF1600(a)
}

func keccakF1600(a *[25]uint64) {
	var c, d [5]uint64
	var b [25]uint64
	for round := 0; round < Rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := 0; i < 25; i++ {
			a[i] ^= d[i%5]
		}

		// ρ and π
		for i := 0; i < 25; i++ {
			b[pi[i]] = bits.RotateLeft64(a[i], rho[i])
		}

		// χ
		for y := 0; y < 25; y += 5 {
			a[y] = b[y] ^ (^b[y+1] & b[y+2])
			a[y+1] = b[y+1] ^ (^b[y+2] & b[y+3])
			a[y+2] = b[y+2] ^ (^b[y+3] & b[y+4])
			a[y+3] = b[y+3] ^ (^b[y+4] & b[y])
			a[y+4] = b[y+4] ^ (^b[y] & b[y+1])
		}

		// ι
		a[0] ^= rc[round]
	}
}

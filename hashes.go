package keccak

import "fmt"

// Digest sizes, in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// maxSize bounds New: the derived rate 200 - 2*size must stay strictly
// larger than the digest size itself.
const maxSize = 66

// rateFor returns the sponge rate for a digest size: the 200-byte state
// minus twice the digest size, the capacity choice of the SHA-3
// submission.
func rateFor(size int) int { return stateBytes - 2*size }

func newHasher(size int) *Hasher {
	return &Hasher{rate: rateFor(size), size: size}
}

// New returns a Hasher producing digests of the given size in bytes.
// Size must be between 1 and 66 inclusive, the range where the derived
// rate stays strictly larger than the digest; anything else is rejected.
func New(size int) (*Hasher, error) {
	if size < 1 || size > maxSize {
		return nil, fmt.Errorf("keccak: digest size must be between 1 and %d bytes, got %d", maxSize, size)
	}
	return newHasher(size), nil
}

// New224 returns a Keccak-224 hasher.
func New224() *Hasher { return newHasher(Size224) }

// New256 returns a Keccak-256 hasher.
func New256() *Hasher { return newHasher(Size256) }

// New384 returns a Keccak-384 hasher.
func New384() *Hasher { return newHasher(Size384) }

// New512 returns a Keccak-512 hasher.
func New512() *Hasher { return newHasher(Size512) }

// Sum224 computes the Keccak-224 hash of data.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	sum(data, rateFor(Size224), out[:])
	return out
}

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	sum(data, rateFor(Size256), out[:])
	return out
}

// Sum384 computes the Keccak-384 hash of data.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	sum(data, rateFor(Size384), out[:])
	return out
}

// Sum512 computes the Keccak-512 hash of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	sum(data, rateFor(Size512), out[:])
	return out
}

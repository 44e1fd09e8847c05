// Package keccak implements the legacy Keccak hash family in the four
// standard sizes: Keccak-224, Keccak-256, Keccak-384 and Keccak-512.
//
// Legacy means the function as submitted to the SHA-3 competition: message
// padding uses domain separator 0x01, NOT the 0x06 byte FIPS 202 later
// assigned to standardized SHA-3, so digests differ from crypto/sha3 for
// the same input. Keccak-256 with this padding is the hash used by
// Ethereum and the multihash ecosystem. x/crypto/sha3 exposes the same
// functions through NewLegacyKeccak256 and NewLegacyKeccak512 but covers
// only two of the four sizes and no custom ones.
//
// All hashers implement hash.Hash and are safe to use with crypto/hmac.
package keccak

const (
	// stateBytes is the width of the Keccak-f[1600] state.
	stateBytes = 200

	// maxRate is the largest sponge rate a Hasher can be configured
	// with. Capacity is twice the digest size and the smallest digest
	// is one byte, so at least two state bytes stay reserved.
	maxRate = stateBytes - 2

	// domain is the padding domain separator of pre-standardization
	// Keccak. FIPS 202 assigned 0x06 to SHA-3; the two produce
	// different digests.
	domain = 0x01
)

// Hasher is a streaming Keccak hasher for a fixed digest size. The zero
// value is not usable; obtain one from New or one of the size-specific
// constructors. Hashers are not safe for concurrent use.
type Hasher struct {
	a        [25]uint64
	buf      [maxRate]byte
	absorbed int
	rate     int
	size     int
}

// Reset restores the hasher to its initial state, ready for a new
// message. The configured digest size is kept.
func (h *Hasher) Reset() {
	h.a = [25]uint64{}
	h.absorbed = 0
}

// Write absorbs p into the sponge. It always returns len(p) and a nil
// error; the signature exists to satisfy io.Writer.
func (h *Hasher) Write(p []byte) (int, error) {
	written := len(p)

	if h.absorbed > 0 {
		n := copy(h.buf[h.absorbed:h.rate], p)
		h.absorbed += n
		p = p[n:]
		if h.absorbed == h.rate {
			xorIn(&h.a, h.buf[:h.rate])
			keccakF1600(&h.a)
			h.absorbed = 0
		}
	}

	for len(p) >= h.rate {
		xorIn(&h.a, p[:h.rate])
		keccakF1600(&h.a)
		p = p[h.rate:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}

	return written, nil
}

// Sum appends the digest of everything written so far to b and returns
// the result. The hasher itself is left untouched, so callers may keep
// writing afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	// Finalize a copy so the running state survives.
	d := *h
	out := make([]byte, d.size)
	d.finalize()
	d.squeeze(out)
	return append(b, out...)
}

// Final writes the digest into out and resets the hasher. len(out) is
// the caller's choice: fewer than Size bytes truncates the digest, more
// keeps squeezing the sponge one block at a time. Bytes beyond Size are
// not covered by the variant's security claim.
func (h *Hasher) Final(out []byte) {
	h.finalize()
	h.squeeze(out)
	h.Reset()
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the sponge rate in bytes. crypto/hmac picks this up
// as the key block length.
func (h *Hasher) BlockSize() int { return h.rate }

// finalize absorbs the buffered tail together with the Keccak padding
// and runs the final permutation. Callers are responsible for resetting
// afterwards if the hasher is to be reused.
func (h *Hasher) finalize() {
	xorIn(&h.a, h.buf[:h.absorbed])
	// Keccak uses domain separator 0x01 (NOT SHA-3's 0x06).
	h.a[h.absorbed>>3] ^= domain << (8 * (h.absorbed & 7))
	// pad10*1 end bit.
	h.a[(h.rate-1)>>3] ^= 0x80 << (8 * ((h.rate - 1) & 7))
	keccakF1600(&h.a)
}

// squeeze fills out with sponge output, permuting between blocks when
// more than one rate's worth is requested.
func (h *Hasher) squeeze(out []byte) {
	for {
		n := min(len(out), h.rate)
		copyOut(&h.a, out[:n])
		out = out[n:]
		if len(out) == 0 {
			return
		}
		keccakF1600(&h.a)
	}
}

// sum computes a one-shot digest of data at the given rate, writing
// len(out) bytes. It skips the Hasher's buffer bookkeeping entirely.
// len(out) must not exceed the rate.
func sum(data []byte, rate int, out []byte) {
	var a [25]uint64

	// Absorb full blocks.
	for len(data) >= rate {
		xorIn(&a, data[:rate])
		keccakF1600(&a)
		data = data[rate:]
	}

	// Absorb remaining bytes + Keccak padding.
	// Keccak uses domain separator 0x01 (NOT SHA-3's 0x06).
	xorIn(&a, data)
	a[len(data)>>3] ^= domain << (8 * (len(data) & 7))
	// pad10*1 end bit.
	a[(rate-1)>>3] ^= 0x80 << (8 * ((rate - 1) & 7))
	keccakF1600(&a)

	copyOut(&a, out)
}

// xorIn XORs data into the beginning of the state, reading little-endian
// lanes. len(data) must not exceed the state width.
func xorIn(a *[25]uint64, data []byte) {
	// XOR 8 bytes at a time using little-endian uint64 reads.
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(data[8*i:])
	}
	// Handle remaining bytes (< 8).
	for i := n << 3; i < len(data); i++ {
		a[i>>3] ^= uint64(data[i]) << (8 * (i & 7))
	}
}

// copyOut serializes the beginning of the state into out, writing
// little-endian lanes. len(out) must not exceed the state width.
func copyOut(a *[25]uint64, out []byte) {
	n := len(out) >> 3
	for i := 0; i < n; i++ {
		put64(out[8*i:], a[i])
	}
	if tail := len(out) & 7; tail > 0 {
		var last [8]byte
		put64(last[:], a[n])
		copy(out[n<<3:], last[:tail])
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// put64 writes a uint64 into at least 8 bytes, little-endian.
func put64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

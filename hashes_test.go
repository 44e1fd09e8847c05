package keccak

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// oneShot dispatches to the fixed-size convenience function for size.
func oneShot(t *testing.T, size int, data []byte) []byte {
	t.Helper()
	switch size {
	case Size224:
		d := Sum224(data)
		return d[:]
	case Size256:
		d := Sum256(data)
		return d[:]
	case Size384:
		d := Sum384(data)
		return d[:]
	case Size512:
		d := Sum512(data)
		return d[:]
	}
	t.Fatalf("no one-shot function for size %d", size)
	return nil
}

func TestDigestVectors(t *testing.T) {
	const fox = "The quick brown fox jumps over the lazy dog"
	vectors := []struct {
		size int
		name string
		in   string
		want string
	}{
		{Size224, "empty", "", "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd"},
		{Size256, "empty", "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{Size384, "empty", "", "2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff"},
		{Size512, "empty", "", "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"},
		{Size224, "abc", "abc", "c30411768506ebe1c2871b1ee2e87d38df342317300a9b97a95ec6a8"},
		{Size256, "abc", "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{Size384, "abc", "abc", "f7df1165f033337be098e7d288ad6a2f74409d7a60b49c36642218de161b1f99f8c681e4afaf31a34db29fb763e3c28e"},
		{Size512, "abc", "abc", "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96"},
		{Size224, "fox", fox, "310aee6b30c47350576ac2873fa89fd190cdc488442f3ef654cf23fe"},
		{Size256, "fox", fox, "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15"},
		{Size512, "fox", fox, "d135bb84d0439dbac432247ee573a23ea7d3c9deb2a968eb31d47c4fb45f1ef4422d6c531b5b9bd6f449ebcc449ea94d0a8f05f62130fda612da53c79659f609"},
	}

	for _, tc := range vectors {
		t.Run(fmt.Sprintf("keccak-%d/%s", tc.size*8, tc.name), func(t *testing.T) {
			h, err := New(tc.size)
			require.NoError(t, err)
			h.Write([]byte(tc.in))
			require.Equal(t, tc.want, hex.EncodeToString(h.Sum(nil)))
			require.Equal(t, tc.want, hex.EncodeToString(oneShot(t, tc.size, []byte(tc.in))))
		})
	}
}

func TestNewValidation(t *testing.T) {
	for _, size := range []int{-1, 0, 67, 100, 200} {
		_, err := New(size)
		require.Error(t, err, "size %d must be rejected", size)
	}

	for size := 1; size <= 66; size++ {
		h, err := New(size)
		require.NoError(t, err)
		require.Equal(t, size, h.Size())
		require.Equal(t, 200-2*size, h.BlockSize())
		require.Greater(t, h.BlockSize(), h.Size())
		require.Less(t, h.BlockSize(), 200)
	}
}

func TestPresetsMatchNew(t *testing.T) {
	msg := []byte("preset constructors are plain size presets")
	presets := []struct {
		size int
		h    *Hasher
	}{
		{Size224, New224()},
		{Size256, New256()},
		{Size384, New384()},
		{Size512, New512()},
	}

	for _, p := range presets {
		custom, err := New(p.size)
		require.NoError(t, err)
		require.Equal(t, custom.Size(), p.h.Size())
		require.Equal(t, custom.BlockSize(), p.h.BlockSize())

		custom.Write(msg)
		p.h.Write(msg)
		require.Equal(t, custom.Sum(nil), p.h.Sum(nil))
	}
}

func TestBlockSizes(t *testing.T) {
	require.Equal(t, 144, New224().BlockSize())
	require.Equal(t, 136, New256().BlockSize())
	require.Equal(t, 104, New384().BlockSize())
	require.Equal(t, 72, New512().BlockSize())
}

func TestOneShotMatchesStreaming(t *testing.T) {
	for _, size := range []int{Size224, Size256, Size384, Size512} {
		rate := 200 - 2*size
		for _, n := range []int{0, 1, rate - 1, rate, rate + 1, 2*rate + 17} {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i*11 + size)
			}

			want := oneShot(t, size, data)

			h, err := New(size)
			require.NoError(t, err)
			h.Write(data)
			require.Equal(t, want, h.Sum(nil),
				"size %d, input length %d", size, n)

			// The split into Write calls must not matter.
			h.Reset()
			for p := data; len(p) > 0; {
				c := min(23, len(p))
				h.Write(p[:c])
				p = p[c:]
			}
			require.Equal(t, want, h.Sum(nil),
				"size %d, input length %d, chunked", size, n)
		}
	}
}

func TestCustomSize(t *testing.T) {
	h1, err := New(17)
	require.NoError(t, err)
	h2, err := New(17)
	require.NoError(t, err)

	msg := []byte("custom sized digests")
	h1.Write(msg)
	h2.Write(msg)
	d1 := h1.Sum(nil)
	require.Len(t, d1, 17)
	require.Equal(t, d1, h2.Sum(nil))

	// A different size is a different function with its own capacity,
	// not a truncation of a wider digest.
	h3, err := New(18)
	require.NoError(t, err)
	h3.Write(msg)
	require.NotEqual(t, d1, h3.Sum(nil)[:17])
}

func TestSumAppends(t *testing.T) {
	h := New256()
	h.Write([]byte("hello"))
	out := h.Sum([]byte("prefix"))
	require.Equal(t, []byte("prefix"), out[:6])
	want := Sum256([]byte("hello"))
	require.Equal(t, want[:], out[6:])
}

func TestAvalanche(t *testing.T) {
	// The classic smoke check first: one trailing-character change.
	abc := Sum256([]byte("abc"))
	abd := Sum256([]byte("abd"))
	diff := 0
	for i := range abc {
		diff += bits.OnesCount8(abc[i] ^ abd[i])
	}
	require.Greater(t, diff, 64, "abc vs abd changed only %d output bits", diff)

	base := make([]byte, 64)
	for i := range base {
		base[i] = byte(i)
	}
	ref := Sum256(base)

	for bit := 0; bit < 16; bit++ {
		mut := make([]byte, len(base))
		copy(mut, base)
		mut[bit*3] ^= 1 << (bit % 8)

		got := Sum256(mut)
		diff := 0
		for i := range got {
			diff += bits.OnesCount8(got[i] ^ ref[i])
		}
		// A single flipped input bit should change roughly half of the
		// 256 output bits.
		require.Greater(t, diff, 64, "flipping bit %d changed only %d output bits", bit, diff)
	}
}

/*
	Package mhreg has no purpose except to perform registration of
	multihashes.

	It is meant to be used as a side-effecting import, e.g.

		import (
			_ "github.com/bellaj/keccak/mhreg"
		)

	This package registers hashers for the whole keccak family, including
	keccak-224 and keccak-384, which the default multihash registry does
	not cover because x/crypto ships no legacy constructors for them.
*/
package mhreg

import (
	"hash"

	multihash "github.com/multiformats/go-multihash/core"

	"github.com/bellaj/keccak"
)

func init() {
	multihash.Register(multihash.KECCAK_224, func() hash.Hash { return keccak.New224() })
	multihash.Register(multihash.KECCAK_256, func() hash.Hash { return keccak.New256() })
	multihash.Register(multihash.KECCAK_384, func() hash.Hash { return keccak.New384() })
	multihash.Register(multihash.KECCAK_512, func() hash.Hash { return keccak.New512() })
}

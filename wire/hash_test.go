//
// hash_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHashDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tweak := drawLabel(t)
		x := drawLabel(t)
		y := drawLabel(t)

		require.True(t, Hash(tweak, x).Equal(Hash(tweak, x)))
		require.True(t, Hash2(tweak, x, y).Equal(Hash2(tweak, x, y)))
	})
}

func TestHash2Asymmetric(t *testing.T) {
	tweak := NewTweak(1)
	x := Label{D1: 1}
	y := Label{D1: 2}
	require.False(t, Hash2(tweak, x, y).Equal(Hash2(tweak, y, x)))
}

func TestHashTweakSeparation(t *testing.T) {
	x := Label{D1: 0xdeadbeef}
	require.False(t, Hash(NewTweak(1), x).Equal(Hash(NewTweak(2), x)))
	require.False(t, Hash(NewTweak(1), x).Equal(Hash(NewOutputTweak(1, 1), x)))
}

func TestHashBack(t *testing.T) {
	rng := NewSeededRNG([32]byte{2})
	for _, q := range []uint16{2, 3, 5, 17, 101, 257} {
		for i := 0; i < 32; i++ {
			x := Rand(rng, q)
			y := x.HashBack(NewTweak(1), q)
			require.False(t, x.Equal(y), "q=%d", q)
			require.Equal(t, q, y.Modulus())
			for _, d := range y.Digits() {
				require.Less(t, d, q)
			}
		}
	}
}

func TestWireHash(t *testing.T) {
	rng := NewSeededRNG([32]byte{3})
	x := Rand(rng, 17)
	y := Rand(rng, 17)
	g := NewTweak(7)

	require.True(t, x.Hash(g).Equal(Hash(g, x.AsLabel())))
	require.True(t, x.Hash2(y, g).Equal(Hash2(g, x.AsLabel(), y.AsLabel())))
	require.True(t, x.HashBack2(y, g, 5).Equal(
		FromLabel(Hash2(g, x.AsLabel(), y.AsLabel()), 5)))
}

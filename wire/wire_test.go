//
// wire_test.go
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

func drawLabel(t *rapid.T) Label {
	return Label{
		D0: rapid.Uint64().Draw(t, "d0"),
		D1: rapid.Uint64().Draw(t, "d1"),
	}
}

func drawModulus(t *rapid.T) uint16 {
	return rapid.Uint16Range(2, 113).Draw(t, "q")
}

func TestPacking(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := drawModulus(t)
		// Normalize to a label representable in Digits(q) digits.
		v := FromLabel(drawLabel(t), q).AsLabel()

		x := FromLabel(v, q)
		require.True(t, v.Equal(x.AsLabel()))
		require.True(t, x.Equal(FromLabel(x.AsLabel(), q)))
	})
}

func TestBaseConversionLookup(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := rapid.Uint16Range(3, 255).Draw(t, "q")
		x := drawLabel(t)
		require.Equal(t, asBaseQ(x, q), lookupBaseQ(x, q))
	})
}

func TestDigitsLen(t *testing.T) {
	require.Equal(t, 128, Digits(2))
	require.Equal(t, 64, Digits(3))
	require.Equal(t, 9, Digits(1<<14))

	rapid.Check(t, func(t *rapid.T) {
		q := drawModulus(t)
		x := FromLabel(drawLabel(t), q)
		require.Len(t, x.Digits(), Digits(q))
		for _, d := range x.Digits() {
			require.Less(t, d, q)
		}
	})
}

func TestZero(t *testing.T) {
	require.Panics(t, func() { Zero(1) })
	require.Panics(t, func() { Zero(0) })

	rapid.Check(t, func(t *rapid.T) {
		q := drawModulus(t)
		z := Zero(q)
		for _, d := range z.Digits() {
			require.Equal(t, uint16(0), d)
		}
	})
}

func TestArithmetic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := drawModulus(t)
		x := FromLabel(drawLabel(t), q)
		y := FromLabel(drawLabel(t), q)

		require.True(t, x.Plus(Zero(q)).Equal(x))
		require.True(t, x.Minus(x).Equal(Zero(q)))
		require.True(t, x.Negate().Negate().Equal(x))
		require.True(t, x.Cmul(0).Equal(Zero(q)))
		require.True(t, x.Cmul(q).Equal(Zero(q)))
		require.True(t, x.Plus(x).Equal(x.Cmul(2)))
		require.True(t, x.Plus(x).Plus(x).Equal(x.Cmul(3)))

		if q == 2 {
			require.True(t, x.Plus(y).Equal(x.Minus(y)))
		} else {
			require.True(t, x.Plus(x.Negate()).Equal(Zero(q)))
			require.True(t, x.Minus(y).Equal(x.Plus(y.Negate())))
		}

		// In-place variants match.
		w := x.Plus(Zero(q))
		w.PlusEq(y)
		require.True(t, w.Equal(x.Plus(y)))

		w = x.Plus(Zero(q))
		w.CmulEq(2)
		require.True(t, w.Equal(x.Plus(x)))

		w = x.Plus(Zero(q))
		w.NegateEq()
		require.True(t, w.Equal(x.Negate()))

		w = x.Plus(Zero(q))
		w.MinusEq(y)
		require.True(t, w.Equal(x.Minus(y)))

		w = Zero(q)
		w.Set(x)
		require.True(t, w.Equal(x))
		w.SetZero()
		require.True(t, w.Equal(Zero(q)))
	})
}

func TestUnequalModuli(t *testing.T) {
	x := Zero(3)
	y := Zero(5)
	require.Panics(t, func() { x.Plus(y) })
	require.Panics(t, func() { x.Minus(y) })
	require.Panics(t, func() { x.Set(y) })
}

func TestRandDelta(t *testing.T) {
	rng := NewSeededRNG([32]byte{1})
	for _, q := range []uint16{2, 3, 5, 17, 101, 257, 1 << 14} {
		for i := 0; i < 16; i++ {
			d := RandDelta(rng, q)
			require.Equal(t, uint16(1), d.Color(), "q=%d", q)
		}
	}
}

func TestColor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := drawModulus(t)
		x := FromLabel(drawLabel(t), q)
		require.Equal(t, x.Digits()[0], x.Color())
	})
}

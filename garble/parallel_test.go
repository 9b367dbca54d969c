//
// parallel_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/markkurossi/garbling/circuit"
	"github.com/stretchr/testify/require"
)

// testCircuit builds a circuit exercising every gate kind with a
// diamond-shaped dependency graph.
func testCircuit() *circuit.Circuit {
	b := circuit.NewBuilder()
	xs := b.Inputs(4, 7)
	ys := b.Inputs(4, 5)
	k := b.Constant(3, 7)

	sum := b.AddMany(xs)
	sum = b.Add(sum, k)

	tt := make([]uint16, 5)
	for i := range tt {
		tt[i] = uint16(i+1) % 5
	}
	proj := b.Proj(ys[0], 5, tt)

	yao := make([][]uint16, 7)
	for a := range yao {
		yao[a] = make([]uint16, 5)
		for v := range yao[a] {
			yao[a][v] = uint16(a * v % 7)
		}
	}
	mixed := b.Yao(sum, proj, 7, yao)

	prod := b.HalfGate(sum, b.Sub(xs[0], xs[1]))
	scaled := b.Cmul(prod, 3)

	b.Output(mixed)
	b.Output(scaled)
	b.Output(b.HalfGate(sum, ys[1]))
	return b.Finish()
}

// The parallel driver is bit-for-bit equivalent to the sequential
// driver when both consume the same RNG stream.
func TestParallelEquivalence(t *testing.T) {
	c := testCircuit()
	seed := [32]byte{7, 7, 7}

	gb1, ev1 := GarbleSeeded(c, seed)
	for _, workers := range []int{0, 1, 2, 8} {
		gb2, ev2 := GarbleParallelSeeded(c, seed, workers)

		if diff := cmp.Diff(gb1.deltas, gb2.deltas); diff != "" {
			t.Fatalf("deltas differ (-seq +par):\n%s", diff)
		}
		if diff := cmp.Diff(gb1.inputs, gb2.inputs); diff != "" {
			t.Fatalf("inputs differ (-seq +par):\n%s", diff)
		}
		if diff := cmp.Diff(gb1.consts, gb2.consts); diff != "" {
			t.Fatalf("constants differ (-seq +par):\n%s", diff)
		}
		if diff := cmp.Diff(gb1.outputs, gb2.outputs); diff != "" {
			t.Fatalf("output tables differ (-seq +par):\n%s", diff)
		}
		if diff := cmp.Diff(ev1.gates, ev2.gates); diff != "" {
			t.Fatalf("garbled tables differ (-seq +par):\n%s", diff)
		}
		if diff := cmp.Diff(ev1.consts, ev2.consts); diff != "" {
			t.Fatalf("encoded constants differ (-seq +par):\n%s", diff)
		}
	}
}

func TestParallelEval(t *testing.T) {
	c := testCircuit()
	gb, ev := GarbleParallel(c, 4)

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 16; trial++ {
		inputs := make([]uint16, c.NInputs())
		for i := range inputs {
			inputs[i] = uint16(rng.Intn(int(c.InputMod(i))))
		}
		got := gb.Decode(ev.Eval(c, gb.Encode(inputs)))
		require.Equal(t, c.Eval(inputs), got, "inputs=%v", inputs)
	}
}

// Free-only circuits garble with an empty table array.
func TestParallelFreeOnly(t *testing.T) {
	b := circuit.NewBuilder()
	x := b.Input(11)
	y := b.Input(11)
	b.Output(b.Add(x, y))
	c := b.Finish()

	gb, ev := GarbleParallel(c, 4)
	require.Equal(t, 0, ev.Size())
	got := gb.Decode(ev.Eval(c, gb.Encode([]uint16{2, 7})))
	require.Equal(t, []uint16{9}, got)
}

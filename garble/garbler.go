//
// garbler.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"fmt"

	"github.com/markkurossi/garbling/wire"
)

// GarbledGate contains the ciphertexts of one non-free gate.
type GarbledGate []wire.Label

// Garbler holds the garbler's secrets: the per-modulus free-XOR
// offsets, the input and constant zero-labels, and the output
// decoding tables. The garbler owns the RNG; after the driver pass
// the state is immutable.
type Garbler struct {
	deltas  map[uint16]wire.Wire
	inputs  []wire.Wire
	consts  []wire.Wire
	outputs [][]wire.Label
	rng     *wire.RNG
}

// NewGarbler creates a new garbler drawing labels from rng.
func NewGarbler(rng *wire.RNG) *Garbler {
	return &Garbler{
		deltas: make(map[uint16]wire.Wire),
		rng:    rng,
	}
}

// createDelta returns the free-XOR offset for the modulus q,
// allocating it on first use.
func (gb *Garbler) createDelta(q uint16) wire.Wire {
	d, ok := gb.deltas[q]
	if !ok {
		d = wire.RandDelta(gb.rng, q)
		gb.deltas[q] = d
	}
	return d
}

func (gb *Garbler) delta(q uint16) wire.Wire {
	d, ok := gb.deltas[q]
	if !ok {
		panic(fmt.Sprintf("garble: no delta for modulus %d", q))
	}
	return d
}

// Input samples a fresh zero-label for a circuit input with the
// modulus q.
func (gb *Garbler) Input(q uint16) wire.Wire {
	w := wire.Rand(gb.rng, q)
	gb.inputs = append(gb.inputs, w)
	return w
}

// Constant samples a fresh zero-label for a circuit constant with the
// modulus q.
func (gb *Garbler) Constant(q uint16) wire.Wire {
	w := wire.Rand(gb.rng, q)
	gb.consts = append(gb.consts, w)
	return w
}

// Output records the decoding table for the output wire X at the
// output position i: one ciphertext per candidate output value.
func (gb *Garbler) Output(X wire.Wire, i int) {
	q := X.Modulus()
	D := gb.delta(q)

	cts := make([]wire.Label, q)
	for k := uint16(0); k < q; k++ {
		cts[k] = X.Plus(D.Cmul(k)).Hash(outputTweak(i, k))
	}
	gb.outputs = append(gb.outputs, cts)
}

// Encode encodes the garbler's plaintext input digits into wire
// labels.
func (gb *Garbler) Encode(inputs []uint16) []wire.Wire {
	if len(inputs) != len(gb.inputs) {
		panic(fmt.Sprintf("garble: encode: got %d inputs, need %d",
			len(inputs), len(gb.inputs)))
	}
	xs := make([]wire.Wire, len(inputs))
	for i, x := range inputs {
		X := gb.inputs[i]
		D := gb.delta(X.Modulus())
		xs[i] = X.Plus(D.Cmul(x))
	}
	return xs
}

// EncodeConsts encodes the circuit constants into wire labels.
func (gb *Garbler) EncodeConsts(consts []uint16) []wire.Wire {
	if len(consts) != len(gb.consts) {
		panic(fmt.Sprintf("garble: encode: got %d constants, need %d",
			len(consts), len(gb.consts)))
	}
	xs := make([]wire.Wire, len(consts))
	for i, x := range consts {
		X := gb.consts[i]
		D := gb.delta(X.Modulus())
		xs[i] = X.Plus(D.Cmul(x))
	}
	return xs
}

// Decode decodes the output labels ws against the recorded output
// decoding tables.
func (gb *Garbler) Decode(ws []wire.Wire) []uint16 {
	if len(ws) != len(gb.outputs) {
		panic(fmt.Sprintf("garble: decode: got %d outputs, need %d",
			len(ws), len(gb.outputs)))
	}
	outs := make([]uint16, len(ws))
	for i, w := range ws {
		q := w.Modulus()
		found := false
		for k := uint16(0); k < q; k++ {
			h := w.Hash(outputTweak(i, k))
			if h.Equal(gb.outputs[i][k]) {
				outs[i] = k
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("garble: decode: no ciphertext for output %d",
				i))
		}
	}
	return outs
}

// tweak is the unique hash tweak of the gate i.
func tweak(i int) wire.Label {
	return wire.NewTweak(uint64(i))
}

// outputTweak is the unique hash tweak of the output i, value guess
// k. The output number lives in the high 64 bits, so output tweaks
// with i > 0 are disjoint from gate tweaks; output 0 reuses the gate
// tweak of the gate number k.
func outputTweak(i int, k uint16) wire.Label {
	return wire.NewOutputTweak(uint64(i), k)
}

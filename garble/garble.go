//
// garble.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"fmt"

	"github.com/getamis/sirius/log"
	"github.com/markkurossi/garbling/circuit"
	"github.com/markkurossi/garbling/wire"
	"golang.org/x/crypto/chacha20"
)

// Garble garbles the circuit with a fresh random seed.
func Garble(c *circuit.Circuit) (*Garbler, *Evaluator) {
	return GarbleRNG(c, wire.NewRNG())
}

// GarbleSeeded garbles the circuit with an explicit seed.
func GarbleSeeded(c *circuit.Circuit, seed [chacha20.KeySize]byte) (
	*Garbler, *Evaluator) {
	return GarbleRNG(c, wire.NewSeededRNG(seed))
}

// GarbleRNG garbles the circuit drawing all labels from rng. It
// visits the gates in index order: free gates derive their zero-label
// from their predecessors, non-free gates emit a garbled table into
// the slot named by their gate ID.
func GarbleRNG(c *circuit.Circuit, rng *wire.RNG) (*Garbler, *Evaluator) {
	gb := NewGarbler(rng)
	gb.createDeltas(c)

	wires := make([]wire.Wire, len(c.Gates))
	tables := make([]GarbledGate, c.NumNonfree)

	for i, g := range c.Gates {
		q := c.Modulus(i)
		var w wire.Wire

		switch g.Op {
		case circuit.Input:
			w = gb.Input(q)

		case circuit.Const:
			w = gb.Constant(q)

		case circuit.Add:
			w = wires[g.X].Plus(wires[g.Y])

		case circuit.Sub:
			w = wires[g.X].Minus(wires[g.Y])

		case circuit.Cmul:
			w = wires[g.X].Cmul(g.C)

		case circuit.Proj:
			w, tables[g.ID] = gb.Proj(wires[g.X], q, g.TT, i)

		case circuit.Yao:
			w, tables[g.ID] = gb.Yao(wires[g.X], wires[g.Y], q, g.TT2, i)

		case circuit.HalfGate:
			w, tables[g.ID] = gb.HalfGate(wires[g.X], wires[g.Y], i)

		default:
			panic(fmt.Sprintf("garble: invalid operation %s", g.Op))
		}
		wires[i] = w
	}

	for i, r := range c.OutputRefs {
		gb.Output(wires[r], i)
	}

	ev := NewEvaluator(tables, gb.EncodeConsts(c.ConstVals))
	log.Debug("garbled circuit",
		"gates", len(c.Gates),
		"nonfree", c.NumNonfree,
		"size", ev.Size())

	return gb, ev
}

// createDeltas allocates the free-XOR offset for every modulus of the
// circuit, in first-seen gate order. The draw order is part of the
// garbler's deterministic RNG consumption.
func (gb *Garbler) createDeltas(c *circuit.Circuit) {
	for _, m := range c.Moduli {
		gb.createDelta(m)
	}
}

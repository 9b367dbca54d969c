//
// evaluator.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"fmt"

	"github.com/markkurossi/garbling/circuit"
	"github.com/markkurossi/garbling/wire"
)

// Evaluator holds the evaluator's view of a garbled circuit: the
// garbled tables indexed by gate ID and the encoded constant labels.
// The state is immutable after construction.
type Evaluator struct {
	gates  []GarbledGate
	consts []wire.Wire
}

// NewEvaluator creates an evaluator from the garbled tables and the
// encoded constants.
func NewEvaluator(gates []GarbledGate, consts []wire.Wire) *Evaluator {
	return &Evaluator{
		gates:  gates,
		consts: consts,
	}
}

// Size returns the total number of ciphertexts: the garbled table
// entries plus the encoded constants.
func (ev *Evaluator) Size() int {
	size := len(ev.consts)
	for _, g := range ev.gates {
		size += len(g)
	}
	return size
}

func (ev *Evaluator) gate(id int) GarbledGate {
	if id < 0 || id >= len(ev.gates) {
		panic(fmt.Sprintf("garble: eval: gate ID %d out of range", id))
	}
	return ev.gates[id]
}

// Eval propagates the input labels through the circuit and returns
// the output labels, in output reference order.
func (ev *Evaluator) Eval(c *circuit.Circuit, inputs []wire.Wire) []wire.Wire {
	wires := make([]wire.Wire, len(c.Gates))

	for i, gt := range c.Gates {
		q := c.Modulus(i)
		var w wire.Wire

		switch gt.Op {
		case circuit.Input:
			w = inputs[gt.ID]

		case circuit.Const:
			w = ev.consts[gt.ID]

		case circuit.Add:
			w = wires[gt.X].Plus(wires[gt.Y])

		case circuit.Sub:
			w = wires[gt.X].Minus(wires[gt.Y])

		case circuit.Cmul:
			w = wires[gt.X].Cmul(gt.C)

		case circuit.Proj:
			x := wires[gt.X]
			g := tweak(i)
			if x.Color() == 0 {
				w = x.HashBack(g, q)
			} else {
				ct := ev.gate(gt.ID)[x.Color()-1]
				ct.Xor(x.Hash(g))
				w = wire.FromLabel(ct, q)
			}

		case circuit.Yao:
			a := wires[gt.X]
			b := wires[gt.Y]
			g := tweak(i)
			if a.Color() == 0 && b.Color() == 0 {
				w = a.HashBack2(b, g, q)
			} else {
				qb := c.Modulus(gt.Y)
				ix := int(a.Color())*int(qb) + int(b.Color())
				ct := ev.gate(gt.ID)[ix-1]
				ct.Xor(a.Hash2(b, g))
				w = wire.FromLabel(ct, q)
			}

		case circuit.HalfGate:
			A := wires[gt.X]
			B := wires[gt.Y]
			g := tweak(i)

			// Garbler's half gate.
			var L wire.Wire
			if A.Color() == 0 {
				L = A.HashBack(g, q)
			} else {
				ct := ev.gate(gt.ID)[A.Color()-1]
				ct.Xor(A.Hash(g))
				L = wire.FromLabel(ct, q)
			}

			// Evaluator's half gate.
			var R wire.Wire
			if B.Color() == 0 {
				R = B.HashBack(g, q)
			} else {
				ct := ev.gate(gt.ID)[int(q)-1+int(B.Color())-1]
				ct.Xor(B.Hash(g))
				R = wire.FromLabel(ct, q)
			}

			w = L.Plus(R).Plus(A.Cmul(B.Color()))

		default:
			panic(fmt.Sprintf("garble: eval: invalid operation %s", gt.Op))
		}
		wires[i] = w
	}

	outs := make([]wire.Wire, len(c.OutputRefs))
	for i, r := range c.OutputRefs {
		outs[i] = wires[r]
	}
	return outs
}

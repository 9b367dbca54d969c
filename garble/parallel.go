//
// parallel.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"fmt"
	"runtime"

	"github.com/getamis/sirius/log"
	"github.com/markkurossi/garbling/circuit"
	"github.com/markkurossi/garbling/wire"
	"golang.org/x/crypto/chacha20"
)

// GarbleParallel garbles the circuit with a worker pool. A
// non-positive worker count uses the hardware parallelism. The output
// is bit-for-bit identical to the sequential Garble with the same
// RNG: all RNG consumption happens in a sequential pre-phase and the
// garbled tables are addressed by gate ID, never by completion order.
func GarbleParallel(c *circuit.Circuit, workers int) (*Garbler, *Evaluator) {
	return GarbleParallelRNG(c, wire.NewRNG(), workers)
}

// GarbleParallelSeeded garbles the circuit in parallel with an
// explicit seed.
func GarbleParallelSeeded(c *circuit.Circuit, seed [chacha20.KeySize]byte,
	workers int) (*Garbler, *Evaluator) {
	return GarbleParallelRNG(c, wire.NewSeededRNG(seed), workers)
}

type parallelResult struct {
	idx   int
	w     wire.Wire
	table GarbledGate
}

// GarbleParallelRNG garbles the circuit with a worker pool, drawing
// all labels from rng.
func GarbleParallelRNG(c *circuit.Circuit, rng *wire.RNG, workers int) (
	*Garbler, *Evaluator) {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	gb := NewGarbler(rng)

	// Sequential pre-phase: the deltas and the input and constant
	// zero-labels consume the RNG in the same order as the
	// sequential driver. The garbler state is read-only below.
	gb.createDeltas(c)

	wires := make([]wire.Wire, len(c.Gates))
	tables := make([]GarbledGate, c.NumNonfree)

	ndeps := make([]int, len(c.Gates))
	dependents := make([][]int, len(c.Gates))
	var remaining int

	for i, g := range c.Gates {
		switch g.Op {
		case circuit.Input:
			wires[i] = gb.Input(c.Modulus(i))

		case circuit.Const:
			wires[i] = gb.Constant(c.Modulus(i))

		case circuit.Add, circuit.Sub, circuit.Yao, circuit.HalfGate:
			ndeps[i] = 2
			dependents[g.X] = append(dependents[g.X], i)
			dependents[g.Y] = append(dependents[g.Y], i)
			remaining++

		case circuit.Cmul, circuit.Proj:
			ndeps[i] = 1
			dependents[g.X] = append(dependents[g.X], i)
			remaining++

		default:
			panic(fmt.Sprintf("garble: invalid operation %s", g.Op))
		}
	}

	jobs := make(chan int, len(c.Gates))
	results := make(chan parallelResult, len(c.Gates))

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				g := &c.Gates[i]
				q := c.Modulus(i)
				res := parallelResult{
					idx: i,
				}
				switch g.Op {
				case circuit.Add:
					res.w = wires[g.X].Plus(wires[g.Y])
				case circuit.Sub:
					res.w = wires[g.X].Minus(wires[g.Y])
				case circuit.Cmul:
					res.w = wires[g.X].Cmul(g.C)
				case circuit.Proj:
					res.w, res.table = gb.Proj(wires[g.X], q, g.TT, i)
				case circuit.Yao:
					res.w, res.table = gb.Yao(wires[g.X], wires[g.Y], q,
						g.TT2, i)
				case circuit.HalfGate:
					res.w, res.table = gb.HalfGate(wires[g.X], wires[g.Y], i)
				}
				results <- res
			}
		}()
	}

	// Seed the pool with the gates whose predecessors are all
	// inputs or constants.
	enqueue := func(src int) {
		for _, d := range dependents[src] {
			ndeps[d]--
			if ndeps[d] == 0 {
				jobs <- d
			}
		}
	}
	for i, g := range c.Gates {
		switch g.Op {
		case circuit.Input, circuit.Const:
			enqueue(i)
		}
	}

	// Completion loop: the output zero-label is published into
	// wires[i] before any dependent is dispatched; the dispatch
	// through the jobs channel orders the write before the
	// dependent's read.
	for remaining > 0 {
		res := <-results
		wires[res.idx] = res.w
		if res.table != nil {
			tables[c.Gates[res.idx].ID] = res.table
		}
		remaining--
		enqueue(res.idx)
	}
	close(jobs)

	for i, r := range c.OutputRefs {
		gb.Output(wires[r], i)
	}

	ev := NewEvaluator(tables, gb.EncodeConsts(c.ConstVals))
	log.Debug("garbled circuit in parallel",
		"gates", len(c.Gates),
		"workers", workers,
		"size", ev.Size())

	return gb, ev
}

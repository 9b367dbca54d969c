//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/markkurossi/garbling/circuit"
	"github.com/markkurossi/garbling/garble"
)

func main() {
	q := flag.Uint("q", 17, "wire modulus")
	n := flag.Int("n", 8, "number of inputs")
	workers := flag.Int("workers", 0, "parallel garbling workers, 0=sequential")
	dump := flag.Bool("dump", false, "dump the gate list")
	flag.Parse()

	if *q < 2 || *q > 1<<14 {
		log.Fatalf("invalid modulus %d", *q)
	}
	mod := uint16(*q)

	// z0 = x0 + x1 + ... + xn-1, z1 = x0 * x1.
	b := circuit.NewBuilder()
	xs := b.Inputs(*n, mod)
	b.Output(b.AddMany(xs))
	b.Output(b.HalfGate(xs[0], xs[1]))
	c := b.Finish()

	if *dump {
		c.Dump()
	}

	var gb *garble.Garbler
	var ev *garble.Evaluator
	if *workers > 0 {
		gb, ev = garble.GarbleParallel(c, *workers)
	} else {
		gb, ev = garble.Garble(c)
	}

	inputs := make([]uint16, *n)
	for i := range inputs {
		inputs[i] = uint16(rand.Intn(int(mod)))
	}

	labels := gb.Encode(inputs)
	outputs := gb.Decode(ev.Eval(c, labels))
	expected := c.Eval(inputs)

	fmt.Printf("inputs  : %v (mod %d)\n", inputs, mod)
	fmt.Printf("sum     : %d, product: %d\n", outputs[0], outputs[1])

	for i, out := range outputs {
		if out != expected[i] {
			log.Fatalf("output %d: got %d, expected %d", i, out, expected[i])
		}
	}

	garble.Count(c).Tabulate(os.Stdout)
	fmt.Printf("total ciphertexts: %d\n", ev.Size())
}

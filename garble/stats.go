//
// stats.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"fmt"
	"io"

	"github.com/markkurossi/garbling/circuit"
	"github.com/markkurossi/garbling/wire"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Stats counts the gates and garbled table sizes of a circuit.
type Stats struct {
	Gates       map[circuit.Op]int
	Ciphertexts map[circuit.Op]int
	Moduli      []uint16
	Consts      int
}

// Count computes the garbling statistics of the circuit.
func Count(c *circuit.Circuit) *Stats {
	stats := &Stats{
		Gates:       make(map[circuit.Op]int),
		Ciphertexts: make(map[circuit.Op]int),
		Consts:      len(c.ConstVals),
	}
	seen := make(map[uint16]bool)

	for i, g := range c.Gates {
		q := c.Modulus(i)
		if !seen[q] {
			seen[q] = true
			stats.Moduli = append(stats.Moduli, q)
		}
		stats.Gates[g.Op]++

		switch g.Op {
		case circuit.Proj:
			stats.Ciphertexts[g.Op] += int(c.Modulus(g.X)) - 1
		case circuit.Yao:
			stats.Ciphertexts[g.Op] +=
				int(c.Modulus(g.X))*int(c.Modulus(g.Y)) - 1
		case circuit.HalfGate:
			stats.Ciphertexts[g.Op] +=
				int(c.Modulus(g.X)) + int(c.Modulus(g.Y)) - 2
		}
	}
	return stats
}

// Size returns the total ciphertext count: the garbled table entries
// plus the encoded constants.
func (stats *Stats) Size() int {
	size := stats.Consts
	for _, n := range stats.Ciphertexts {
		size += n
	}
	return size
}

// Tabulate prints the statistics to out.
func (stats *Stats) Tabulate(out io.Writer) {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Op")
	tab.Header("Gates").SetAlign(tabulate.MR)
	tab.Header("Ciphertexts").SetAlign(tabulate.MR)

	for op := circuit.Input; op <= circuit.HalfGate; op++ {
		count, ok := stats.Gates[op]
		if !ok {
			continue
		}
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", count))
		row.Column(fmt.Sprintf("%d", stats.Ciphertexts[op]))
	}
	row := tab.Row()
	row.Column("CONST CT")
	row.Column("")
	row.Column(fmt.Sprintf("%d", stats.Consts))
	tab.Print(out)

	tab = tabulate.New(tabulate.Unicode)
	tab.Header("Mod").SetAlign(tabulate.MR)
	tab.Header("Digits").SetAlign(tabulate.MR)
	tab.Header("Label space").SetAlign(tabulate.MR)

	for _, q := range stats.Moduli {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", q))
		row.Column(fmt.Sprintf("%d", wire.Digits(q)))
		row.Column(fmt.Sprintf("%d%s", q,
			superscript.Itoa(wire.Digits(q))))
	}
	tab.Print(out)
}

//
// gates.go
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

// Proj garbles a projection gate applying the truth table tt to the
// input zero-label A, producing a wire of the modulus qOut. It
// returns the output zero-label and qIn-1 ciphertexts: the row whose
// color index is zero is never emitted, the evaluator derives it from
// the hash alone.
func (gb *Garbler) Proj(A wire.Wire, qOut uint16, tt []uint16,
	gateNum int) (wire.Wire, GarbledGate) {

	qIn := A.Modulus()
	if len(tt) != int(qIn) {
		panic(fmt.Sprintf("garble: proj: table size %d for mod %d",
			len(tt), qIn))
	}
	gate := make(GarbledGate, qIn-1)

	tao := A.Color()
	g := tweak(gateNum)

	Din := gb.delta(qIn)
	Dout := gb.delta(qOut)

	// Row reduction: the zero-colored row is never emitted. The
	// output zero-label is chosen so that hashing the zero-colored
	// input label yields its output label directly; the sign
	// convention here and in the evaluator must match.
	C := A.Minus(Din.Cmul(tao)).
		HashBack(g, qOut).
		Minus(Dout.Cmul(tt[(qIn-tao)%qIn]))

	for x := uint16(0); x < qIn; x++ {
		ix := (int(tao) + int(x)) % int(qIn)
		if ix == 0 {
			continue
		}
		A_ := A.Plus(Din.Cmul(x))
		C_ := C.Plus(Dout.Cmul(tt[x]))

		ct := A_.Hash(g)
		ct.Xor(C_.AsLabel())
		gate[ix-1] = ct
	}
	return C, gate
}

// Yao garbles an arbitrary two-input gate with the truth table tt,
// producing a wire of the modulus q. The (0,0)-colored row is row
// reduced away like in Proj.
func (gb *Garbler) Yao(A, B wire.Wire, q uint16, tt [][]uint16,
	gateNum int) (wire.Wire, GarbledGate) {

	qa := A.Modulus()
	qb := B.Modulus()
	if len(tt) != int(qa) {
		panic(fmt.Sprintf("garble: yao: table size %d for mod %d",
			len(tt), qa))
	}
	gate := make(GarbledGate, int(qa)*int(qb)-1)

	g := tweak(gateNum)

	Da := gb.delta(qa)
	Db := gb.delta(qb)
	Dq := gb.delta(q)

	// sigma is the output truth value of the 0,0-colored labels.
	sigma := tt[(qa-A.Color())%qa][(qb-B.Color())%qb]

	C := A.Minus(Da.Cmul(A.Color())).
		HashBack2(B.Minus(Db.Cmul(B.Color())), g, q).
		Minus(Dq.Cmul(sigma))

	for x := uint16(0); x < qa; x++ {
		A_ := A.Plus(Da.Cmul(x))
		for y := uint16(0); y < qb; y++ {
			ix := int((A.Color()+x)%qa)*int(qb) + int((B.Color()+y)%qb)
			if ix == 0 {
				continue
			}
			B_ := B.Plus(Db.Cmul(y))
			C_ := C.Plus(Dq.Cmul(tt[x][y]))

			ct := A_.Hash2(B_, g)
			ct.Xor(C_.AsLabel())
			gate[ix-1] = ct
		}
	}
	return C, gate
}

// HalfGate garbles a multiplication gate of the zero-labels A and B.
// The wires must have the same modulus; mixed-modulus products are
// lowered by the circuit builder through a modulus conversion, since
// the evaluator's color correction is only sound when B's color
// arithmetic happens in the output modulus. The construction splits
// into a garbler half keyed by B's color and an evaluator half
// correcting with the input label A, 2q-2 ciphertexts in total.
func (gb *Garbler) HalfGate(A, B wire.Wire, gateNum int) (
	wire.Wire, GarbledGate) {

	q := A.Modulus()
	if B.Modulus() != q {
		panic(fmt.Sprintf("garble: halfgate: unequal moduli %d != %d",
			q, B.Modulus()))
	}
	gate := make(GarbledGate, 2*int(q)-2)
	g := tweak(gateNum)

	// Secret color offset known only to the garbler; the evaluator
	// learns b+r.
	r := B.Color()

	D := gb.delta(q)

	// X = H(A+alpha*D) + alpha*r*D such that alpha + A.Color() == 0.
	alpha := (q - A.Color()) % q
	X := A.Plus(D.Cmul(alpha)).HashBack(g, q).
		Plus(D.Cmul(uint16(uint32(alpha) * uint32(r) % uint32(q))))

	// Y = H(B+beta*D) such that beta + B.Color() == 0.
	beta := (q - B.Color()) % q
	Y := B.Plus(D.Cmul(beta)).HashBack(g, q)

	// Garbler's half gate: G = H(A+aD) + X-arD.
	for a := uint16(0); a < q; a++ {
		A_ := A.Plus(D.Cmul(a))
		if A_.Color() == 0 {
			continue
		}
		tao := uint16(uint32(a) * uint32(q-r) % uint32(q))

		ct := A_.Hash(g)
		ct.Xor(X.Plus(D.Cmul(tao)).AsLabel())
		gate[A_.Color()-1] = ct
	}

	// Evaluator's half gate: G = H(B+bD) + Y-(b+r)A.
	for b := uint16(0); b < q; b++ {
		B_ := B.Plus(D.Cmul(b))
		if B_.Color() == 0 {
			continue
		}
		ct := B_.Hash(g)
		ct.Xor(Y.Minus(A.Cmul((b + r) % q)).AsLabel())
		gate[int(q)-1+int(B_.Color())-1] = ct
	}

	return X.Plus(Y), gate
}

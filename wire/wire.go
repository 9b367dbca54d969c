//
// wire.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"fmt"
)

// Wire implements a garbled circuit wire label: a vector of digits
// modulo q, packed into a 128-bit label. Binary wires (q=2) carry the
// packed label directly so that digit operations act on all 128 bit
// lanes at once.
type Wire struct {
	q   uint16
	val Label    // q == 2
	ds  []uint16 // q > 2
}

// Zero returns the all-zero-digit wire for the modulus q.
func Zero(q uint16) Wire {
	switch q {
	case 0, 1:
		panic(fmt.Sprintf("wire: zero: invalid modulus %d", q))
	case 2:
		return Wire{q: 2}
	default:
		return Wire{q: q, ds: make([]uint16, Digits(q))}
	}
}

// FromLabel converts the 128-bit label into a wire of base-q digits.
// The digits are truncated to Digits(q) so the wire packs back into
// one label.
func FromLabel(x Label, q uint16) Wire {
	if q == 2 {
		return Wire{q: 2, val: x}
	} else if q < lookupMaxMod {
		return Wire{q: q, ds: lookupBaseQ(x, q)}
	}
	return Wire{q: q, ds: asBaseQ(x, q)}
}

// Rand samples a uniform wire for the modulus q.
func Rand(rng *RNG, q uint16) Wire {
	return FromLabel(rng.Label(), q)
}

// RandDelta samples a free-XOR offset wire for the modulus q. Its
// color digit is forced to 1 so that adding k*delta advances the
// color by k mod q.
func RandDelta(rng *RNG, q uint16) Wire {
	w := Rand(rng, q)
	if w.q == 2 {
		w.val.D1 |= 1
	} else {
		w.ds[0] = 1
	}
	return w
}

// Modulus returns the modulus of the wire.
func (w Wire) Modulus() uint16 {
	return w.q
}

// Digits returns the digit vector of the wire. For binary wires it
// expands the 128 packed bits.
func (w Wire) Digits() []uint16 {
	if w.q == 2 {
		ds := make([]uint16, 128)
		for i := 0; i < 128; i++ {
			ds[i] = w.val.Bit(i)
		}
		return ds
	}
	ds := make([]uint16, len(w.ds))
	copy(ds, w.ds)
	return ds
}

// Color returns the point-and-permute color of the wire: digit 0, or
// bit 0 for binary wires.
func (w Wire) Color() uint16 {
	if w.q == 2 {
		return uint16(w.val.D1 & 1)
	}
	return w.ds[0]
}

// AsLabel packs the wire digits into a 128-bit label.
func (w Wire) AsLabel() Label {
	if w.q == 2 {
		return w.val
	}
	return fromBaseQ(w.ds, w.q)
}

// Equal tests if the wires are equal.
func (w Wire) Equal(o Wire) bool {
	if w.q != o.q {
		return false
	}
	if w.q == 2 {
		return w.val.Equal(o.val)
	}
	if len(w.ds) != len(o.ds) {
		return false
	}
	for i, d := range w.ds {
		if d != o.ds[i] {
			return false
		}
	}
	return true
}

func (w Wire) String() string {
	return fmt.Sprintf("%d|%s", w.q, w.AsLabel())
}

func (w Wire) check(o Wire, op string) {
	if w.q != o.q {
		panic(fmt.Sprintf("wire: %s: unequal moduli %d != %d", op, w.q, o.q))
	}
}

// Plus returns the digit-wise sum of the wires mod q.
func (w Wire) Plus(o Wire) Wire {
	z := w.clone()
	z.PlusEq(o)
	return z
}

// PlusEq adds the wire o into w digit-wise mod q.
func (w *Wire) PlusEq(o Wire) {
	w.check(o, "plus")
	if w.q == 2 {
		w.val.Xor(o.val)
		return
	}
	for i, y := range o.ds {
		// (x+y) with a single conditional reduction: both
		// digits are already < q.
		x := w.ds[i] + y
		if x >= w.q {
			x -= w.q
		}
		w.ds[i] = x
	}
}

// Negate returns the digit-wise additive inverse of the wire. Binary
// wires are bitwise inverted instead.
func (w Wire) Negate() Wire {
	z := w.clone()
	z.NegateEq()
	return z
}

// NegateEq negates the wire in place.
func (w *Wire) NegateEq() {
	if w.q == 2 {
		w.val.Not()
		return
	}
	for i, d := range w.ds {
		if d > 0 {
			w.ds[i] = w.q - d
		}
	}
}

// Minus returns the digit-wise difference of the wires mod q.
func (w Wire) Minus(o Wire) Wire {
	z := w.clone()
	z.MinusEq(o)
	return z
}

// MinusEq subtracts the wire o from w in place.
func (w *Wire) MinusEq(o Wire) {
	w.check(o, "minus")
	if w.q == 2 {
		w.val.Xor(o.val)
		return
	}
	w.PlusEq(o.Negate())
}

// Cmul returns the wire multiplied digit-wise by the constant c.
func (w Wire) Cmul(c uint16) Wire {
	z := w.clone()
	z.CmulEq(c)
	return z
}

// CmulEq multiplies the wire digit-wise by the constant c in place.
func (w *Wire) CmulEq(c uint16) {
	if w.q == 2 {
		if c&1 == 0 {
			w.val = Label{}
		}
		return
	}
	for i, d := range w.ds {
		w.ds[i] = uint16(uint32(d) * uint32(c) % uint32(w.q))
	}
}

// Set copies the digits of the wire o into w.
func (w *Wire) Set(o Wire) {
	w.check(o, "set")
	if w.q == 2 {
		w.val = o.val
		return
	}
	copy(w.ds, o.ds)
}

// SetZero clears all digits of the wire.
func (w *Wire) SetZero() {
	if w.q == 2 {
		w.val = Label{}
		return
	}
	for i := range w.ds {
		w.ds[i] = 0
	}
}

func (w Wire) clone() Wire {
	if w.q == 2 {
		return w
	}
	ds := make([]uint16, len(w.ds))
	copy(ds, w.ds)
	return Wire{q: w.q, ds: ds}
}

// Hash hashes the wire with the tweak.
func (w Wire) Hash(tweak Label) Label {
	return Hash(tweak, w.AsLabel())
}

// Hash2 hashes the wire pair with the tweak.
func (w Wire) Hash2(o Wire, tweak Label) Label {
	return Hash2(tweak, w.AsLabel(), o.AsLabel())
}

// HashBack hashes the wire and converts the digest into a wire of the
// modulus q.
func (w Wire) HashBack(tweak Label, q uint16) Wire {
	return FromLabel(w.Hash(tweak), q)
}

// HashBack2 hashes the wire pair and converts the digest into a wire
// of the modulus q.
func (w Wire) HashBack2(o Wire, tweak Label, q uint16) Wire {
	return FromLabel(w.Hash2(o, tweak), q)
}

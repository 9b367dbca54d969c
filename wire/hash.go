//
// hash.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"crypto/aes"
	"crypto/cipher"
)

// FixedKey is the public AES key of the correlation-robust hash. Both
// parties use the same process-wide key; secrecy comes from the wire
// labels, not from the key.
var FixedKey = [16]byte{
	0x24, 0x3f, 0x6a, 0x88, 0x85, 0xa3, 0x08, 0xd3,
	0x13, 0x19, 0x8a, 0x2e, 0x03, 0x70, 0x73, 0x44,
}

var fixedAES cipher.Block

func init() {
	var err error
	fixedAES, err = aes.NewCipher(FixedKey[:])
	if err != nil {
		panic(err)
	}
}

func pi(k Label) Label {
	var data LabelData
	k.GetData(&data)
	fixedAES.Encrypt(data[:], data[:])

	var out Label
	out.SetData(&data)
	out.Xor(k)

	return out
}

// Hash is the correlation-robust hash H(tweak, x) = pi(K) xor K where
// K = 2x xor tweak.
func Hash(tweak, x Label) Label {
	x.Mul2()
	x.Xor(tweak)
	return pi(x)
}

// Hash2 is the two-operand hash H2(tweak, x, y) = pi(K) xor K where
// K = 2x xor 4y xor tweak. The operands enter with different
// multipliers so H2(t, x, y) != H2(t, y, x) in general.
func Hash2(tweak, x, y Label) Label {
	x.Mul2()
	y.Mul4()
	x.Xor(y)
	x.Xor(tweak)
	return pi(x)
}

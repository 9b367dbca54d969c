//
// rng.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20"
)

// RNG produces uniform 128-bit labels from a ChaCha20 stream. A
// seeded RNG replays the same label sequence, which keeps parallel
// garbling comparable with the sequential reference.
type RNG struct {
	stream *chacha20.Cipher
}

// NewRNG creates an RNG seeded from the system random source.
func NewRNG() *RNG {
	var seed [chacha20.KeySize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	return NewSeededRNG(seed)
}

// NewSeededRNG creates an RNG with an explicit seed.
func NewSeededRNG(seed [chacha20.KeySize]byte) *RNG {
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:],
		make([]byte, chacha20.NonceSize))
	if err != nil {
		panic(err)
	}
	return &RNG{
		stream: stream,
	}
}

// Label returns the next 128-bit label from the stream.
func (r *RNG) Label() Label {
	var zero, buf LabelData
	r.stream.XORKeyStream(buf[:], zero[:])

	var l Label
	l.SetData(&buf)
	return l
}

//
// marshal.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	// MAGIC identifies the wire serialisation format.
	MAGIC = 0x66677731 // fgw1

	tagMod2 = 2
)

// Marshal writes the wire to out.
func (w Wire) Marshal(out io.Writer) error {
	if err := binary.Write(out, binary.BigEndian, w.q); err != nil {
		return err
	}
	if w.q == 2 {
		var data LabelData
		_, err := out.Write(w.val.Bytes(&data))
		return err
	}
	if err := binary.Write(out, binary.BigEndian,
		uint16(len(w.ds))); err != nil {
		return err
	}
	return binary.Write(out, binary.BigEndian, w.ds)
}

// UnmarshalWire reads a wire from in.
func UnmarshalWire(in io.Reader) (Wire, error) {
	var q uint16
	if err := binary.Read(in, binary.BigEndian, &q); err != nil {
		return Wire{}, errors.Wrap(err, "wire modulus")
	}
	if q < 2 {
		return Wire{}, errors.Errorf("invalid wire modulus %d", q)
	}
	if q == tagMod2 {
		var data LabelData
		if _, err := io.ReadFull(in, data[:]); err != nil {
			return Wire{}, errors.Wrap(err, "wire label")
		}
		var val Label
		val.SetBytes(data[:])
		return Wire{q: 2, val: val}, nil
	}
	var count uint16
	if err := binary.Read(in, binary.BigEndian, &count); err != nil {
		return Wire{}, errors.Wrap(err, "wire digit count")
	}
	if int(count) != Digits(q) {
		return Wire{}, errors.Errorf("invalid digit count %d for mod %d",
			count, q)
	}
	ds := make([]uint16, count)
	if err := binary.Read(in, binary.BigEndian, ds); err != nil {
		return Wire{}, errors.Wrap(err, "wire digits")
	}
	for _, d := range ds {
		if d >= q {
			return Wire{}, errors.Errorf("wire digit %d >= modulus %d", d, q)
		}
	}
	return Wire{q: q, ds: ds}, nil
}

// MarshalWires serialises a slice of wires into bytes.
func MarshalWires(ws []Wire) []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.BigEndian, uint32(MAGIC))
	binary.Write(buf, binary.BigEndian, uint32(len(ws)))
	for _, w := range ws {
		w.Marshal(buf)
	}
	return buf.Bytes()
}

// UnmarshalWires deserialises a slice of wires from bytes.
func UnmarshalWires(data []byte) ([]Wire, error) {
	in := bytes.NewReader(data)

	var magic, count uint32
	if err := binary.Read(in, binary.BigEndian, &magic); err != nil {
		return nil, errors.Wrap(err, "wire magic")
	}
	if magic != MAGIC {
		return nil, errors.Errorf("invalid wire magic %08x", magic)
	}
	if err := binary.Read(in, binary.BigEndian, &count); err != nil {
		return nil, errors.Wrap(err, "wire count")
	}
	ws := make([]Wire, count)
	for i := 0; i < int(count); i++ {
		w, err := UnmarshalWire(in)
		if err != nil {
			return nil, errors.Wrapf(err, "wire %d", i)
		}
		ws[i] = w
	}
	return ws, nil
}

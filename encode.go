package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// encode turns a plaintext query script into the obfuscated stream that
// process decodes back to it. The accumulator is reproduced by replaying
// the union queries against a throwaway structure.
func encode(r io.Reader, w io.Writer, maxVertices int) error {
	in := NewTokenReader(r)
	n, q, err := readHeader(in, maxVertices)
	if err != nil {
		return err
	}
	uf := NewUnionFind(int(n))
	f := uint64(0)
	fmt.Fprintf(w, "%d %d\n", n, q)
	for i := int64(0); i < q; i++ {
		op := in.ReadWord()
		x := in.ReadInt64()
		y := in.ReadInt64()
		if in.Err() != nil {
			return errors.Wrapf(in.Err(), "could not read record %d", i)
		}
		if x < 0 || x >= n || y < 0 || y >= n {
			return fmt.Errorf("record %d: vertex out of range: %s %d %d", i, op, x, y)
		}
		union := i%2 == 0
		switch op {
		case "U":
			if !union {
				return fmt.Errorf("record %d: union at odd index", i)
			}
		case "C":
			if union {
				return fmt.Errorf("record %d: connectivity check at even index", i)
			}
		default:
			return fmt.Errorf("record %d: unknown op: %q", i, op)
		}
		a := int64(uint64(x) ^ f)
		b := int64(uint64(y) ^ f)
		fmt.Fprintf(w, "%d %d\n", a, b)
		if union {
			uf.Merge(int(x), int(y))
		}
		f += uint64(uf.Count())
	}
	return nil
}

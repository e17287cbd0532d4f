package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type processOptions struct {
	MaxVertices int
	Trace       io.Writer
}

func readHeader(in *tokenReader, maxVertices int) (int64, int64, error) {
	n := in.ReadInt64()
	q := in.ReadInt64()
	if in.Err() != nil {
		return 0, 0, errors.Wrap(in.Err(), "could not read header")
	}
	if n < 0 || q < 0 {
		return 0, 0, fmt.Errorf("invalid header: N=%d Q=%d", n, q)
	}
	if maxVertices > 0 && n > int64(maxVertices) {
		return 0, 0, fmt.Errorf("vertex count %d exceeds maximum %d", n, maxVertices)
	}
	if n == 0 && q > 0 {
		return 0, 0, fmt.Errorf("cannot decode %d queries over an empty vertex set", q)
	}
	return n, q, nil
}

func process(r io.Reader, w io.Writer, opts processOptions) error {
	in := NewTokenReader(r)
	n, q, err := readHeader(in, opts.MaxVertices)
	if err != nil {
		return err
	}
	uf := NewUnionFind(int(n))
	dec := NewDecoder(int(n))
	for i := int64(0); i < q; i++ {
		a := in.ReadInt64()
		b := in.ReadInt64()
		if in.Err() != nil {
			return errors.Wrapf(in.Err(), "could not read query %d", i)
		}
		x, y := dec.Decode(a, b)
		kind := "check"
		if i%2 == 0 {
			kind = "merge"
			uf.Merge(x, y)
		} else {
			if uf.Find(x) == uf.Find(y) {
				fmt.Fprintln(w, "1")
			} else {
				fmt.Fprintln(w, "0")
			}
		}
		dec.Feed(uf.Count())
		if opts.Trace != nil {
			fmt.Fprintf(opts.Trace, "query %d: %s %d %d components=%d f=%d\n",
				i, kind, x, y, uf.Count(), dec.F())
		}
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

type tokenReader struct {
	r      *bufio.Reader
	tokens int
	err    error
}

func NewTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{
		r: bufio.NewReader(r),
	}
}

func (r *tokenReader) Err() error {
	return r.err
}

func isTokenSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (r *tokenReader) next() string {
	tok := []byte{}
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				break
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			r.err = err
			return ""
		}
		if isTokenSpace(b) {
			if len(tok) > 0 {
				break
			}
			continue
		}
		tok = append(tok, b)
	}
	r.tokens += 1
	return string(tok)
}

func (r *tokenReader) ReadWord() string {
	if r.err != nil {
		return ""
	}
	return r.next()
}

func (r *tokenReader) ReadInt64() int64 {
	if r.err != nil {
		return 0
	}
	tok := r.next()
	if r.err != nil {
		return 0
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("token %d: invalid integer: %q", r.tokens, tok)
		return 0
	}
	return n
}

package main

// Decoder recovers vertex indices from an obfuscated query stream. Raw
// values are XORed with an accumulator fed by the component count after
// every query, so a stream can only be decoded in input order.
type Decoder struct {
	n int
	f uint64
}

func NewDecoder(n int) *Decoder {
	return &Decoder{n: n}
}

func (d *Decoder) Decode(a, b int64) (int, int) {
	x := d.reduce(uint64(a) ^ d.f)
	y := d.reduce(uint64(b) ^ d.f)
	if x > y {
		x, y = y, x
	}
	return x, y
}

func (d *Decoder) reduce(v uint64) int {
	m := int64(v) % int64(d.n)
	if m < 0 {
		m += int64(d.n)
	}
	return int(m)
}

func (d *Decoder) Feed(count int) {
	d.f += uint64(count)
}

func (d *Decoder) F() uint64 {
	return d.f
}

package wyhash

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

var _ hash.Hash64 = (*Digest)(nil)

// wyhash secrets from the reference implementation.
// These are fixed so the outputs are deterministic.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Digest accumulates input and hashes it on Sum64. The zero value is a
// digest with seed 0.
type Digest struct {
	seed uint64
	buf  []byte
}

// New returns a digest seeded with seed.
func New(seed uint64) *Digest { return &Digest{seed: seed} }

// Sum64 returns the wyhash-64 of data with the provided seed.
func Sum64(data []byte, seed uint64) uint64 { return sum64(data, seed) }

// Write appends p to the digest.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// WriteString appends s to the digest.
func (d *Digest) WriteString(s string) (int, error) {
	d.buf = append(d.buf, s...)
	return len(s), nil
}

// WriteByte appends c to the digest.
func (d *Digest) WriteByte(c byte) error {
	d.buf = append(d.buf, c)
	return nil
}

// Sum appends the current hash to b in big-endian order.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Sum64 hashes the accumulated data.
func (d *Digest) Sum64() uint64 { return sum64(d.buf, d.seed) }

// Reset clears the accumulated data and keeps the seed.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Size returns the hash size in bytes.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest) BlockSize() int { return 1 }

// sum64 is the wyhash mixing routine of the Go runtime fallback
// implementation.
func sum64(b []byte, seed uint64) uint64 {
	var a, c uint64
	n := len(b)
	seed ^= k0

	switch {
	case n == 0:
		return seed
	case n < 4:
		a = uint64(b[0]) | uint64(b[n>>1])<<8 | uint64(b[n-1])<<16
	case n < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[n-4:]))
	case n <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[n-8:])
	default:
		rest, off := n, 0
		if rest > 48 {
			s1, s2 := seed, seed
			for ; rest > 48; rest -= 48 {
				seed = mix(le64(b, off)^k1, le64(b, off+8)^seed)
				s1 = mix(le64(b, off+16)^k2, le64(b, off+24)^s1)
				s2 = mix(le64(b, off+32)^k3, le64(b, off+40)^s2)
				off += 48
			}
			seed ^= s1 ^ s2
		}
		for ; rest > 16; rest -= 16 {
			seed = mix(le64(b, off)^k1, le64(b, off+8)^seed)
			off += 16
		}
		a = le64(b, off+rest-16)
		c = le64(b, off+rest-8)
	}

	return mix(k4^uint64(n), mix(a^k1, c^seed))
}

func le64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// File: core/concurrency/xoshiro.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// xoshiro256** pseudo-random generator (Blackman & Vigna). Each worker
// owns one instance; streams are separated with LongJump so victim
// selection never contends and never correlates across workers.

package concurrency

import "math/bits"

// Xoshiro is a xoshiro256** generator. Not safe for concurrent use; give
// every goroutine its own instance.
type Xoshiro struct {
	s [4]uint64
}

// NewXoshiro seeds a generator from a single 64-bit seed via splitmix64,
// as the reference implementation recommends.
func NewXoshiro(seed uint64) *Xoshiro {
	var x Xoshiro
	sm := seed
	for i := range x.s {
		sm += 0x9e3779b97f4a7c15
		z := sm
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		x.s[i] = z ^ (z >> 31)
	}
	return &x
}

// Next returns the next value of the stream.
func (x *Xoshiro) Next() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9

	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Uintn returns a value uniform in [0, n). n must be positive.
func (x *Xoshiro) Uintn(n uint64) uint64 {
	// Lemire's multiply-shift reduction; bias is negligible for the
	// victim-selection fan-outs this generator serves.
	hi, _ := bits.Mul64(x.Next(), n)
	return hi
}

var jumpTable = [4]uint64{
	0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
	0xa9582618e03fc9aa, 0x39abdc4529b1661c,
}

var longJumpTable = [4]uint64{
	0x76e15d3efefdcbbf, 0xc5004e441c522fb3,
	0x77710069854ee241, 0x39109bb02acbe635,
}

// Jump advances the stream by 2^128 calls to Next.
func (x *Xoshiro) Jump() { x.jump(jumpTable) }

// LongJump advances the stream by 2^192 calls to Next, carving out a
// non-overlapping subsequence for a new worker.
func (x *Xoshiro) LongJump() { x.jump(longJumpTable) }

func (x *Xoshiro) jump(table [4]uint64) {
	var s0, s1, s2, s3 uint64
	for _, word := range table {
		for b := 0; b < 64; b++ {
			if word&(1<<uint(b)) != 0 {
				s0 ^= x.s[0]
				s1 ^= x.s[1]
				s2 ^= x.s[2]
				s3 ^= x.s[3]
			}
			x.Next()
		}
	}
	x.s[0], x.s[1], x.s[2], x.s[3] = s0, s1, s2, s3
}

// Package keystream turns the rand48 generator into a byte stream: every
// lrand48 draw yields four little-endian bytes. This is deterministic
// obfuscation of the kind embedded firmware uses, not encryption; the
// seed is the only secret and it is 32 bits wide.
package keystream

import (
	"crypto/cipher"
	"encoding/binary"
	"io"

	"github.com/fysac/rand48"
)

var _ cipher.Stream = (*Stream)(nil)

// Four keystream bytes per draw.
const chunkSize = 4

// Stream XORs data with the keystream. It implements crypto/cipher.Stream.
// Not safe for concurrent use.
type Stream struct {
	src *rand48.Source

	// Unconsumed bytes of the current draw.
	buf [chunkSize]byte
	n   int
}

// New returns a Stream seeded as if by srand48(seed).
func New(seed int64) *Stream {
	return NewSource(rand48.New(seed))
}

// NewSource returns a Stream drawing from src. The Stream owns src's
// position from here on; interleaving other draws desynchronizes it.
func NewSource(src *rand48.Source) *Stream {
	return &Stream{src: src}
}

// XORKeyStream sets dst to src XOR keystream. dst and src must either
// overlap entirely or not at all, and len(dst) >= len(src). Lengths need
// not be multiples of four; leftover keystream bytes carry over to the
// next call.
func (s *Stream) XORKeyStream(dst, src []byte) {
	for i := range src {
		if s.n == 0 {
			binary.LittleEndian.PutUint32(s.buf[:], uint32(s.src.Lrand48()))
			s.n = chunkSize
		}
		dst[i] = src[i] ^ s.buf[chunkSize-s.n]
		s.n--
	}
}

// Reader yields raw keystream bytes. It implements io.Reader and never
// returns an error.
type Reader struct {
	s Stream
}

// NewReader returns a Reader seeded as if by srand48(seed). Its output is
// byte-identical to what a Stream with the same seed would XOR against.
func NewReader(seed int64) *Reader {
	return NewReaderSource(rand48.New(seed))
}

// NewReaderSource returns a Reader drawing from src.
func NewReaderSource(src *rand48.Source) *Reader {
	return &Reader{s: Stream{src: src}}
}

func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.s.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = (*Reader)(nil)

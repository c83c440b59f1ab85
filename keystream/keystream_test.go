package keystream

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"
	"testing"

	"github.com/fysac/rand48"
	"github.com/stretchr/testify/assert"
)

const seed = 0x20131224

func TestKnownKeystream(t *testing.T) {
	// First three lrand48 draws for this seed, little-endian.
	want, err := hex.DecodeString("183aab7322b60062c499b954")
	if err != nil {
		t.Fatal(err)
	}

	got := make([]byte, len(want))
	if _, err := io.ReadFull(NewReader(seed), got); err != nil {
		t.Fatalf("read keystream: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("keystream %x, want %x", got, want)
	}
}

func TestReaderMatchesStream(t *testing.T) {
	fromReader := make([]byte, 33)
	if _, err := io.ReadFull(NewReader(seed), fromReader); err != nil {
		t.Fatalf("read keystream: %v", err)
	}

	// XORing zeros exposes the raw keystream.
	fromStream := make([]byte, 33)
	New(seed).XORKeyStream(fromStream, fromStream)

	assert.Equal(t, fromStream, fromReader)
}

func TestXORRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ct := make([]byte, len(plaintext))
	New(seed).XORKeyStream(ct, plaintext)
	if bytes.Equal(ct, plaintext) {
		t.Fatal("keystream left plaintext unchanged")
	}

	// Applying the same keystream again, across uneven call boundaries,
	// restores the plaintext.
	s := New(seed)
	s.XORKeyStream(ct[:3], ct[:3])
	s.XORKeyStream(ct[3:10], ct[3:10])
	s.XORKeyStream(ct[10:], ct[10:])
	assert.Equal(t, plaintext, ct)
}

func TestStreamSource(t *testing.T) {
	// NewSource continues from wherever the Source already is.
	src := rand48.New(seed)
	src.Lrand48()

	var first [4]byte
	NewSource(src).XORKeyStream(first[:], first[:])
	assert.Equal(t, uint32(1644213794), binary.LittleEndian.Uint32(first[:]))
}

func TestSealOpen(t *testing.T) {
	data := []byte("hello, keystream")

	blob := Seal(data, seed)
	assert.Equal(t, []byte("R48K"), blob[:4])
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(blob[8:12]))

	got, err := Open(blob)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	assert.Equal(t, data, got)
}

func TestSealOpenUneven(t *testing.T) {
	// Payload length not a multiple of the chunk size.
	data := []byte("abcde")
	got, err := Open(Seal(data, 1))
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSealOpenEmpty(t *testing.T) {
	got, err := Open(Seal(nil, seed))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenErrors(t *testing.T) {
	blob := Seal([]byte("some payload"), seed)

	// Corrupt the checksum field
	bad := append([]byte(nil), blob...)
	binary.LittleEndian.PutUint32(bad[12:16], 0xeeeeeeee)
	_, err := Open(bad)
	assert.EqualError(t, err, ErrorInvalidChecksum)

	// Corrupt the tag
	bad = append([]byte(nil), blob...)
	bad[0] ^= 0xff
	_, err = Open(bad)
	assert.ErrorContains(t, err, "bad tag")

	// Truncate the payload
	_, err = Open(blob[:len(blob)-1])
	assert.ErrorContains(t, err, "header length")

	// Too short for a header
	_, err = Open(blob[:7])
	assert.ErrorContains(t, err, "smaller than header size")
}

func FuzzOpen(f *testing.F) {
	f.Add(Seal([]byte("fuzz me"), seed))
	f.Add(make([]byte, headerSize))
	f.Fuzz(func(t *testing.T, b []byte) {
		Open(b)
	})
}

func FuzzSealOpen(f *testing.F) {
	f.Add([]byte("payload"), int64(seed))
	f.Fuzz(func(t *testing.T, data []byte, s int64) {
		got, err := Open(Seal(data, s))
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("round trip: got %x, want %x", got, data)
		}
	})
}

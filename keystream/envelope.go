package keystream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// First header field of every sealed blob, "R48K" little-endian.
	sealTag = 0x4B383452

	// Tag, seed, payload length, checksum, four bytes each.
	headerSize = 16

	// The starting and ending value when calculating and verifying a
	// checksum, respectively.
	initialSum uint32 = 0xffffffff
)

const (
	ErrorInvalidChecksum = "invalid checksum"
)

// Seal obfuscates data under the keystream for seed and prepends a header
// recording the seed, payload length, and an additive checksum of the
// plaintext. The seed travels in the clear: a sealed blob is tamper-evident
// scrambling, nothing more.
func Seal(data []byte, seed int64) []byte {
	blob := make([]byte, headerSize+len(data))
	binary.LittleEndian.PutUint32(blob[0:4], sealTag)
	binary.LittleEndian.PutUint32(blob[4:8], uint32(seed))
	binary.LittleEndian.PutUint32(blob[8:12], uint32(len(data)))
	binary.LittleEndian.PutUint32(blob[12:headerSize], checksum(data))

	New(seed).XORKeyStream(blob[headerSize:], data)
	return blob
}

// Open reverses Seal, verifying the tag, length, and checksum.
func Open(blob []byte) ([]byte, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("blob is smaller than header size (%v < %v)", len(blob), headerSize)
	}
	if tag := binary.LittleEndian.Uint32(blob[0:4]); tag != sealTag {
		return nil, fmt.Errorf("bad tag 0x%08x", tag)
	}

	seed := int64(binary.LittleEndian.Uint32(blob[4:8]))
	length := binary.LittleEndian.Uint32(blob[8:12])
	if int(length) != len(blob[headerSize:]) {
		return nil, fmt.Errorf("header length (%v) != length of payload (%v)", length, len(blob[headerSize:]))
	}

	data := make([]byte, length)
	New(seed).XORKeyStream(data, blob[headerSize:])

	if stored := binary.LittleEndian.Uint32(blob[12:headerSize]); stored+wordSum(data) != initialSum {
		return nil, errors.New(ErrorInvalidChecksum)
	}
	return data, nil
}

// checksum subtracts the payload's word sum from the initial value, so that
// verification can add the words back and land on it exactly.
func checksum(data []byte) uint32 {
	return initialSum - wordSum(data)
}

// wordSum adds up the payload as little-endian words, the final word
// zero-padded.
func wordSum(data []byte) uint32 {
	var sum uint32
	for len(data) >= chunkSize {
		sum += binary.LittleEndian.Uint32(data[:chunkSize])
		data = data[chunkSize:]
	}
	if len(data) > 0 {
		var last [chunkSize]byte
		copy(last[:], data)
		sum += binary.LittleEndian.Uint32(last[:])
	}
	return sum
}

// Package rowcodec encodes grid rows as fixed-layout binary records.
//
// Worker processes exchange rows through shared byte buffers, so every row
// is stored as a record with a fixed, position-independent layout:
//
//	complex row:  re0 im0 re1 im1 ... re(n-1) im(n-1) SENTINEL
//	real row:     v0  v1  ...  v(n-1)                 SENTINEL
//
// Each value is a float64 in IEEE-754 binary64 form, little-endian, so a
// complex row of n elements occupies 16n+1 bytes and a real row 8n+1 bytes.
// Values round-trip bit for bit, including NaN payloads, infinities and
// signed zeros that can arise during iteration.
//
// The sentinel is a single non-zero byte appended to every record. Some
// shared-buffer substrates truncate trailing zero bytes on read; a record
// whose tail values are 0.0 would otherwise come back shorter than it was
// written. The sentinel keeps every record at its declared length, and
// decoding verifies it.
package rowcodec

import (
	"encoding/binary"
	"errors"
	"math"
)

// Sentinel terminates every encoded row record.
const Sentinel byte = '\n'

var (
	// ErrRecordLength reports a record or destination whose byte length
	// does not match the element count it was paired with.
	ErrRecordLength = errors.New("rowcodec: record length does not match element count")

	// ErrSentinel reports a record that does not end in the sentinel byte.
	ErrSentinel = errors.New("rowcodec: record missing sentinel terminator")
)

// ComplexRowLen returns the encoded length in bytes of a complex row of n
// elements, sentinel included.
func ComplexRowLen(n int) int { return 16*n + 1 }

// RealRowLen returns the encoded length in bytes of a real row of n
// elements, sentinel included.
func RealRowLen(n int) int { return 8*n + 1 }

// EncodeComplexRow writes row into dst as a complex row record.
// dst must be exactly ComplexRowLen(len(row)) bytes.
func EncodeComplexRow(dst []byte, row []complex128) error {
	if len(dst) != ComplexRowLen(len(row)) {
		return ErrRecordLength
	}
	for i, v := range row {
		off := 16 * i
		binary.LittleEndian.PutUint64(dst[off:off+8], math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(dst[off+8:off+16], math.Float64bits(imag(v)))
	}
	dst[len(dst)-1] = Sentinel
	return nil
}

// DecodeComplexRow reads a complex row record into dst.
// record must be exactly ComplexRowLen(len(dst)) bytes and end in the
// sentinel.
func DecodeComplexRow(dst []complex128, record []byte) error {
	if len(record) != ComplexRowLen(len(dst)) {
		return ErrRecordLength
	}
	if record[len(record)-1] != Sentinel {
		return ErrSentinel
	}
	for i := range dst {
		off := 16 * i
		re := math.Float64frombits(binary.LittleEndian.Uint64(record[off : off+8]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(record[off+8 : off+16]))
		dst[i] = complex(re, im)
	}
	return nil
}

// EncodeRealRow writes row into dst as a real row record.
// dst must be exactly RealRowLen(len(row)) bytes.
func EncodeRealRow(dst []byte, row []float64) error {
	if len(dst) != RealRowLen(len(row)) {
		return ErrRecordLength
	}
	for i, v := range row {
		off := 8 * i
		binary.LittleEndian.PutUint64(dst[off:off+8], math.Float64bits(v))
	}
	dst[len(dst)-1] = Sentinel
	return nil
}

// DecodeRealRow reads a real row record into dst.
// record must be exactly RealRowLen(len(dst)) bytes and end in the
// sentinel.
func DecodeRealRow(dst []float64, record []byte) error {
	if len(record) != RealRowLen(len(dst)) {
		return ErrRecordLength
	}
	if record[len(record)-1] != Sentinel {
		return ErrSentinel
	}
	for i := range dst {
		off := 8 * i
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(record[off : off+8]))
	}
	return nil
}

// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package emsapss implements the EMSA-PSS encoding operation and its
// verification counterpart as defined in RFC 8017, Section 9.1.
//
// The functions in this package work on message digests and encoded
// messages only; applying the trapdoor permutation is left to callers.
package emsapss

import (
	"crypto/subtle"
	"hash"
)

// trailer is the last byte of every encoded message.
const trailer = 0xBC

// MaskGenerator XORs a mask of len(out) bytes derived from seed into out.
// Implementations must be deterministic.
type MaskGenerator interface {
	Mask(seed, out []byte)
}

// EncodingError reports a violated precondition of Encode or of a raw
// digest input. The result of the failed operation must not be used.
type EncodingError struct {
	msg string
}

// NewEncodingError returns an EncodingError with the given description.
func NewEncodingError(msg string) *EncodingError {
	return &EncodingError{msg: msg}
}

func (e *EncodingError) Error() string {
	return "pss: encoding error: " + e.msg
}

// hashWithSalt returns Hash(0x00 x 8 || digest || salt) and leaves h reset.
func hashWithSalt(h hash.Hash, digest, salt []byte) []byte {
	var prefix [8]byte
	h.Reset()
	h.Write(prefix[:])
	h.Write(digest)
	h.Write(salt)
	out := h.Sum(nil)
	h.Reset()
	return out
}

// MinOutputBits returns the smallest output size in bits that can hold an
// encoding with the given digest and salt sizes.
func MinOutputBits(hashSize, saltSize int) int {
	return 8*hashSize + 8*saltSize + 9
}

// Encode returns the EMSA-PSS encoding of digest with the given salt. The
// encoded message is (outputBits+7)/8 bytes long and, read as a big-endian
// integer, is smaller than 2^outputBits.
//
// h is the hash that produced digest; it is also used for the M' digest.
func Encode(h hash.Hash, mgf MaskGenerator, digest, salt []byte, outputBits int) ([]byte, error) {
	hashSize := h.Size()
	if len(digest) != hashSize {
		return nil, NewEncodingError("input length invalid for hash")
	}
	if outputBits < MinOutputBits(hashSize, len(salt)) {
		return nil, NewEncodingError("output length too small")
	}

	emLen := (outputBits + 7) / 8
	dbLen := emLen - hashSize - 1
	h2 := hashWithSalt(h, digest, salt)

	em := make([]byte, emLen)
	db := em[:dbLen]
	db[dbLen-len(salt)-1] = 0x01
	copy(db[dbLen-len(salt):], salt)
	mgf.Mask(h2, db)
	db[0] &= 0xFF >> (8*emLen - outputBits)

	copy(em[dbLen:], h2)
	em[emLen-1] = trailer
	return em, nil
}

// Verify checks that em is a valid EMSA-PSS encoding of digest for a key of
// keyBits bits. em may be shorter than the key size, in which case it is
// treated as left-padded with zeros.
//
// On success it returns the length of the salt found in em. Verify never
// reports why an encoding was rejected. Only the lengths of em and digest
// and the position of the 0x01 marker influence its running time.
func Verify(h hash.Hash, mgf MaskGenerator, em, digest []byte, keyBits int) (saltLen int, ok bool) {
	hashSize := h.Size()
	if keyBits < 8*hashSize+9 {
		return 0, false
	}
	if len(digest) != hashSize {
		return 0, false
	}
	keyBytes := (keyBits + 7) / 8
	if len(em) > keyBytes || len(em) <= 1 {
		return 0, false
	}

	coded := make([]byte, keyBytes)
	copy(coded[keyBytes-len(em):], em)

	valid := subtle.ConstantTimeByteEq(coded[keyBytes-1], trailer)

	// The bits above keyBits in the first byte must be clear.
	topBits := 8*keyBytes - keyBits
	valid &= subtle.ConstantTimeByteEq(coded[0]&^(0xFF>>topBits), 0)

	dbLen := keyBytes - hashSize - 1
	db := coded[:dbLen]
	claimed := coded[dbLen : keyBytes-1]
	mgf.Mask(claimed, db)
	db[0] &= 0xFF >> topBits

	// DB must be zero or more 0x00 bytes followed by 0x01 and the salt.
	found, bad, saltOffset := 0, 0, 0
	for i, b := range db {
		isOne := subtle.ConstantTimeByteEq(b, 0x01)
		isZero := subtle.ConstantTimeByteEq(b, 0x00)
		searching := found ^ 1
		bad |= searching &^ (isZero | isOne)
		saltOffset = subtle.ConstantTimeSelect(searching&isOne, i+1, saltOffset)
		found |= isOne
	}
	valid &= found &^ bad

	h2 := hashWithSalt(h, digest, db[saltOffset:])
	valid &= subtle.ConstantTimeCompare(claimed, h2)

	if valid != 1 {
		return 0, false
	}
	return dbLen - saltOffset, true
}

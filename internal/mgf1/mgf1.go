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

// Package mgf1 implements the MGF1 mask generation function from
// RFC 8017, Appendix B.2.1.
package mgf1

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
)

// XOR XORs len(out) bytes of MGF1(seed) computed with h into out. h is reset
// before and after use.
func XOR(h hash.Hash, seed, out []byte) {
	var counter [4]byte
	var digest []byte
	h.Reset()
	for done, c := 0, uint32(0); done < len(out); c++ {
		binary.BigEndian.PutUint32(counter[:], c)
		h.Write(seed)
		h.Write(counter[:])
		digest = h.Sum(digest[:0])
		h.Reset()
		done += subtle.XORBytes(out[done:], out[done:], digest)
	}
}

// Generator is MGF1 bound to a hash function.
type Generator struct {
	hashFunc func() hash.Hash
}

// New returns an MGF1 generator over hashFunc.
func New(hashFunc func() hash.Hash) *Generator {
	return &Generator{hashFunc: hashFunc}
}

// Mask XORs the MGF1 mask of seed into out.
func (g *Generator) Mask(seed, out []byte) {
	XOR(g.hashFunc(), seed, out)
}

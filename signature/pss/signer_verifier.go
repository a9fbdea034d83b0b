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

package pss

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSignature is returned by Verifier.Verify for every rejected
// signature, whatever the cause.
var ErrInvalidSignature = errors.New("pss: invalid signature")

// RawSigner applies a private trapdoor permutation, such as raw RSA, to an
// encoded message.
type RawSigner interface {
	// KeyBits returns the bit length of the modulus.
	KeyBits() int
	// RawSign returns the signature of the encoded message em.
	RawSign(em []byte) ([]byte, error)
}

// RawVerifier applies the public counterpart of a RawSigner.
type RawVerifier interface {
	// KeyBits returns the bit length of the modulus.
	KeyBits() int
	// RawVerify recovers the encoded message from sig. The result may be
	// shorter than the modulus when its leading bytes are zero, or as long
	// as the modulus with zero bytes in front of the encoded message.
	RawVerify(sig []byte) ([]byte, error)
}

func checkKeyBits(params *Parameters, keyBits int) error {
	if keyBits < params.MinKeyBits() {
		return fmt.Errorf("key of %d bits too small for %v, want >= %d", keyBits, params, params.MinKeyBits())
	}
	return nil
}

// trimEncoded drops leading zero bytes of em beyond emLen bytes.
func trimEncoded(em []byte, emLen int) []byte {
	for len(em) > emLen && em[0] == 0 {
		em = em[1:]
	}
	return em
}

// digestOf runs data through a fresh Encoding and returns it with the digest.
func digestOf(params *Parameters, data []byte) (Encoding, []byte, error) {
	enc, err := New(params)
	if err != nil {
		return nil, nil, err
	}
	enc.Update(data)
	digest, err := enc.RawData()
	if err != nil {
		return nil, nil, err
	}
	return enc, digest, nil
}

// Signer produces EMSA-PSS signatures with a RawSigner. It is safe for
// concurrent use if the RawSigner and the random source are.
type Signer struct {
	params *Parameters
	raw    RawSigner
	rand   io.Reader
}

// NewSigner returns a Signer. A nil rand draws salts from a secure source.
func NewSigner(params *Parameters, raw RawSigner, rand io.Reader) (*Signer, error) {
	if params == nil || raw == nil {
		return nil, errors.New("pss.NewSigner: nil argument")
	}
	if err := checkKeyBits(params, raw.KeyBits()); err != nil {
		return nil, fmt.Errorf("pss.NewSigner: %v", err)
	}
	return &Signer{params: params, raw: raw, rand: rand}, nil
}

// Sign computes a signature for data. With VariantRaw, data must be the
// message digest.
func (s *Signer) Sign(data []byte) ([]byte, error) {
	enc, digest, err := digestOf(s.params, data)
	if err != nil {
		return nil, err
	}
	em, err := enc.EncodingOf(digest, s.raw.KeyBits()-1, s.rand)
	if err != nil {
		return nil, err
	}
	return s.raw.RawSign(em)
}

// Verifier checks EMSA-PSS signatures with a RawVerifier. It is safe for
// concurrent use if the RawVerifier is.
type Verifier struct {
	params *Parameters
	raw    RawVerifier
}

// NewVerifier returns a Verifier.
func NewVerifier(params *Parameters, raw RawVerifier) (*Verifier, error) {
	if params == nil || raw == nil {
		return nil, errors.New("pss.NewVerifier: nil argument")
	}
	if err := checkKeyBits(params, raw.KeyBits()); err != nil {
		return nil, fmt.Errorf("pss.NewVerifier: %v", err)
	}
	return &Verifier{params: params, raw: raw}, nil
}

// Verify verifies the signature on data. With VariantRaw, data must be the
// message digest. Any invalid signature yields ErrInvalidSignature.
func (v *Verifier) Verify(signature, data []byte) error {
	enc, digest, err := digestOf(v.params, data)
	if err != nil {
		return err
	}
	em, err := v.raw.RawVerify(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	emBits := v.raw.KeyBits() - 1
	em = trimEncoded(em, (emBits+7)/8)
	if !enc.Verify(em, digest, emBits) {
		return ErrInvalidSignature
	}
	return nil
}

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
	"hash"
	"io"

	"github.com/sec-js/botan/internal/emsapss"
	"github.com/sec-js/botan/internal/mgf1"
	"github.com/sec-js/botan/subtle"
	"github.com/sec-js/botan/subtle/random"
)

// EncodingError reports a violated precondition: a digest of the wrong
// length, an output size too small for the digest and salt, or raw input
// that is not exactly one digest long. Use [errors.As] to detect it.
type EncodingError = emsapss.EncodingError

// Encoding is the incremental interface of an EMSA-PSS padding scheme.
//
// An Encoding accumulates a message through Update and turns it into a
// digest with RawData. EncodingOf pads a digest for a raw trapdoor signing
// operation, and Verify checks a recovered encoding against a digest.
//
// An Encoding is not safe for concurrent use.
type Encoding interface {
	// Update appends data to the message.
	Update(data []byte)
	// RawData returns the digest of the accumulated message and resets the
	// Encoding.
	RawData() ([]byte, error)
	// EncodingOf returns the encoding of digest, outputBits bits long,
	// using a fresh salt read from rand. A nil rand uses a secure source.
	EncodingOf(digest []byte, outputBits int, rand io.Reader) ([]byte, error)
	// Verify tells whether coded is a valid encoding of digest for a key of
	// keyBits bits.
	Verify(coded, digest []byte, keyBits int) bool
	// HashFunction returns the name of the message hash.
	HashFunction() string
	// Name returns the scheme name.
	Name() string
}

// codec holds what both variants share: the parameters and the hash used
// for the encoding itself, separate from any message hash state.
type codec struct {
	params *Parameters
	hash   hash.Hash
	mgf    emsapss.MaskGenerator
}

func newCodec(params *Parameters, want Variant) (*codec, func() hash.Hash, error) {
	if params == nil {
		return nil, nil, errors.New("pss: nil parameters")
	}
	if params.Variant() != want {
		return nil, nil, fmt.Errorf("pss: parameters variant is %v, want %v", params.Variant(), want)
	}
	hashFunc := subtle.GetHashFunc(params.HashType())
	if hashFunc == nil {
		return nil, nil, fmt.Errorf("pss: unsupported hash %q", params.HashType())
	}
	return &codec{
		params: params,
		hash:   hashFunc(),
		mgf:    mgf1.New(hashFunc),
	}, hashFunc, nil
}

func (c *codec) EncodingOf(digest []byte, outputBits int, rand io.Reader) ([]byte, error) {
	if outputBits < emsapss.MinOutputBits(c.params.HashSize(), c.params.SaltLengthBytes()) {
		return nil, emsapss.NewEncodingError("output length too small")
	}
	salt, err := random.Bytes(rand, c.params.SaltLengthBytes())
	if err != nil {
		return nil, fmt.Errorf("pss: failed to generate salt: %w", err)
	}
	return emsapss.Encode(c.hash, c.mgf, digest, salt, outputBits)
}

func (c *codec) Verify(coded, digest []byte, keyBits int) bool {
	saltLen, ok := emsapss.Verify(c.hash, c.mgf, coded, digest, keyBits)
	if c.params.RequireSaltLength() && saltLen != c.params.SaltLengthBytes() {
		return false
	}
	return ok
}

func (c *codec) HashFunction() string { return c.params.HashType() }

func (c *codec) Name() string { return c.params.String() }

// PSS is the Encoding that hashes its input.
type PSS struct {
	*codec
	msgHash hash.Hash
}

var _ Encoding = (*PSS)(nil)

// NewPSS returns the hashing EMSA-PSS Encoding for params, whose variant
// must be VariantPSS.
func NewPSS(params *Parameters) (*PSS, error) {
	c, hashFunc, err := newCodec(params, VariantPSS)
	if err != nil {
		return nil, err
	}
	return &PSS{codec: c, msgHash: hashFunc()}, nil
}

// Update feeds data to the message hash.
func (p *PSS) Update(data []byte) {
	p.msgHash.Write(data)
}

// RawData returns the message digest and resets the message hash.
func (p *PSS) RawData() ([]byte, error) {
	digest := p.msgHash.Sum(nil)
	p.msgHash.Reset()
	return digest, nil
}

// PSSRaw is the Encoding for callers that hash the message themselves and
// pass the digest through Update.
type PSSRaw struct {
	*codec
	msg []byte
}

var _ Encoding = (*PSSRaw)(nil)

// NewPSSRaw returns the raw EMSA-PSS Encoding for params, whose variant must
// be VariantRaw.
func NewPSSRaw(params *Parameters) (*PSSRaw, error) {
	c, _, err := newCodec(params, VariantRaw)
	if err != nil {
		return nil, err
	}
	return &PSSRaw{codec: c}, nil
}

// Update appends data to the buffered digest.
func (p *PSSRaw) Update(data []byte) {
	p.msg = append(p.msg, data...)
}

// RawData returns the buffered digest and clears the buffer. It fails with
// an EncodingError if the buffer does not hold exactly one digest.
func (p *PSSRaw) RawData() ([]byte, error) {
	msg := p.msg
	p.msg = nil
	if len(msg) != p.params.HashSize() {
		return nil, emsapss.NewEncodingError("raw input length does not match hash")
	}
	return msg, nil
}

// New returns the Encoding for params.
func New(params *Parameters) (Encoding, error) {
	if params == nil {
		return nil, errors.New("pss: nil parameters")
	}
	switch params.Variant() {
	case VariantPSS:
		e, err := NewPSS(params)
		if err != nil {
			return nil, err
		}
		return e, nil
	case VariantRaw:
		e, err := NewPSSRaw(params)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("pss: unsupported variant: %v", params.Variant())
	}
}

// NewEncoding returns the Encoding for a scheme name accepted by ParseName.
func NewEncoding(name string) (Encoding, error) {
	params, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return New(params)
}

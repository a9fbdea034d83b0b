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
	"fmt"

	"github.com/sec-js/botan/subtle"
)

// Variant selects how an Encoding turns its input into the digest that is
// encoded.
type Variant int

const (
	// VariantUnknown is the default value of Variant.
	VariantUnknown Variant = iota
	// VariantPSS hashes the input passed to Update.
	VariantPSS
	// VariantRaw takes the input passed to Update as an already computed
	// digest.
	VariantRaw
)

func (v Variant) String() string {
	switch v {
	case VariantPSS:
		return "PSS"
	case VariantRaw:
		return "PSS_Raw"
	default:
		return "UNKNOWN"
	}
}

// Parameters describes an EMSA-PSS encoding: the message hash, which is also
// used by MGF1, the salt length and whether verification enforces it.
type Parameters struct {
	hashType          string
	hashSize          int
	saltLengthBytes   int
	requireSaltLength bool
	variant           Variant
}

// ParametersOpts contains the values of a set of EMSA-PSS parameters.
type ParametersOpts struct {
	// HashType names the hash function, for example "SHA-256" or "SHA3-256".
	HashType string
	// SaltLengthBytes is the length of the salt drawn for each encoding.
	SaltLengthBytes int
	// RequireSaltLength makes verification reject encodings whose salt is
	// not exactly SaltLengthBytes long.
	RequireSaltLength bool
	Variant           Variant
}

// maxSaltLengthBytes bounds the salt so that key sizes derived from it fit
// in an int on every platform.
const maxSaltLengthBytes = 1 << 24

// NewParameters creates a new EMSA-PSS Parameters value.
func NewParameters(opts ParametersOpts) (*Parameters, error) {
	hashType, err := subtle.CanonicalHashName(opts.HashType)
	if err != nil {
		return nil, fmt.Errorf("pss.NewParameters: %v", err)
	}
	hashSize, err := subtle.GetHashDigestSize(hashType)
	if err != nil {
		return nil, fmt.Errorf("pss.NewParameters: %v", err)
	}
	if opts.SaltLengthBytes < 0 || opts.SaltLengthBytes > maxSaltLengthBytes {
		return nil, fmt.Errorf("pss.NewParameters: invalid salt length bytes: %v, want in [0, %d]", opts.SaltLengthBytes, maxSaltLengthBytes)
	}
	if opts.Variant != VariantPSS && opts.Variant != VariantRaw {
		return nil, fmt.Errorf("pss.NewParameters: unsupported variant: %v", opts.Variant)
	}
	return &Parameters{
		hashType:          hashType,
		hashSize:          int(hashSize),
		saltLengthBytes:   opts.SaltLengthBytes,
		requireSaltLength: opts.RequireSaltLength,
		variant:           opts.Variant,
	}, nil
}

// NewDefaultParameters returns parameters whose salt is as long as the
// digest of hashType and whose salt length is not enforced on verification.
func NewDefaultParameters(hashType string, variant Variant) (*Parameters, error) {
	hashSize, err := subtle.GetHashDigestSize(hashType)
	if err != nil {
		return nil, fmt.Errorf("pss.NewDefaultParameters: %v", err)
	}
	return NewParameters(ParametersOpts{
		HashType:        hashType,
		SaltLengthBytes: int(hashSize),
		Variant:         variant,
	})
}

// HashType returns the canonical name of the hash function.
func (p *Parameters) HashType() string { return p.hashType }

// HashSize returns the digest size of the hash function in bytes.
func (p *Parameters) HashSize() int { return p.hashSize }

// SaltLengthBytes returns the salt length in bytes.
func (p *Parameters) SaltLengthBytes() int { return p.saltLengthBytes }

// RequireSaltLength tells whether verification enforces SaltLengthBytes.
func (p *Parameters) RequireSaltLength() bool { return p.requireSaltLength }

// Variant returns the variant.
func (p *Parameters) Variant() Variant { return p.variant }

// MinKeyBits returns the smallest key size, in bits, that can carry an
// encoding with these parameters. The encoding is one bit shorter than the
// key.
func (p *Parameters) MinKeyBits() int {
	return 8*p.hashSize + 8*p.saltLengthBytes + 10
}

// String returns the scheme name, for example "PSS(SHA-256,MGF1,32)".
func (p *Parameters) String() string {
	return fmt.Sprintf("%s(%s,MGF1,%d)", p.variant, p.hashType, p.saltLengthBytes)
}

// Equal tells whether p and other describe the same encoding.
func (p *Parameters) Equal(other *Parameters) bool {
	return other != nil &&
		p.hashType == other.hashType &&
		p.saltLengthBytes == other.saltLengthBytes &&
		p.requireSaltLength == other.requireSaltLength &&
		p.variant == other.variant
}

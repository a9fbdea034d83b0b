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

// Package subtle provides hash and key derivation helpers shared by the
// padding schemes in this module.
package subtle

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

type hashInfo struct {
	name string
	size uint32
	fn   func() hash.Hash
}

// Keyed by normalized name, see normalizeHashName.
var hashes = map[string]hashInfo{
	"SHA1":      {"SHA-1", sha1.Size, sha1.New},
	"SHA224":    {"SHA-224", sha256.Size224, sha256.New224},
	"SHA256":    {"SHA-256", sha256.Size, sha256.New},
	"SHA384":    {"SHA-384", sha512.Size384, sha512.New384},
	"SHA512":    {"SHA-512", sha512.Size, sha512.New},
	"SHA512256": {"SHA-512-256", sha512.Size256, sha512.New512_256},
	"SHA3224":   {"SHA-3(224)", 28, sha3.New224},
	"SHA3256":   {"SHA-3(256)", 32, sha3.New256},
	"SHA3384":   {"SHA-3(384)", 48, sha3.New384},
	"SHA3512":   {"SHA-3(512)", 64, sha3.New512},
}

// normalizeHashName maps the spellings SHA256, SHA-256, SHA2-256, sha_256,
// SHA3-256 and SHA-3(256) onto a single lookup key.
func normalizeHashName(name string) string {
	n := strings.ToUpper(name)
	for _, p := range []string{"SHA2-", "SHA2_"} {
		if strings.HasPrefix(n, p) {
			n = "SHA" + n[len(p):]
		}
	}
	return strings.NewReplacer("-", "", "_", "", "/", "", "(", "", ")", "").Replace(n)
}

func lookupHash(name string) (hashInfo, bool) {
	h, ok := hashes[normalizeHashName(name)]
	return h, ok
}

// GetHashFunc returns the corresponding hash function of the given hash name.
// It returns nil if the hash is not supported.
func GetHashFunc(hashAlg string) func() hash.Hash {
	h, ok := lookupHash(hashAlg)
	if !ok {
		return nil
	}
	return h.fn
}

// GetHashDigestSize returns the digest size of the specified hash algorithm.
func GetHashDigestSize(hashAlg string) (uint32, error) {
	h, ok := lookupHash(hashAlg)
	if !ok {
		return 0, fmt.Errorf("invalid hash algorithm: %q", hashAlg)
	}
	return h.size, nil
}

// CanonicalHashName returns the display name of hashAlg, for example
// "SHA-256" for "SHA256" or "SHA-3(256)" for "SHA3-256".
func CanonicalHashName(hashAlg string) (string, error) {
	h, ok := lookupHash(hashAlg)
	if !ok {
		return "", fmt.Errorf("invalid hash algorithm: %q", hashAlg)
	}
	return h.name, nil
}

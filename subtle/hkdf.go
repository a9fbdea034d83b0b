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

package subtle

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// NewHKDFReader returns a deterministic byte stream derived from secret with
// HKDF over hashAlg. It can supply at most 255 digests worth of bytes; reads
// past that point fail.
//
// The stream is a drop-in replacement for a random source wherever the
// output has to be reproducible, such as salts in known-answer tests.
func NewHKDFReader(hashAlg string, secret, salt, info []byte) (io.Reader, error) {
	hashFunc := GetHashFunc(hashAlg)
	if hashFunc == nil {
		return nil, fmt.Errorf("hkdf: invalid hash algorithm %q", hashAlg)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("hkdf: empty secret")
	}
	return hkdf.New(hashFunc, secret, salt, info), nil
}

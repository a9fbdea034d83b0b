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

// Package random provides functions that generate random numbers or bytes.
package random

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure source used for salts when the
// caller does not supply one.
var Reader io.Reader = rand.Reader

// GetRandomBytes randomly generates n bytes.
func GetRandomBytes(n uint32) []byte {
	buf := make([]byte, n)
	if _, err := io.ReadFull(Reader, buf); err != nil {
		panic(err) // out of randomness, should never happen
	}
	return buf
}

// Bytes reads n bytes from r. A nil r reads from Reader.
func Bytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
